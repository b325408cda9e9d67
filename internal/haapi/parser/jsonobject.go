/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

var errNotIntegral = errors.New("not an integral number")

// jsonObject is a decoded JSON object with typed accessors.
type jsonObject map[string]any

func (o jsonObject) has(name string) bool {
	v, ok := o[name]
	return ok && v != nil
}

func (o jsonObject) string(name string) (string, error) {
	v, ok := o[name]
	if !ok || v == nil {
		return "", errMissingField(name)
	}
	s, ok := v.(string)
	if !ok {
		return "", errWrongType(name, "a string", v)
	}
	return s, nil
}

// stringOpt returns an empty string when the member is absent or blank. Scalars
// are accepted in their textual form.
func (o jsonObject) stringOpt(name string) (string, error) {
	v, ok := o[name]
	if !ok || v == nil {
		return "", nil
	}
	var s string
	switch value := v.(type) {
	case string:
		s = value
	case json.Number:
		s = value.String()
	case bool:
		s = strconv.FormatBool(value)
	case float64:
		s = strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return "", errWrongType(name, "a string", v)
	}
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return s, nil
}

// boolean returns false unless the member is true or the string "true".
func (o jsonObject) boolean(name string) bool {
	switch value := o[name].(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(value, "true")
	default:
		return false
	}
}

func (o jsonObject) object(name string) (jsonObject, error) {
	v, ok := o[name]
	if !ok || v == nil {
		return nil, errMissingField(name)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errWrongType(name, "an object", v)
	}
	return m, nil
}

func (o jsonObject) objectOpt(name string) (jsonObject, error) {
	if !o.has(name) {
		return nil, nil
	}
	return o.object(name)
}

func (o jsonObject) array(name string) ([]any, error) {
	if !o.has(name) {
		return nil, nil
	}
	items, ok := o[name].([]any)
	if !ok {
		return nil, errWrongType(name, "an array", o[name])
	}
	return items, nil
}

// list parses every element of an array of objects, keeping document order.
// An absent member yields an empty list.
func list[T any](o jsonObject, name string, parse func(jsonObject) (T, error)) ([]T, error) {
	items, err := o.array(name)
	if err != nil {
		return nil, err
	}
	result := make([]T, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, errWrongType(name+"["+strconv.Itoa(i)+"]", "an object", item)
		}
		v, err := parse(m)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (o jsonObject) listStrings(name string) ([]string, error) {
	items, err := o.array(name)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errWrongType(name+"["+strconv.Itoa(i)+"]", "a string", item)
		}
		result = append(result, s)
	}
	return result, nil
}

// mapOfStrings keeps only the string valued members of the named object.
func (o jsonObject) mapOfStrings(name string) (map[string]string, error) {
	result := map[string]string{}
	m, err := o.objectOpt(name)
	if err != nil || m == nil {
		return result, err
	}
	for k, v := range m {
		if s, ok := v.(string); ok {
			result[k] = s
		}
	}
	return result, nil
}

// messageOpt reads the dual key message formed by name and name+"Key".
func (o jsonObject) messageOpt(name string) (model.Message, error) {
	literal, err := o.stringOpt(name)
	if err != nil {
		return nil, err
	}
	key, err := o.stringOpt(name + "Key")
	if err != nil {
		return nil, err
	}
	return model.NewMessage(literal, key), nil
}

func (o jsonObject) message(name string) (model.Message, error) {
	m, err := o.messageOpt(name)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errMissingField(name)
	}
	return m, nil
}

// maxDurationSeconds is the largest number of seconds a time.Duration holds.
const maxDurationSeconds = math.MaxInt64 / int64(time.Second)

// durationOpt reads a number of seconds given as a JSON number or a numeric string.
func (o jsonObject) durationOpt(name string) (*time.Duration, error) {
	v, ok := o[name]
	if !ok || v == nil {
		return nil, nil
	}
	seconds, err := int64FromNumberOrString(v)
	if err != nil || seconds > maxDurationSeconds || seconds < -maxDurationSeconds {
		return nil, fmt.Errorf("value of field '%s' has unexpected value '%v'", name, v)
	}
	d := time.Duration(seconds) * time.Second
	return &d, nil
}

func int64FromNumberOrString(v any) (int64, error) {
	switch value := v.(type) {
	case json.Number:
		return value.Int64()
	case string:
		return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	case float64:
		if value != math.Trunc(value) || math.IsInf(value, 0) {
			return 0, errNotIntegral
		}
		return int64(value), nil
	case int:
		return int64(value), nil
	case int64:
		return value, nil
	default:
		return 0, errNotIntegral
	}
}

func (o jsonObject) raw() map[string]any {
	if o == nil {
		return nil
	}
	return map[string]any(o)
}
