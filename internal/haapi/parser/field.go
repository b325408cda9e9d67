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
	"fmt"

	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

// Field types form a closed set. An unknown type fails the parse.
func parseField(o jsonObject) (model.Field, error) {
	return parsing("Field", func() (model.Field, error) {
		fieldType, err := o.string("type")
		if err != nil {
			return nil, err
		}
		name, err := o.string("name")
		if err != nil {
			return nil, err
		}

		switch model.FieldType(fieldType) {
		case model.FieldTypeHidden:
			value, err := o.string("value")
			if err != nil {
				return nil, err
			}
			return &model.HiddenField{Name: name, Value: value}, nil
		case model.FieldTypeText:
			return parseTextField(o, name)
		case model.FieldTypeUsername:
			f := &model.UsernameField{Name: name}
			if f.Label, err = o.message("label"); err != nil {
				return nil, err
			}
			if f.Placeholder, f.Value, err = placeholderAndValue(o); err != nil {
				return nil, err
			}
			return f, nil
		case model.FieldTypePassword:
			f := &model.PasswordField{Name: name}
			if f.Label, err = o.messageOpt("label"); err != nil {
				return nil, err
			}
			if f.Placeholder, f.Value, err = placeholderAndValue(o); err != nil {
				return nil, err
			}
			return f, nil
		case model.FieldTypeCheckbox:
			f := &model.CheckboxField{Name: name, Checked: o.boolean("checked"), Readonly: o.boolean("readonly")}
			if f.Label, err = o.messageOpt("label"); err != nil {
				return nil, err
			}
			if f.Value, err = o.stringOpt("value"); err != nil {
				return nil, err
			}
			return f, nil
		case model.FieldTypeSelect:
			return parseSelectField(o, name)
		case model.FieldTypeContext:
			value, err := o.stringOpt("value")
			if err != nil {
				return nil, err
			}
			return &model.ContextField{Name: name, Value: value}, nil
		default:
			return nil, fmt.Errorf("unknown field type '%s'", fieldType)
		}
	})
}

func parseTextField(o jsonObject, name string) (*model.TextField, error) {
	f := &model.TextField{Name: name}
	var err error
	if f.Label, err = o.messageOpt("label"); err != nil {
		return nil, err
	}
	if f.Placeholder, f.Value, err = placeholderAndValue(o); err != nil {
		return nil, err
	}
	kind, err := o.stringOpt("kind")
	if err != nil {
		return nil, err
	}
	if kind != "" {
		k := model.ResolveTextKind(kind)
		f.Kind = &k
	}
	return f, nil
}

func parseSelectField(o jsonObject, name string) (*model.SelectField, error) {
	f := &model.SelectField{Name: name}
	var err error
	if f.Label, err = o.message("label"); err != nil {
		return nil, err
	}
	if f.Value, err = o.stringOpt("value"); err != nil {
		return nil, err
	}
	f.Options, err = list(o, "options", func(opt jsonObject) (model.SelectOption, error) {
		label, err := opt.message("label")
		if err != nil {
			return model.SelectOption{}, err
		}
		value, err := opt.string("value")
		if err != nil {
			return model.SelectOption{}, err
		}
		return model.SelectOption{Label: label, Value: value, Selected: opt.boolean("selected")}, nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func placeholderAndValue(o jsonObject) (string, string, error) {
	placeholder, err := o.stringOpt("placeholder")
	if err != nil {
		return "", "", err
	}
	value, err := o.stringOpt("value")
	if err != nil {
		return "", "", err
	}
	return placeholder, value, nil
}
