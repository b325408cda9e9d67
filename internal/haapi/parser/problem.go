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

// ParseProblem converts a decoded application/problem+json object into a problem.
func ParseProblem(obj map[string]any) (model.Problem, error) {
	return parsing("Problem", func() (model.Problem, error) {
		o := jsonObject(obj)
		rawType, err := o.string("type")
		if err != nil {
			return nil, err
		}
		problemType := model.ResolveRepresentationType(rawType)

		switch problemType {
		case model.RepresentationTypeInvalidInputProblem:
			generic, err := parseGenericProblem(o, problemType, "")
			if err != nil {
				return nil, err
			}
			invalidFields, err := list(o, "invalidFields", parseInvalidField)
			if err != nil {
				return nil, err
			}
			description, err := o.stringOpt("error_description")
			if err != nil {
				return nil, err
			}
			return &model.InvalidInputProblem{
				GenericProblem:   *generic,
				InvalidFields:    invalidFields,
				ErrorDescription: description,
			}, nil
		case model.RepresentationTypeIncorrectCredentialsProblem, model.RepresentationTypeUnexpectedProblem:
			return parseGenericProblem(o, problemType, "")
		case model.RepresentationTypeAuthorizationResponseProblem:
			values, err := requiredStrings(o, "error", "error_description")
			if err != nil {
				return nil, err
			}
			generic, err := parseGenericProblem(o, problemType, values[0])
			if err != nil {
				return nil, err
			}
			return &model.AuthorizationProblem{
				GenericProblem:   *generic,
				Error:            values[0],
				ErrorDescription: values[1],
			}, nil
		default:
			return nil, fmt.Errorf("Invalid Problem for '%s'", rawType)
		}
	})
}

// ParseProblemJSON decodes data and parses it as a problem.
func ParseProblemJSON(data []byte) (model.Problem, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, &ParseError{Context: "Problem", Err: err}
	}
	return ParseProblem(obj)
}

// parseGenericProblem reads the members shared by every problem. The title is
// required unless a default is given.
func parseGenericProblem(o jsonObject, problemType model.RepresentationType,
	defaultTitle string) (*model.GenericProblem, error) {
	title, err := o.stringOpt("title")
	if err != nil {
		return nil, err
	}
	if title == "" {
		if defaultTitle == "" {
			return nil, errMissingField("title")
		}
		title = defaultTitle
	}
	code, err := o.stringOpt("code")
	if err != nil {
		return nil, err
	}
	messages, err := list(o, "messages", parseUserMessage)
	if err != nil {
		return nil, err
	}
	links, err := list(o, "links", parseLink)
	if err != nil {
		return nil, err
	}
	return &model.GenericProblem{
		Type:     problemType,
		Title:    title,
		Code:     code,
		Messages: messages,
		Links:    links,
	}, nil
}

func parseInvalidField(o jsonObject) (model.InvalidField, error) {
	return parsing("InvalidField", func() (model.InvalidField, error) {
		name, err := o.string("name")
		if err != nil {
			return model.InvalidField{}, err
		}
		reason, err := o.stringOpt("reason")
		if err != nil {
			return model.InvalidField{}, err
		}
		detail, err := o.stringOpt("detail")
		if err != nil {
			return model.InvalidField{}, err
		}
		return model.InvalidField{Name: name, Reason: reason, Detail: detail}, nil
	})
}

// terminalProblemCodes are problem codes that end the flow.
var terminalProblemCodes = map[string]bool{
	"invalid_redirect_uri": true,
	"authorization_failed": true,
	"access_denied":        true,
}

// IsKnownProblem reports whether the problem should be surfaced to the user as is.
// Authorization problems and problems with a terminal code end the flow and are
// reported as system errors.
func IsKnownProblem(p model.Problem) bool {
	if p == nil {
		return false
	}
	if _, isAuthorization := p.(*model.AuthorizationProblem); isAuthorization {
		return false
	}
	return !terminalProblemCodes[p.ProblemCode()]
}
