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
	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

func parseAction(o jsonObject) (model.Action, error) {
	return parsing("Action", func() (model.Action, error) {
		template, err := o.string("template")
		if err != nil {
			return nil, err
		}
		switch t := model.ResolveActionTemplate(template); t {
		case model.ActionTemplateForm:
			return parseFormAction(o)
		case model.ActionTemplateSelector:
			return parseSelectorAction(o)
		case model.ActionTemplateClientOperation:
			return parseClientOperationAction(o)
		default:
			kind, err := o.stringOpt("kind")
			if err != nil {
				return nil, err
			}
			return &model.UnknownAction{TemplateValue: t, Kind: kind, JSON: o.raw()}, nil
		}
	})
}

func parseFormAction(o jsonObject) (*model.FormAction, error) {
	kind, err := o.string("kind")
	if err != nil {
		return nil, err
	}
	title, err := o.messageOpt("title")
	if err != nil {
		return nil, err
	}
	m, err := o.object("model")
	if err != nil {
		return nil, err
	}
	formModel, err := parseFormModel(m)
	if err != nil {
		return nil, err
	}
	props, err := o.objectOpt("properties")
	if err != nil {
		return nil, err
	}

	action := &model.FormAction{Kind: kind, Title: title, Model: formModel}
	if props != nil {
		authenticatorType, err := props.stringOpt("authenticatorType")
		if err != nil {
			return nil, err
		}
		action.Properties = &model.FormProperties{AuthenticatorType: authenticatorType, JSON: props.raw()}
	}
	return action, nil
}

func parseFormModel(o jsonObject) (model.FormModel, error) {
	return parsing("Form", func() (model.FormModel, error) {
		href, err := o.string("href")
		if err != nil {
			return model.FormModel{}, err
		}
		method, err := o.string("method")
		if err != nil {
			return model.FormModel{}, err
		}
		contentType, err := o.stringOpt("type")
		if err != nil {
			return model.FormModel{}, err
		}
		actionTitle, err := o.messageOpt("actionTitle")
		if err != nil {
			return model.FormModel{}, err
		}
		fields, err := list(o, "fields", parseField)
		if err != nil {
			return model.FormModel{}, err
		}
		return model.FormModel{
			Href:        href,
			Method:      method,
			Type:        contentType,
			ActionTitle: actionTitle,
			Fields:      fields,
		}, nil
	})
}

func parseSelectorAction(o jsonObject) (*model.SelectorAction, error) {
	kind, err := o.string("kind")
	if err != nil {
		return nil, err
	}
	title, err := o.messageOpt("title")
	if err != nil {
		return nil, err
	}
	m, err := o.object("model")
	if err != nil {
		return nil, err
	}
	options, err := parsing("Selector", func() ([]model.Action, error) {
		return list(m, "options", parseAction)
	})
	if err != nil {
		return nil, err
	}
	props, err := o.objectOpt("properties")
	if err != nil {
		return nil, err
	}

	action := &model.SelectorAction{
		Kind:  kind,
		Title: title,
		Model: model.SelectorModel{Options: options},
	}
	if props != nil {
		action.Properties = &model.SelectorProperties{JSON: props.raw()}
	}
	return action, nil
}

func parseClientOperationAction(o jsonObject) (*model.ClientOperationAction, error) {
	kind, err := o.stringOpt("kind")
	if err != nil {
		return nil, err
	}
	m, err := o.object("model")
	if err != nil {
		return nil, err
	}
	operation, err := parseClientOperation(m)
	if err != nil {
		return nil, err
	}
	return &model.ClientOperationAction{Kind: kind, Model: operation}, nil
}

func parseClientOperation(o jsonObject) (model.ClientOperation, error) {
	return parsing("client-operation", func() (model.ClientOperation, error) {
		name, err := o.string("name")
		if err != nil {
			return nil, err
		}
		continueActions, err := list(o, "continueActions", parseAction)
		if err != nil {
			return nil, err
		}
		errorActions, err := list(o, "errorActions", parseAction)
		if err != nil {
			return nil, err
		}
		actions := model.OperationActions{OnContinue: continueActions, OnError: errorActions}

		switch name {
		case model.ClientOperationExternalBrowser:
			args, err := o.object("arguments")
			if err != nil {
				return nil, err
			}
			href, err := args.string("href")
			if err != nil {
				return nil, err
			}
			return &model.ExternalBrowserOperation{OperationActions: actions, Href: href}, nil
		case model.ClientOperationBankID:
			args, err := o.object("arguments")
			if err != nil {
				return nil, err
			}
			values, err := requiredStrings(args, "href", "autoStartToken", "redirect")
			if err != nil {
				return nil, err
			}
			return &model.BankIDOperation{
				OperationActions: actions,
				Href:             values[0],
				AutoStartToken:   values[1],
				Redirect:         values[2],
			}, nil
		case model.ClientOperationEncapAutoActivation:
			args, err := o.object("arguments")
			if err != nil {
				return nil, err
			}
			values, err := requiredStrings(args, "href", "activationCode")
			if err != nil {
				return nil, err
			}
			return &model.EncapAutoActivationOperation{
				OperationActions: actions,
				Href:             values[0],
				ActivationCode:   values[1],
			}, nil
		default:
			args, err := o.objectOpt("arguments")
			if err != nil {
				return nil, err
			}
			return &model.UnknownOperation{
				OperationActions: actions,
				OperationName:    name,
				Arguments:        args.raw(),
			}, nil
		}
	})
}

func requiredStrings(o jsonObject, names ...string) ([]string, error) {
	values := make([]string, len(names))
	for i, name := range names {
		v, err := o.string(name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
