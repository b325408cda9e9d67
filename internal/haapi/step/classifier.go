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

package step

import (
	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

// ToStep classifies a representation. It never fails: a representation that
// matches no known step is an UnknownStep, and one of a known type with an
// unexpected shape is an InvalidStep.
func ToStep(rep *model.Representation) Step {
	if rep == nil {
		return &InvalidStep{}
	}
	switch rep.Type {
	case model.RepresentationTypeAuthenticationStep, model.RepresentationTypeRegistrationStep:
		return handleAuthenticationStep(rep)
	case model.RepresentationTypeRedirectionStep:
		return handleRedirectStep(rep)
	case model.RepresentationTypePollingStep:
		return handlePollingStep(rep)
	case model.RepresentationTypeContinueSameStep:
		return &ContinueSameStep{Representation: rep}
	case model.RepresentationTypeOAuthAuthorizationResponse:
		return handleAuthorizationStep(rep)
	default:
		// consentor and user consent steps are handled as unknown.
		return &UnknownStep{Representation: rep}
	}
}

func handleAuthenticationStep(rep *model.Representation) Step {
	if len(rep.Actions) == 1 {
		if selector, ok := rep.Actions[0].(*model.SelectorAction); ok &&
			selector.Kind == model.ActionKindAuthenticatorSelector {
			return handleAuthenticatorSelector(rep, selector)
		}
	}

	cancel := rep.FindForm(model.ActionKindCancel)
	if operation := singleClientOperation(rep.Actions); operation != nil {
		switch op := operation.Model.(type) {
		case *model.ExternalBrowserOperation:
			return &ExternalBrowserClientOperation{Operation: op, Cancel: cancel}
		case *model.BankIDOperation:
			return &BankIDClientOperation{Operation: op, Cancel: cancel}
		case *model.EncapAutoActivationOperation:
			return &EncapClientOperation{Operation: op, Cancel: cancel}
		case *model.UnknownOperation:
			return &UnknownClientOperation{Operation: op, Cancel: cancel}
		default:
			return &InvalidStep{Representation: rep}
		}
	}

	for _, form := range rep.FormActions() {
		if form.Kind != model.ActionKindCancel && form.Kind != model.ActionKindContinue {
			return &InteractiveForm{
				Action:   form,
				Cancel:   cancel,
				Type:     rep.Type,
				Links:    rep.Links,
				Messages: rep.Messages,
			}
		}
	}
	return &UnknownStep{Representation: rep}
}

func handleAuthenticatorSelector(rep *model.Representation, selector *model.SelectorAction) Step {
	if selector.Title == nil {
		return &InvalidStep{Representation: rep}
	}

	options := make([]AuthenticatorOption, 0, len(selector.Model.Options))
	for _, option := range selector.Model.Options {
		form, ok := option.(*model.FormAction)
		if !ok ||
			form.RequiresInteraction() ||
			form.Kind != model.ActionKindSelectAuthenticator ||
			form.Properties == nil ||
			form.Title == nil {
			return &InvalidStep{Representation: rep}
		}
		options = append(options, AuthenticatorOption{
			Label:  form.Title,
			Type:   form.Properties.AuthenticatorType,
			Action: form,
		})
	}
	return &AuthenticatorSelector{Title: selector.Title, Authenticators: options}
}

// singleClientOperation returns the client operation action when there is exactly one.
func singleClientOperation(actions []model.Action) *model.ClientOperationAction {
	var found *model.ClientOperationAction
	for _, a := range actions {
		if op, ok := a.(*model.ClientOperationAction); ok {
			if found != nil {
				return nil
			}
			found = op
		}
	}
	return found
}

func handleRedirectStep(rep *model.Representation) Step {
	if len(rep.Actions) != 1 {
		return &InvalidStep{Representation: rep}
	}
	form, ok := rep.Actions[0].(*model.FormAction)
	if !ok || form.RequiresInteraction() {
		return &InvalidStep{Representation: rep}
	}
	return &Redirect{Action: form}
}

func handlePollingStep(rep *model.Representation) Step {
	properties, ok := rep.Properties.(*model.PollingProperties)
	if !ok || properties == nil {
		return &InvalidStep{Representation: rep}
	}

	if properties.Status == model.PollingStatusPending {
		poll := rep.FindForm(model.ActionKindPoll)
		if poll == nil {
			return &InvalidStep{Representation: rep}
		}
		return &PollingStep{
			Type:       rep.Type,
			Properties: properties,
			Main:       poll,
			Cancel:     rep.FindForm(model.ActionKindCancel),
		}
	}

	next := rep.FindForm(model.ActionKindContinue)
	if next == nil {
		return &InvalidStep{Representation: rep}
	}
	return &PollingStep{Type: rep.Type, Properties: properties, Main: next}
}

func handleAuthorizationStep(rep *model.Representation) Step {
	properties, ok := rep.Properties.(*model.AuthorizationResponseProperties)
	if !ok || properties == nil {
		return &InvalidStep{Representation: rep}
	}
	return &AuthorizationCompleted{Type: rep.Type, Properties: properties, Links: rep.Links}
}
