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

package model

// Well known action kinds.
const (
	ActionKindCancel                = "cancel"
	ActionKindContinue              = "continue"
	ActionKindPoll                  = "poll"
	ActionKindRedirect              = "redirect"
	ActionKindLogin                 = "login"
	ActionKindAuthenticatorSelector = "authenticator-selector"
	ActionKindSelectAuthenticator   = "select-authenticator"
)

// Action is a node of the action tree of a representation.
type Action interface {
	Template() ActionTemplate
	isAction()
}

// FormAction describes an HTTP request the client can submit.
type FormAction struct {
	Kind       string
	Title      Message
	Model      FormModel
	Properties *FormProperties
}

func (*FormAction) Template() ActionTemplate { return ActionTemplateForm }
func (*FormAction) isAction()                {}

// RequiresInteraction reports whether the form has any field other than a hidden one.
func (a *FormAction) RequiresInteraction() bool {
	for _, f := range a.Model.Fields {
		if f.FieldType() != FieldTypeHidden {
			return true
		}
	}
	return false
}

// FormModel is the request template of a form action.
type FormModel struct {
	Href        string
	Method      string
	Type        string
	ActionTitle Message
	Fields      []Field
}

// FormProperties are the optional properties of a form action.
type FormProperties struct {
	AuthenticatorType string
	JSON              map[string]any
}

// SelectorAction offers a choice between nested actions.
type SelectorAction struct {
	Kind       string
	Title      Message
	Model      SelectorModel
	Properties *SelectorProperties
}

func (*SelectorAction) Template() ActionTemplate { return ActionTemplateSelector }
func (*SelectorAction) isAction()                {}

// SelectorModel holds the options of a selector action.
type SelectorModel struct {
	Options []Action
}

// SelectorProperties are the optional properties of a selector action.
type SelectorProperties struct {
	JSON map[string]any
}

// ClientOperationAction asks the client to perform an operation outside the API.
type ClientOperationAction struct {
	Kind  string
	Model ClientOperation
}

func (*ClientOperationAction) Template() ActionTemplate { return ActionTemplateClientOperation }
func (*ClientOperationAction) isAction()                {}

// UnknownAction is an action with a template this client does not know.
type UnknownAction struct {
	TemplateValue ActionTemplate
	Kind          string
	JSON          map[string]any
}

func (a *UnknownAction) Template() ActionTemplate { return a.TemplateValue }
func (*UnknownAction) isAction()                  {}

// Client operation names.
const (
	ClientOperationExternalBrowser     = "external-browser-flow"
	ClientOperationBankID              = "bankid"
	ClientOperationEncapAutoActivation = "encap-auto-activation"
)

// ClientOperation is the model of a client operation action.
type ClientOperation interface {
	Name() string
	ContinueActions() []Action
	ErrorActions() []Action
	isClientOperation()
}

// OperationActions are the follow up actions shared by every client operation.
type OperationActions struct {
	OnContinue []Action
	OnError    []Action
}

func (o OperationActions) ContinueActions() []Action { return o.OnContinue }
func (o OperationActions) ErrorActions() []Action    { return o.OnError }

// ExternalBrowserOperation asks the client to open a URL in an external browser.
type ExternalBrowserOperation struct {
	OperationActions
	Href string
}

func (*ExternalBrowserOperation) Name() string       { return ClientOperationExternalBrowser }
func (*ExternalBrowserOperation) isClientOperation() {}

// BankIDOperation asks the client to launch the BankID application.
type BankIDOperation struct {
	OperationActions
	Href           string
	AutoStartToken string
	Redirect       string
}

func (*BankIDOperation) Name() string       { return ClientOperationBankID }
func (*BankIDOperation) isClientOperation() {}

// EncapAutoActivationOperation asks the client to activate an Encap device.
type EncapAutoActivationOperation struct {
	OperationActions
	Href           string
	ActivationCode string
}

func (*EncapAutoActivationOperation) Name() string       { return ClientOperationEncapAutoActivation }
func (*EncapAutoActivationOperation) isClientOperation() {}

// UnknownOperation is a client operation this client does not know.
type UnknownOperation struct {
	OperationActions
	OperationName string
	Arguments     map[string]any
}

func (o *UnknownOperation) Name() string     { return o.OperationName }
func (*UnknownOperation) isClientOperation() {}
