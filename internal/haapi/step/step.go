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

// Package step classifies parsed representations into the closed set of steps a client acts on.
package step

import (
	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

// Step is the high level outcome of one server round trip.
type Step interface {
	StepName() string
}

// Redirect is a form the client submits without user interaction.
type Redirect struct {
	Action *model.FormAction
}

// AuthenticatorOption is one authenticator offered by an AuthenticatorSelector.
type AuthenticatorOption struct {
	Label  model.Message
	Type   string
	Action *model.FormAction
}

// AuthenticatorSelector asks the user to pick an authenticator.
type AuthenticatorSelector struct {
	Title          model.Message
	Authenticators []AuthenticatorOption
}

// InteractiveForm is a form the user fills in.
type InteractiveForm struct {
	Action   *model.FormAction
	Cancel   *model.FormAction
	Type     model.RepresentationType
	Links    []model.Link
	Messages []model.UserMessage
}

// ExternalBrowserClientOperation asks the client to continue in an external browser.
type ExternalBrowserClientOperation struct {
	Operation *model.ExternalBrowserOperation
	Cancel    *model.FormAction
}

// BankIDClientOperation asks the client to launch BankID.
type BankIDClientOperation struct {
	Operation *model.BankIDOperation
	Cancel    *model.FormAction
}

// EncapClientOperation asks the client to run an Encap auto activation.
type EncapClientOperation struct {
	Operation *model.EncapAutoActivationOperation
	Cancel    *model.FormAction
}

// UnknownClientOperation is a client operation this client cannot perform.
type UnknownClientOperation struct {
	Operation *model.UnknownOperation
	Cancel    *model.FormAction
}

// PollingStep waits for an out of band event. Main is the poll action while
// pending and the continue action afterwards.
type PollingStep struct {
	Type       model.RepresentationType
	Properties *model.PollingProperties
	Main       *model.FormAction
	Cancel     *model.FormAction
}

// IsPending reports whether the client should keep polling.
func (s *PollingStep) IsPending() bool {
	return s.Properties.Status == model.PollingStatusPending
}

// AuthorizationCompleted carries the OAuth authorization response.
type AuthorizationCompleted struct {
	Type       model.RepresentationType
	Properties *model.AuthorizationResponseProperties
	Links      []model.Link
}

// ContinueSameStep asks the client to keep showing the current step.
type ContinueSameStep struct {
	Representation *model.Representation
}

// UnknownStep is a representation this client was never taught about.
type UnknownStep struct {
	Representation *model.Representation
}

// InvalidStep is a representation of a known type that violates the expected shape.
type InvalidStep struct {
	Representation *model.Representation
}

// ProblemStep is a problem document returned by the server.
type ProblemStep struct {
	Problem model.Problem
}

// TokensStep is a successful token endpoint response.
type TokensStep struct {
	Tokens *model.TokenResponse
}

// SystemErrorStep reports a failure that ends the flow.
type SystemErrorStep struct {
	Title       string
	Description string
}

func (*Redirect) StepName() string                       { return "Redirect" }
func (*AuthenticatorSelector) StepName() string          { return "AuthenticatorSelector" }
func (*InteractiveForm) StepName() string                { return "InteractiveForm" }
func (*ExternalBrowserClientOperation) StepName() string { return "ExternalBrowserClientOperation" }
func (*BankIDClientOperation) StepName() string          { return "BankIDClientOperation" }
func (*EncapClientOperation) StepName() string           { return "EncapClientOperation" }
func (*UnknownClientOperation) StepName() string         { return "UnknownClientOperation" }
func (*PollingStep) StepName() string                    { return "PollingStep" }
func (*AuthorizationCompleted) StepName() string         { return "AuthorizationCompleted" }
func (*ContinueSameStep) StepName() string               { return "ContinueSameStep" }
func (*UnknownStep) StepName() string                    { return "UnknownStep" }
func (*InvalidStep) StepName() string                    { return "InvalidStep" }
func (*ProblemStep) StepName() string                    { return "ProblemStep" }
func (*TokensStep) StepName() string                     { return "TokensStep" }
func (*SystemErrorStep) StepName() string                { return "SystemErrorStep" }
