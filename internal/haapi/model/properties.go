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

import "time"

// Properties holds the type specific properties of a representation.
type Properties interface {
	// Raw returns the properties object as received.
	Raw() map[string]any
	isProperties()
}

// PollingProperties are the properties of a polling step.
type PollingProperties struct {
	Recipient string
	Status    PollingStatus
	JSON      map[string]any
}

func (p *PollingProperties) Raw() map[string]any { return p.JSON }
func (*PollingProperties) isProperties()         {}

// AuthorizationResponseProperties are the properties of an OAuth authorization response.
// Empty strings denote absent values.
type AuthorizationResponseProperties struct {
	Code         string
	State        string
	Scope        string
	AccessToken  string
	TokenType    string
	ExpiresIn    *time.Duration
	IDToken      string
	SessionState string
	RefreshToken string
	JSON         map[string]any
}

func (p *AuthorizationResponseProperties) Raw() map[string]any { return p.JSON }
func (*AuthorizationResponseProperties) isProperties()         {}

// UnknownProperties captures the properties of any other representation type.
type UnknownProperties struct {
	JSON map[string]any
}

func (p *UnknownProperties) Raw() map[string]any { return p.JSON }
func (*UnknownProperties) isProperties()         {}
