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

// TokenResponse is the parsed body of a successful token endpoint response.
type TokenResponse struct {
	AccessToken  string
	TokenType    string
	Scope        string
	ExpiresIn    *time.Duration
	RefreshToken string
	IDToken      string
	// Properties holds the whole response, including members not mapped above.
	Properties map[string]any
}
