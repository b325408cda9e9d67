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

// Package constants defines the constants used by the flow manager.
package constants

// Titles of the system error steps reported by the flow manager.
const (
	ErrorTitleInvalidAction = "Invalid action"
	ErrorTitleUnexpected    = "Unexpected"
	ErrorTitleHAAPI         = "HAAPI error"
	ErrorTitleNetwork       = "Network error"
	ErrorTitleConfiguration = "Configuration error"
)

// OAuth request parameter names.
const (
	ParamClientID     = "client_id"
	ParamResponseType = "response_type"
	ParamRedirectURI  = "redirect_uri"
	ParamScope        = "scope"
	ParamState        = "state"
	ParamGrantType    = "grant_type"
	ParamCode         = "code"
	ParamRefreshToken = "refresh_token"
)

// OAuth parameter values.
const (
	ResponseTypeCode           = "code"
	GrantTypeAuthorizationCode = "authorization_code"
	GrantTypeRefreshToken      = "refresh_token"
)

// Request operations used to label request metrics.
const (
	OperationStart   = "start"
	OperationSubmit  = "submit"
	OperationLink    = "link"
	OperationToken   = "token"
	OperationRefresh = "refresh"
)

// MaxRedirects bounds the number of redirection steps followed automatically in one call.
const MaxRedirects = 10

// MaxResponseSize bounds the size of a response body read by the flow manager.
const MaxResponseSize = 5 << 20

