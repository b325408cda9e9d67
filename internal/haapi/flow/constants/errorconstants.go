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

package constants

import (
	"github.com/asgardeo/haapi-client/internal/system/error/serviceerror"
)

// Client error structs

// ErrorFlowNotStarted is returned when an action is requested before the flow is started.
var ErrorFlowNotStarted = serviceerror.ServiceError{
	Code:             "HAAPI-60001",
	Type:             serviceerror.ClientErrorType,
	Error:            ErrorTitleInvalidAction,
	ErrorDescription: "The flow has not been started. Call Start or Reset first",
}

// ErrorUnsupportedMethod is returned when a form uses an HTTP method other than GET or POST.
var ErrorUnsupportedMethod = serviceerror.ServiceError{
	Code:             "HAAPI-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            ErrorTitleUnexpected,
	ErrorDescription: "Unsupported method",
}

// ErrorInvalidHref is returned when an action or link target cannot be resolved.
var ErrorInvalidHref = serviceerror.ServiceError{
	Code:             "HAAPI-60003",
	Type:             serviceerror.ClientErrorType,
	Error:            ErrorTitleUnexpected,
	ErrorDescription: "The target URL is invalid",
}

// ErrorStateMismatch is returned when the authorization response carries an unexpected state.
var ErrorStateMismatch = serviceerror.ServiceError{
	Code:             "HAAPI-60004",
	Type:             serviceerror.ClientErrorType,
	Error:            ErrorTitleHAAPI,
	ErrorDescription: "The state of the authorization response does not match the request",
}

// Server error structs

// ErrorEndpointResolution is returned when the server endpoints are neither configured nor discoverable.
var ErrorEndpointResolution = serviceerror.ServiceError{
	Code:             "HAAPI-65001",
	Type:             serviceerror.ServerErrorType,
	Error:            ErrorTitleConfiguration,
	ErrorDescription: "Failed to resolve the server endpoints",
}

// ErrorRequestFailed is returned when a request could not be sent or its response read.
var ErrorRequestFailed = serviceerror.ServiceError{
	Code:             "HAAPI-65002",
	Type:             serviceerror.ServerErrorType,
	Error:            ErrorTitleNetwork,
	ErrorDescription: "Failed to send the request",
}

// ErrorUnsupportedContentType is returned for a response with a content type the client cannot handle.
var ErrorUnsupportedContentType = serviceerror.ServiceError{
	Code:             "HAAPI-65003",
	Type:             serviceerror.ServerErrorType,
	Error:            ErrorTitleUnexpected,
	ErrorDescription: "Unsupported content type",
}

// ErrorInvalidResponse is returned when a response body cannot be parsed.
var ErrorInvalidResponse = serviceerror.ServiceError{
	Code:             "HAAPI-65004",
	Type:             serviceerror.ServerErrorType,
	Error:            ErrorTitleHAAPI,
	ErrorDescription: "Failed to parse the server response",
}

// ErrorTooManyRedirects is returned when the server keeps answering with redirection steps.
var ErrorTooManyRedirects = serviceerror.ServiceError{
	Code:             "HAAPI-65005",
	Type:             serviceerror.ServerErrorType,
	Error:            ErrorTitleUnexpected,
	ErrorDescription: "Too many redirection steps",
}

// ErrorPollingInterrupted is returned when automatic polling is cancelled.
var ErrorPollingInterrupted = serviceerror.ServiceError{
	Code:             "HAAPI-65006",
	Type:             serviceerror.ServerErrorType,
	Error:            ErrorTitleUnexpected,
	ErrorDescription: "Polling was interrupted",
}
