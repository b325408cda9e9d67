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

package flow

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/asgardeo/haapi-client/internal/haapi/flow/constants"
	"github.com/asgardeo/haapi-client/internal/haapi/model"
	"github.com/asgardeo/haapi-client/internal/haapi/step"
	sysconst "github.com/asgardeo/haapi-client/internal/system/constants"
	"github.com/asgardeo/haapi-client/internal/system/error/serviceerror"
	"github.com/asgardeo/haapi-client/internal/system/log"
)

// haapiAccept is the Accept header of requests answered with representations.
const haapiAccept = sysconst.ContentTypeHAAPI + ", " + sysconst.ContentTypeProblemJSON

func (m *FlowManager) authorizationRequest(ctx context.Context,
	endpoint string) (*http.Request, *serviceerror.ServiceError) {
	target, err := url.Parse(endpoint)
	if err != nil || !target.IsAbs() {
		return nil, constants.ErrorInvalidHref.WithDescription("Invalid authorization endpoint: " + endpoint)
	}

	query := target.Query()
	query.Set(constants.ParamClientID, m.config.ClientID)
	query.Set(constants.ParamResponseType, constants.ResponseTypeCode)
	query.Set(constants.ParamRedirectURI, m.config.RedirectURI)
	if len(m.config.Scopes) > 0 {
		query.Set(constants.ParamScope, strings.Join(m.config.Scopes, " "))
	}
	query.Set(constants.ParamState, m.state)
	target.RawQuery = query.Encode()

	return m.newRequest(ctx, http.MethodGet, target.String(), nil, haapiAccept)
}

// submit sends a form without applying the automatic transitions.
func (m *FlowManager) submit(ctx context.Context, form model.FormModel,
	parameters map[string]string) step.Step {
	target, svcErr := m.resolveHref(form.Href)
	if svcErr != nil {
		return m.fail(svcErr)
	}
	values := formValues(form.Fields, parameters)

	var req *http.Request
	switch strings.ToUpper(form.Method) {
	case http.MethodGet:
		query := target.Query()
		for name, v := range values {
			query[name] = v
		}
		target.RawQuery = query.Encode()
		req, svcErr = m.newRequest(ctx, http.MethodGet, target.String(), nil, haapiAccept)
	case http.MethodPost:
		req, svcErr = m.newRequest(ctx, http.MethodPost, target.String(), values, haapiAccept)
	default:
		m.logger().Debug("Unsupported form method", log.String("method", form.Method))
		return m.fail(constants.ErrorUnsupportedMethod.WithDescription("Unsupported method " + form.Method))
	}
	if svcErr != nil {
		return m.fail(svcErr)
	}

	if m.logger().IsDebugEnabled() {
		m.logger().Debug("Submitting form", log.String("method", req.Method),
			log.String("url", target.Redacted()), log.Int("fields", len(values)))
	}
	return m.execute(req, constants.OperationSubmit)
}

func (m *FlowManager) linkRequest(ctx context.Context, link model.Link) (*http.Request, *serviceerror.ServiceError) {
	target, svcErr := m.resolveHref(link.Href)
	if svcErr != nil {
		return nil, svcErr
	}
	return m.newRequest(ctx, http.MethodGet, target.String(), nil, haapiAccept)
}

func (m *FlowManager) tokenRequest(ctx context.Context, grantType, name,
	value string) (*http.Request, *serviceerror.ServiceError) {
	_, tokenEndpoint, svcErr := m.endpoints(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	if _, err := url.ParseRequestURI(tokenEndpoint); err != nil {
		return nil, constants.ErrorInvalidHref.WithDescription("Invalid token endpoint: " + tokenEndpoint)
	}

	values := url.Values{}
	values.Set(constants.ParamClientID, m.config.ClientID)
	values.Set(constants.ParamRedirectURI, m.config.RedirectURI)
	values.Set(constants.ParamGrantType, grantType)
	values.Set(name, value)
	return m.newRequest(ctx, http.MethodPost, tokenEndpoint, values, sysconst.ContentTypeJSON)
}

// newRequest builds a request, sending values as a form body when given.
func (m *FlowManager) newRequest(ctx context.Context, method, target string, values url.Values,
	accept string) (*http.Request, *serviceerror.ServiceError) {
	var req *http.Request
	var err error
	if values != nil {
		req, err = http.NewRequestWithContext(ctx, method, target, strings.NewReader(values.Encode()))
		if err == nil {
			req.Header.Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeFormURLEncoded)
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, method, target, nil)
	}
	if err != nil {
		return nil, constants.ErrorInvalidHref.WithDescription(err.Error())
	}
	req.Header.Set(sysconst.AcceptHeaderName, accept)
	return req, nil
}

// resolveHref resolves an href against the configured base URL.
func (m *FlowManager) resolveHref(href string) (*url.URL, *serviceerror.ServiceError) {
	ref, err := url.Parse(href)
	if err != nil {
		return nil, constants.ErrorInvalidHref.WithDescription("Invalid href: " + href)
	}
	if ref.IsAbs() {
		return ref, nil
	}
	base, err := url.Parse(m.config.BaseURL)
	if err != nil || !base.IsAbs() {
		return nil, constants.ErrorInvalidHref.WithDescription("Invalid base URL: " + m.config.BaseURL)
	}
	return base.ResolveReference(ref), nil
}

// formValues collects the values to submit. A parameter overrides the field
// value, and fields with neither are left out. Unchecked checkboxes are only
// sent when a parameter is given.
func formValues(fields []model.Field, parameters map[string]string) url.Values {
	values := url.Values{}
	for _, field := range fields {
		name := field.FieldName()
		if value, ok := parameters[name]; ok {
			values.Add(name, value)
			continue
		}

		var value string
		switch f := field.(type) {
		case *model.HiddenField:
			values.Add(name, f.Value)
			continue
		case *model.CheckboxField:
			if !f.Checked {
				continue
			}
			value = f.Value
			if value == "" {
				value = "on"
			}
		case *model.SelectField:
			value = f.SelectedValue()
		default:
			value = field.FieldValue()
		}
		if value != "" {
			values.Add(name, value)
		}
	}
	return values
}
