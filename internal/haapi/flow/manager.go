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

// Package flow drives a HAAPI login flow over HTTP, turning every server response into a step.
package flow

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asgardeo/haapi-client/internal/haapi/discovery"
	"github.com/asgardeo/haapi-client/internal/haapi/flow/constants"
	"github.com/asgardeo/haapi-client/internal/haapi/metrics"
	"github.com/asgardeo/haapi-client/internal/haapi/model"
	"github.com/asgardeo/haapi-client/internal/haapi/step"
	"github.com/asgardeo/haapi-client/internal/system/config"
	"github.com/asgardeo/haapi-client/internal/system/error/serviceerror"
	httpservice "github.com/asgardeo/haapi-client/internal/system/http"
	"github.com/asgardeo/haapi-client/internal/system/log"
)

const loggerComponentName = "FlowManager"

// FlowManagerInterface defines the operations of one login flow.
type FlowManagerInterface interface {
	Start(ctx context.Context) step.Step
	SubmitForm(ctx context.Context, form model.FormModel, parameters map[string]string) step.Step
	FollowLink(ctx context.Context, link model.Link) step.Step
	FetchAccessToken(ctx context.Context, authorizationCode string) step.Step
	RefreshAccessToken(ctx context.Context, refreshToken string) step.Step
	Reset()
	CurrentStep() step.Step
	FlowID() string
}

// FlowManager drives one flow at a time. It is not safe for concurrent use.
type FlowManager struct {
	config     *config.ClientConfig
	httpClient httpservice.HTTPClientInterface
	resolver   *discovery.Resolver
	metrics    *metrics.Metrics

	started bool
	flowID  string
	state   string
	current step.Step
}

// Option customizes a FlowManager.
type Option func(*FlowManager)

// WithHTTPClient sets the client used for every request.
func WithHTTPClient(client httpservice.HTTPClientInterface) Option {
	return func(m *FlowManager) {
		m.httpClient = client
	}
}

// WithResolver sets the resolver used to discover endpoints.
func WithResolver(resolver *discovery.Resolver) Option {
	return func(m *FlowManager) {
		m.resolver = resolver
	}
}

// WithMetrics sets the metrics updated by the manager.
func WithMetrics(mtr *metrics.Metrics) Option {
	return func(m *FlowManager) {
		m.metrics = mtr
	}
}

// NewFlowManager creates a manager for the given client profile.
func NewFlowManager(cfg *config.ClientConfig, opts ...Option) *FlowManager {
	m := &FlowManager{config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.httpClient == nil {
		if cfg.SSLTrustVerification {
			m.httpClient = httpservice.NewHTTPClientWithTimeout(cfg.HTTPTimeout)
		} else {
			m.httpClient = httpservice.NewInsecureHTTPClient(cfg.HTTPTimeout)
		}
	}
	if m.resolver == nil {
		m.resolver = discovery.NewResolver(m.httpClient, discovery.DefaultTTL)
	}
	if m.metrics == nil {
		m.metrics = metrics.New(nil)
	}
	return m
}

// Start begins a new flow with an authorization request.
func (m *FlowManager) Start(ctx context.Context) step.Step {
	m.started = true
	m.flowID = uuid.NewString()
	m.state = uuid.NewString()
	m.current = nil

	logger := m.logger()
	logger.Debug("Starting flow", log.String("clientId", m.config.ClientID))

	authorizationEndpoint, _, svcErr := m.endpoints(ctx)
	if svcErr != nil {
		return m.fail(svcErr)
	}
	req, svcErr := m.authorizationRequest(ctx, authorizationEndpoint)
	if svcErr != nil {
		return m.fail(svcErr)
	}
	return m.proceed(ctx, m.execute(req, constants.OperationStart))
}

// SubmitForm submits a form action. Values in parameters override the field values.
func (m *FlowManager) SubmitForm(ctx context.Context, form model.FormModel,
	parameters map[string]string) step.Step {
	if !m.started {
		return m.fail(constants.ErrorFlowNotStarted.WithDescription(
			"Cannot submit a form because the flow did not start. Call Start or Reset first"))
	}
	return m.proceed(ctx, m.submit(ctx, form, parameters))
}

// FollowLink fetches the representation a link points to.
func (m *FlowManager) FollowLink(ctx context.Context, link model.Link) step.Step {
	if !m.started {
		return m.fail(constants.ErrorFlowNotStarted.WithDescription(
			"Cannot follow a link because the flow did not start. Call Start or Reset first"))
	}
	req, svcErr := m.linkRequest(ctx, link)
	if svcErr != nil {
		return m.fail(svcErr)
	}
	return m.execute(req, constants.OperationLink)
}

// FetchAccessToken exchanges an authorization code for tokens.
func (m *FlowManager) FetchAccessToken(ctx context.Context, authorizationCode string) step.Step {
	req, svcErr := m.tokenRequest(ctx, constants.GrantTypeAuthorizationCode,
		constants.ParamCode, authorizationCode)
	if svcErr != nil {
		return m.fail(svcErr)
	}
	return m.execute(req, constants.OperationToken)
}

// RefreshAccessToken obtains new tokens with a refresh token.
func (m *FlowManager) RefreshAccessToken(ctx context.Context, refreshToken string) step.Step {
	req, svcErr := m.tokenRequest(ctx, constants.GrantTypeRefreshToken,
		constants.ParamRefreshToken, refreshToken)
	if svcErr != nil {
		return m.fail(svcErr)
	}
	return m.execute(req, constants.OperationRefresh)
}

// Reset forgets the current flow. Start must be called again before submitting forms.
func (m *FlowManager) Reset() {
	m.logger().Debug("Resetting flow")
	m.started = false
	m.flowID = ""
	m.state = ""
	m.current = nil
}

// CurrentStep returns the last step produced by the manager.
func (m *FlowManager) CurrentStep() step.Step {
	return m.current
}

// FlowID returns the identifier of the current flow, or an empty string before Start.
func (m *FlowManager) FlowID() string {
	return m.flowID
}

// proceed applies the automatic transitions enabled in the profile: following
// redirects, polling while pending and redeeming the authorization code.
func (m *FlowManager) proceed(ctx context.Context, current step.Step) step.Step {
	redirects, polls := 0, 0
	for {
		switch s := current.(type) {
		case *step.Redirect:
			if !m.config.FollowRedirect {
				return current
			}
			if redirects >= constants.MaxRedirects {
				return m.fail(&constants.ErrorTooManyRedirects)
			}
			redirects++
			current = m.submit(ctx, s.Action.Model, nil)
		case *step.PollingStep:
			if !m.config.AutoPolling || !s.IsPending() || polls >= m.config.MaxPolls {
				return current
			}
			if err := sleep(ctx, m.config.PollInterval); err != nil {
				return m.fail(constants.ErrorPollingInterrupted.WithDescription(err.Error()))
			}
			polls++
			current = m.submit(ctx, s.Main.Model, nil)
		case *step.AuthorizationCompleted:
			if s.Properties.State != "" && s.Properties.State != m.state {
				return m.fail(&constants.ErrorStateMismatch)
			}
			if !m.config.AutoAuthorizationChallenge || s.Properties.Code == "" {
				return current
			}
			return m.FetchAccessToken(ctx, s.Properties.Code)
		default:
			return current
		}
	}
}

// record keeps the step as the current one.
func (m *FlowManager) record(s step.Step) step.Step {
	m.current = s
	m.metrics.IncrementStep(s.StepName())
	m.logger().Debug("Received step", log.String(log.LoggerKeyStep, s.StepName()))
	return s
}

// fail records a system error step for the service error.
func (m *FlowManager) fail(svcErr *serviceerror.ServiceError) step.Step {
	m.logger().Error("Flow failed", log.String("code", svcErr.Code),
		log.String("error", svcErr.Error), log.String("description", svcErr.ErrorDescription))
	return m.record(&step.SystemErrorStep{Title: svcErr.Error, Description: svcErr.ErrorDescription})
}

func (m *FlowManager) logger() *log.Logger {
	return log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyFlowID, m.flowID))
}

// endpoints returns the authorization and token endpoints, discovering the
// missing ones from the metadata endpoint.
func (m *FlowManager) endpoints(ctx context.Context) (string, string, *serviceerror.ServiceError) {
	authorizationEndpoint := m.config.AuthorizationEndpoint
	tokenEndpoint := m.config.TokenEndpoint
	if authorizationEndpoint != "" && tokenEndpoint != "" {
		return authorizationEndpoint, tokenEndpoint, nil
	}
	if strings.TrimSpace(m.config.MetadataEndpoint) == "" {
		return "", "", constants.ErrorEndpointResolution.WithDescription(
			"No endpoint is configured and no metadata endpoint is set")
	}

	metadata, err := m.resolver.Resolve(ctx, m.config.MetadataEndpoint)
	if err != nil {
		return "", "", constants.ErrorEndpointResolution.WithDescription(err.Error())
	}
	if authorizationEndpoint == "" {
		authorizationEndpoint = metadata.AuthorizationEndpoint
	}
	if tokenEndpoint == "" {
		tokenEndpoint = metadata.TokenEndpoint
	}
	return authorizationEndpoint, tokenEndpoint, nil
}

// sleep waits for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
