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
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/asgardeo/haapi-client/internal/haapi/flow/constants"
	"github.com/asgardeo/haapi-client/internal/haapi/metrics"
	"github.com/asgardeo/haapi-client/internal/haapi/model"
	"github.com/asgardeo/haapi-client/internal/haapi/parser"
	"github.com/asgardeo/haapi-client/internal/haapi/step"
	sysconst "github.com/asgardeo/haapi-client/internal/system/constants"
	"github.com/asgardeo/haapi-client/internal/system/log"
)

// execute sends the request and turns the response into a step.
func (m *FlowManager) execute(req *http.Request, operation string) step.Step {
	logger := m.logger()

	start := time.Now()
	resp, err := m.httpClient.Do(req)
	m.metrics.ObserveRequest(operation, start)
	if err != nil {
		return m.fail(constants.ErrorRequestFailed.WithDescription(err.Error()))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseSize))
	if err != nil {
		return m.fail(constants.ErrorRequestFailed.WithDescription("Failed to read the response: " + err.Error()))
	}

	contentType := mediaType(resp.Header.Get(sysconst.ContentTypeHeaderName))
	logger.Debug("Received response", log.String("operation", operation),
		log.Int("statusCode", resp.StatusCode), log.String("contentType", contentType))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		switch contentType {
		case sysconst.ContentTypeHAAPI:
			rep, err := parser.ParseJSON(body)
			if err != nil {
				m.metrics.IncrementParseError(metrics.ParseKindRepresentation)
				return m.fail(constants.ErrorInvalidResponse.WithDescription(err.Error()))
			}
			m.metrics.IncrementParsed(rep.Type)
			logger.Debug("Parsed representation",
				log.String(log.LoggerKeyRepresentationType, rep.Type.String()))
			return m.record(step.ToStep(rep))
		case sysconst.ContentTypeJSON:
			tokens, err := parser.ParseTokenResponseJSON(body)
			if err != nil {
				m.metrics.IncrementParseError(metrics.ParseKindTokens)
				return m.fail(constants.ErrorInvalidResponse.WithDescription(err.Error()))
			}
			return m.record(&step.TokensStep{Tokens: tokens})
		default:
			return m.fail(constants.ErrorUnsupportedContentType.WithDescription(
				"Response was successful with unsupported content-type : " + contentType))
		}
	}

	if contentType != sysconst.ContentTypeProblemJSON {
		return m.fail(constants.ErrorUnsupportedContentType.WithDescription(fmt.Sprintf(
			"Response was unsuccessful (%d) with unsupported content-type : %s", resp.StatusCode, contentType)))
	}
	problem, err := parser.ParseProblemJSON(body)
	if err != nil {
		m.metrics.IncrementParseError(metrics.ParseKindProblem)
		return m.fail(constants.ErrorInvalidResponse.WithDescription(err.Error()))
	}
	if !parser.IsKnownProblem(problem) {
		title, description := describeProblem(problem)
		logger.Error("Flow ended with a problem", log.String("type", problem.ProblemType().String()),
			log.String("code", problem.ProblemCode()))
		return m.record(&step.SystemErrorStep{Title: title, Description: description})
	}
	return m.record(&step.ProblemStep{Problem: problem})
}

// describeProblem returns the title and description of a problem that ends the flow.
func describeProblem(problem model.Problem) (string, string) {
	if authz, ok := problem.(*model.AuthorizationProblem); ok {
		return authz.Error, authz.ErrorDescription
	}
	texts := make([]string, 0, len(problem.ProblemMessages()))
	for _, msg := range problem.ProblemMessages() {
		texts = append(texts, model.MessageValue(msg.Text))
	}
	return problem.ProblemTitle(), strings.Join(texts, ", ")
}

// mediaType strips parameters such as the charset from a content type.
func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}
	return mt
}
