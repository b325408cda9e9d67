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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/asgardeo/haapi-client/internal/haapi/model"
	"github.com/asgardeo/haapi-client/internal/haapi/step"
	"github.com/asgardeo/haapi-client/internal/haapi/tokens"
	"github.com/asgardeo/haapi-client/internal/system/log"
)

// printStep writes the step name followed by an indented summary.
func printStep(w io.Writer, s step.Step, reveal bool) {
	fmt.Fprintf(w, "step: %s\n", s.StepName())

	switch s := s.(type) {
	case *step.InteractiveForm:
		fmt.Fprintf(w, "  type: %s\n", s.Type)
		printMessages(w, s.Messages)
		printForm(w, s.Action)
		if s.Cancel != nil {
			fmt.Fprintf(w, "  cancel: %s %s\n", s.Cancel.Model.Method, s.Cancel.Model.Href)
		}
		for _, link := range s.Links {
			fmt.Fprintf(w, "  link: %s %s\n", link.Rel, link.Href)
		}
	case *step.AuthenticatorSelector:
		fmt.Fprintf(w, "  title: %s\n", model.MessageValue(s.Title))
		for i, option := range s.Authenticators {
			fmt.Fprintf(w, "  [%d] %s (%s)\n", i+1, model.MessageValue(option.Label), option.Type)
		}
	case *step.Redirect:
		fmt.Fprintf(w, "  action: %s %s\n", s.Action.Model.Method, s.Action.Model.Href)
	case *step.PollingStep:
		fmt.Fprintf(w, "  status: %s\n", s.Properties.Status)
		if s.Properties.Recipient != "" {
			fmt.Fprintf(w, "  recipient: %s\n", s.Properties.Recipient)
		}
		fmt.Fprintf(w, "  action: %s %s %s\n", s.Main.Kind, s.Main.Model.Method, s.Main.Model.Href)
	case *step.AuthorizationCompleted:
		fmt.Fprintf(w, "  code: %s\n", secret(s.Properties.Code, reveal))
		if s.Properties.State != "" {
			fmt.Fprintf(w, "  state: %s\n", s.Properties.State)
		}
	case *step.ExternalBrowserClientOperation:
		fmt.Fprintf(w, "  operation: %s\n  href: %s\n", s.Operation.Name(), s.Operation.Href)
	case *step.BankIDClientOperation:
		fmt.Fprintf(w, "  operation: %s\n  href: %s\n", s.Operation.Name(), s.Operation.Href)
	case *step.EncapClientOperation:
		fmt.Fprintf(w, "  operation: %s\n  href: %s\n", s.Operation.Name(), s.Operation.Href)
	case *step.UnknownClientOperation:
		fmt.Fprintf(w, "  operation: %s\n", s.Operation.Name())
	case *step.ContinueSameStep:
		printMessages(w, s.Representation.Messages)
	case *step.UnknownStep:
		if s.Representation != nil {
			fmt.Fprintf(w, "  type: %s\n", s.Representation.Type)
		}
	case *step.InvalidStep:
		if s.Representation != nil {
			fmt.Fprintf(w, "  type: %s\n", s.Representation.Type)
		}
	case *step.ProblemStep:
		printProblem(w, s.Problem)
	case *step.TokensStep:
		printTokens(w, s.Tokens, reveal)
	case *step.SystemErrorStep:
		fmt.Fprintf(w, "  title: %s\n  description: %s\n", s.Title, s.Description)
	}
}

func printForm(w io.Writer, form *model.FormAction) {
	fmt.Fprintf(w, "  action: %s %s %s\n", form.Kind, form.Model.Method, form.Model.Href)
	for _, field := range form.Model.Fields {
		fmt.Fprintf(w, "    - %s (%s)\n", field.FieldName(), field.FieldType())
	}
}

func printMessages(w io.Writer, messages []model.UserMessage) {
	for _, msg := range messages {
		fmt.Fprintf(w, "  %s: %s\n", msg.Style(), model.MessageValue(msg.Text))
	}
}

func printProblem(w io.Writer, problem model.Problem) {
	fmt.Fprintf(w, "  type: %s\n", problem.ProblemType())
	if title := problem.ProblemTitle(); title != "" {
		fmt.Fprintf(w, "  title: %s\n", title)
	}
	if code := problem.ProblemCode(); code != "" {
		fmt.Fprintf(w, "  code: %s\n", code)
	}
	printMessages(w, problem.ProblemMessages())

	switch p := problem.(type) {
	case *model.InvalidInputProblem:
		for _, field := range p.InvalidFields {
			reason := strings.TrimSpace(strings.Join([]string{field.Reason, field.Detail}, " "))
			fmt.Fprintf(w, "  invalid field: %s %s\n", field.Name, reason)
		}
	case *model.AuthorizationProblem:
		fmt.Fprintf(w, "  error: %s\n", p.Error)
		if p.ErrorDescription != "" {
			fmt.Fprintf(w, "  error description: %s\n", p.ErrorDescription)
		}
	}
}

func printTokens(w io.Writer, resp *model.TokenResponse, reveal bool) {
	for _, entry := range tokens.Summarize(resp, reveal) {
		fmt.Fprintf(w, "  %s: %s\n", entry.Key, entry.Value)
	}
	if resp == nil || resp.IDToken == "" {
		return
	}

	claims, err := tokens.DecodeClaims(resp.IDToken)
	if err != nil {
		fmt.Fprintf(w, "  id token claims unavailable: %v\n", err)
		return
	}
	fmt.Fprintln(w, "  id token claims:")
	for _, entry := range tokens.SummarizeClaims(claims) {
		fmt.Fprintf(w, "    %s: %s\n", entry.Key, entry.Value)
	}
}

func secret(s string, reveal bool) string {
	if reveal {
		return s
	}
	return log.MaskString(s)
}
