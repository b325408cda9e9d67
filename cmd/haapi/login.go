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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/asgardeo/haapi-client/internal/cert"
	"github.com/asgardeo/haapi-client/internal/haapi/flow"
	"github.com/asgardeo/haapi-client/internal/haapi/step"
	"github.com/asgardeo/haapi-client/internal/system/config"
	httpservice "github.com/asgardeo/haapi-client/internal/system/http"
	"github.com/asgardeo/haapi-client/internal/system/log"
)

type loginOptions struct {
	configPath string
	profile    string
	reveal     bool
}

func newLoginCommand() *cobra.Command {
	opts := loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Run a login flow against a HAAPI enabled server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			profile, home, err := loadProfile(opts.configPath, opts.profile)
			if err != nil {
				return err
			}
			tlsConfig, err := cert.GetTLSConfig(profile, home)
			if err != nil {
				return fmt.Errorf("invalid TLS settings: %w", err)
			}

			var flowOpts []flow.Option
			if tlsConfig != nil {
				flowOpts = append(flowOpts,
					flow.WithHTTPClient(httpservice.NewHTTPClientWithTLS(profile.HTTPTimeout, tlsConfig)))
			}
			manager := flow.NewFlowManager(profile, flowOpts...)
			return runLogin(ctx, cmd, manager, opts.reveal)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "deployment.yaml", "Path to the client configuration file")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Client profile to use, defaults to the default profile")
	cmd.Flags().BoolVar(&opts.reveal, "reveal", false, "Print tokens without masking them")
	return cmd
}

// loadProfile loads the configuration file and returns the validated profile
// with the directory holding the file.
func loadProfile(path, name string) (*config.ClientConfig, string, error) {
	deployment, err := config.LoadDeployment(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load configuration: %w", err)
	}
	profile, err := deployment.Profile(name)
	if err != nil {
		return nil, "", err
	}
	return profile, deployment.Home, nil
}

// runLogin drives the flow until tokens are issued, prompting for input when
// a step needs the user.
func runLogin(ctx context.Context, cmd *cobra.Command, manager flow.FlowManagerInterface, reveal bool) error {
	out := cmd.OutOrStdout()
	prompt := newPrompter(cmd.InOrStdin(), out)
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginCommand"))

	// last is the step shown again after a problem.
	var last step.Step
	current := manager.Start(ctx)
	for {
		printStep(out, current, reveal)
		logger.Debug("Handling step", log.String(log.LoggerKeyFlowID, manager.FlowID()),
			log.String(log.LoggerKeyStep, current.StepName()))

		switch s := current.(type) {
		case *step.InteractiveForm:
			last = s
			parameters, err := prompt.fillForm(s.Action)
			if err != nil {
				return err
			}
			current = manager.SubmitForm(ctx, s.Action.Model, parameters)
		case *step.AuthenticatorSelector:
			last = s
			if len(s.Authenticators) == 0 {
				return errors.New("no authenticator is available")
			}
			index, err := prompt.choose("Authenticator", len(s.Authenticators), 0)
			if err != nil {
				return err
			}
			current = manager.SubmitForm(ctx, s.Authenticators[index].Action.Model, nil)
		case *step.Redirect:
			current = manager.SubmitForm(ctx, s.Action.Model, nil)
		case *step.PollingStep:
			if s.IsPending() {
				if err := prompt.pause("Press enter to poll again"); err != nil {
					return err
				}
			}
			current = manager.SubmitForm(ctx, s.Main.Model, nil)
		case *step.AuthorizationCompleted:
			if s.Properties.Code == "" {
				return errors.New("the authorization response does not carry a code")
			}
			current = manager.FetchAccessToken(ctx, s.Properties.Code)
		case *step.TokensStep:
			return nil
		case *step.ProblemStep, *step.ContinueSameStep:
			if last == nil {
				return fmt.Errorf("the flow ended with %s", s.StepName())
			}
			current = last
		case *step.SystemErrorStep:
			return fmt.Errorf("%s: %s", s.Title, s.Description)
		default:
			return fmt.Errorf("cannot continue the flow from %s", s.StepName())
		}
	}
}
