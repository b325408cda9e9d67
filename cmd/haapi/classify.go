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
	"os"

	"github.com/spf13/cobra"

	"github.com/asgardeo/haapi-client/internal/haapi/parser"
	"github.com/asgardeo/haapi-client/internal/haapi/step"
)

func newClassifyCommand() *cobra.Command {
	var asProblem, asTokens, reveal bool

	cmd := &cobra.Command{
		Use:   "classify [file|-]",
		Short: "Parse a HAAPI document and print the step it maps to",
		Long: "Parse a representation, a problem document or a token response read from a file " +
			"or from the standard input, and print the resulting step.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case asProblem:
				problem, err := parser.ParseProblemJSON(data)
				if err != nil {
					return err
				}
				printStep(out, &step.ProblemStep{Problem: problem}, reveal)
				if !parser.IsKnownProblem(problem) {
					fmt.Fprintln(out, "  ends flow: true")
				}
			case asTokens:
				tokens, err := parser.ParseTokenResponseJSON(data)
				if err != nil {
					return err
				}
				printStep(out, &step.TokensStep{Tokens: tokens}, reveal)
			default:
				rep, err := parser.ParseJSON(data)
				if err != nil {
					return err
				}
				printStep(out, step.ToStep(rep), reveal)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asProblem, "problem", false, "Parse the input as a problem document")
	cmd.Flags().BoolVar(&asTokens, "tokens", false, "Parse the input as a token response")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print tokens without masking them")
	cmd.MarkFlagsMutuallyExclusive("problem", "tokens")
	return cmd
}

// readInput reads the named file, or the standard input when the name is missing or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read the standard input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}
