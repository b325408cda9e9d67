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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

// prompter reads answers line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints the label and returns the answer, or def when the answer is empty.
func (p *prompter) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}
	return def, nil
}

// choose asks for a 1-based index and returns it 0-based.
func (p *prompter) choose(label string, count, def int) (int, error) {
	for {
		answer, err := p.ask(fmt.Sprintf("%s (1-%d)", label, count), strconv.Itoa(def+1))
		if err != nil {
			return 0, err
		}
		index, err := strconv.Atoi(answer)
		if err == nil && index >= 1 && index <= count {
			return index - 1, nil
		}
		fmt.Fprintf(p.out, "Enter a number between 1 and %d\n", count)
	}
}

func (p *prompter) pause(label string) error {
	fmt.Fprintf(p.out, "%s", label)
	_, err := p.in.ReadString('\n')
	fmt.Fprintln(p.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// fillForm asks for the value of every field the user can edit.
func (p *prompter) fillForm(form *model.FormAction) (map[string]string, error) {
	if title := model.MessageValue(form.Title); title != "" {
		fmt.Fprintln(p.out, title)
	}

	parameters := map[string]string{}
	for _, field := range form.Model.Fields {
		var (
			answer string
			err    error
		)
		switch f := field.(type) {
		case *model.HiddenField, *model.ContextField:
			continue
		case *model.TextField:
			answer, err = p.ask(fieldLabel(f.Label, f.Name), f.Value)
		case *model.UsernameField:
			answer, err = p.ask(fieldLabel(f.Label, f.Name), f.Value)
		case *model.PasswordField:
			answer, err = p.ask(fieldLabel(f.Label, f.Name), "")
		case *model.CheckboxField:
			if f.Readonly {
				continue
			}
			answer, err = p.checkbox(f)
		case *model.SelectField:
			answer, err = p.selectOption(f)
		default:
			answer, err = p.ask(field.FieldName(), field.FieldValue())
		}
		if err != nil {
			return nil, err
		}
		parameters[field.FieldName()] = answer
	}
	return parameters, nil
}

// checkbox returns the value to submit, which is empty when the box is left unchecked.
func (p *prompter) checkbox(f *model.CheckboxField) (string, error) {
	def := "n"
	if f.Checked {
		def = "y"
	}
	answer, err := p.ask(fieldLabel(f.Label, f.Name)+" (y/n)", def)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		return "", nil
	}
	if f.Value == "" {
		return "on", nil
	}
	return f.Value, nil
}

func (p *prompter) selectOption(f *model.SelectField) (string, error) {
	if len(f.Options) == 0 {
		return p.ask(fieldLabel(f.Label, f.Name), f.Value)
	}

	fmt.Fprintln(p.out, fieldLabel(f.Label, f.Name))
	def := -1
	for i, option := range f.Options {
		if option.Selected && def < 0 {
			def = i
		}
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, fieldLabel(option.Label, option.Value))
	}
	if def < 0 {
		def = 0
	}
	index, err := p.choose("Option", len(f.Options), def)
	if err != nil {
		return "", err
	}
	return f.Options[index].Value, nil
}

func fieldLabel(label model.Message, name string) string {
	if value := model.MessageValue(label); value != "" {
		return value
	}
	return name
}
