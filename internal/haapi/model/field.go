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

// FieldType is the closed set of form field types.
type FieldType string

const (
	FieldTypeHidden   FieldType = "hidden"
	FieldTypeText     FieldType = "text"
	FieldTypeUsername FieldType = "username"
	FieldTypePassword FieldType = "password"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
	FieldTypeContext  FieldType = "context"
)

// Field is an input of a form action.
type Field interface {
	FieldName() string
	FieldValue() string
	FieldType() FieldType
}

// HiddenField carries a value that is submitted without user interaction.
type HiddenField struct {
	Name  string
	Value string
}

func (f *HiddenField) FieldName() string  { return f.Name }
func (f *HiddenField) FieldValue() string { return f.Value }
func (*HiddenField) FieldType() FieldType { return FieldTypeHidden }

// TextField is a free text input.
type TextField struct {
	Name        string
	Value       string
	Label       Message
	Placeholder string
	Kind        *TextKind
}

func (f *TextField) FieldName() string  { return f.Name }
func (f *TextField) FieldValue() string { return f.Value }
func (*TextField) FieldType() FieldType { return FieldTypeText }

// UsernameField is the username input of a login form.
type UsernameField struct {
	Name        string
	Value       string
	Label       Message
	Placeholder string
}

func (f *UsernameField) FieldName() string  { return f.Name }
func (f *UsernameField) FieldValue() string { return f.Value }
func (*UsernameField) FieldType() FieldType { return FieldTypeUsername }

// PasswordField is a secret input.
type PasswordField struct {
	Name        string
	Value       string
	Label       Message
	Placeholder string
}

func (f *PasswordField) FieldName() string  { return f.Name }
func (f *PasswordField) FieldValue() string { return f.Value }
func (*PasswordField) FieldType() FieldType { return FieldTypePassword }

// CheckboxField is a boolean input.
type CheckboxField struct {
	Name     string
	Value    string
	Label    Message
	Checked  bool
	Readonly bool
}

func (f *CheckboxField) FieldName() string  { return f.Name }
func (f *CheckboxField) FieldValue() string { return f.Value }
func (*CheckboxField) FieldType() FieldType { return FieldTypeCheckbox }

// SelectField offers a choice between fixed values.
type SelectField struct {
	Name    string
	Value   string
	Label   Message
	Options []SelectOption
}

func (f *SelectField) FieldName() string  { return f.Name }
func (f *SelectField) FieldValue() string { return f.Value }
func (*SelectField) FieldType() FieldType { return FieldTypeSelect }

// SelectedValue returns the value of the first selected option, falling back to the field value.
func (f *SelectField) SelectedValue() string {
	for _, o := range f.Options {
		if o.Selected {
			return o.Value
		}
	}
	return f.Value
}

// SelectOption is one choice of a select field.
type SelectOption struct {
	Label    Message
	Value    string
	Selected bool
}

// ContextField carries client context collected by the client itself.
type ContextField struct {
	Name  string
	Value string
}

func (f *ContextField) FieldName() string  { return f.Name }
func (f *ContextField) FieldValue() string { return f.Value }
func (*ContextField) FieldType() FieldType { return FieldTypeContext }
