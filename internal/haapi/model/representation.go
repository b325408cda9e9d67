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

// Representation is the parsed form of an application/vnd.auth+json document.
type Representation struct {
	Type       RepresentationType
	Properties Properties
	Actions    []Action
	Links      []Link
	Metadata   map[string]string
	Messages   []UserMessage
}

// FormActions returns the form actions of the representation in document order.
func (r *Representation) FormActions() []*FormAction {
	var forms []*FormAction
	for _, a := range r.Actions {
		if f, ok := a.(*FormAction); ok {
			forms = append(forms, f)
		}
	}
	return forms
}

// FindForm returns the first form action of the given kind, or nil.
func (r *Representation) FindForm(kind string) *FormAction {
	for _, f := range r.FormActions() {
		if f.Kind == kind {
			return f
		}
	}
	return nil
}
