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

// Problem is the parsed form of an application/problem+json document.
type Problem interface {
	ProblemType() RepresentationType
	ProblemTitle() string
	ProblemCode() string
	ProblemMessages() []UserMessage
	ProblemLinks() []Link
}

// GenericProblem is a recognised problem without a dedicated shape.
type GenericProblem struct {
	Type     RepresentationType
	Title    string
	Code     string
	Messages []UserMessage
	Links    []Link
}

func (p *GenericProblem) ProblemType() RepresentationType { return p.Type }
func (p *GenericProblem) ProblemTitle() string            { return p.Title }
func (p *GenericProblem) ProblemCode() string             { return p.Code }
func (p *GenericProblem) ProblemMessages() []UserMessage  { return p.Messages }
func (p *GenericProblem) ProblemLinks() []Link            { return p.Links }

// InvalidInputProblem reports per field validation failures.
type InvalidInputProblem struct {
	GenericProblem
	InvalidFields    []InvalidField
	ErrorDescription string
}

// InvalidField is one field rejected by the server.
type InvalidField struct {
	Name   string
	Reason string
	Detail string
}

// AuthorizationProblem carries an OAuth error response.
type AuthorizationProblem struct {
	GenericProblem
	Error            string
	ErrorDescription string
}
