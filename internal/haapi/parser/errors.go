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

// Package parser converts HAAPI JSON documents into the typed representation model.
package parser

import (
	"errors"
	"fmt"
)

// ParseError reports a document that could not be parsed, naming the parsing context.
type ParseError struct {
	Context string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Error while parsing '%s'", e.Context)
	}
	return fmt.Sprintf("Error while parsing '%s': %s", e.Context, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Contexts returns the chain of parsing contexts from the outermost to the innermost.
func (e *ParseError) Contexts() []string {
	contexts := []string{e.Context}
	var inner *ParseError
	if errors.As(e.Err, &inner) {
		contexts = append(contexts, inner.Contexts()...)
	}
	return contexts
}

// Root returns the innermost cause of the error.
func (e *ParseError) Root() error {
	var inner *ParseError
	if errors.As(e.Err, &inner) {
		return inner.Root()
	}
	return e.Err
}

// parsing runs fn and wraps any failure in a ParseError for the given context.
func parsing[T any](context string, fn func() (T, error)) (T, error) {
	v, err := fn()
	if err != nil {
		var zero T
		return zero, &ParseError{Context: context, Err: err}
	}
	return v, nil
}

func errMissingField(name string) error {
	return fmt.Errorf("missing required field '%s'", name)
}

func errWrongType(name, expected string, value any) error {
	return fmt.Errorf("field '%s' is not %s: %v", name, expected, value)
}
