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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MessageTestSuite struct {
	suite.Suite
}

func TestMessageSuite(t *testing.T) {
	suite.Run(t, new(MessageTestSuite))
}

func (suite *MessageTestSuite) TestNewMessage() {
	testCases := []struct {
		name     string
		literal  string
		key      string
		expected Message
	}{
		{"Both", "Username", "label.username", OfLiteralAndKey{Text: "Username", TextKey: "label.username"}},
		{"LiteralOnly", "Username", "", OfLiteral{Text: "Username"}},
		{"KeyOnly", "", "label.username", OfKey{TextKey: "label.username"}},
		{"Neither", "", "", nil},
		{"BlankLiteral", "  ", "label.username", OfKey{TextKey: "label.username"}},
		{"BlankBoth", " ", "\t", nil},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewMessage(tc.literal, tc.key))
		})
	}
}

func (suite *MessageTestSuite) TestMessageAccessors() {
	both := NewMessage("Sign in", "action.signin")
	assert.Equal(suite.T(), "Sign in", both.Literal())
	assert.Equal(suite.T(), "action.signin", both.Key())
	assert.Equal(suite.T(), "Sign in", both.Value())

	key := NewMessage("", "action.signin")
	assert.Empty(suite.T(), key.Literal())
	assert.Equal(suite.T(), "action.signin", key.Value())

	assert.Equal(suite.T(), "", MessageValue(nil))
	assert.Equal(suite.T(), "Sign in", MessageValue(both))
}

func (suite *MessageTestSuite) TestUserMessageStyle() {
	testCases := []struct {
		name      string
		classList []string
		expected  MessageStyle
	}{
		{"Empty", nil, MessageStyleInfo},
		{"Error", []string{"error"}, MessageStyleError},
		{"ErrorUpperCase", []string{"ERROR"}, MessageStyleError},
		{"Warning", []string{"message", "Warning"}, MessageStyleWarning},
		{"ErrorWinsOverWarning", []string{"warning", "error"}, MessageStyleError},
		{"Other", []string{"heading"}, MessageStyleInfo},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			m := UserMessage{Text: OfLiteral{Text: "x"}, ClassList: tc.classList}
			assert.Equal(t, tc.expected, m.Style())
		})
	}
}
