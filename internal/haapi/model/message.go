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

import "strings"

// Message is a user-facing text expressed as a literal, a translation key, or both.
type Message interface {
	// Literal returns the literal text, or an empty string when only a key is present.
	Literal() string
	// Key returns the translation key, or an empty string when only a literal is present.
	Key() string
	// Value returns the literal text when present and the key otherwise.
	Value() string
	isMessage()
}

// OfLiteral is a message carrying only literal text.
type OfLiteral struct {
	Text string
}

func (m OfLiteral) Literal() string { return m.Text }
func (m OfLiteral) Key() string     { return "" }
func (m OfLiteral) Value() string   { return m.Text }
func (OfLiteral) isMessage()        {}

// OfKey is a message carrying only a translation key.
type OfKey struct {
	TextKey string
}

func (m OfKey) Literal() string { return "" }
func (m OfKey) Key() string     { return m.TextKey }
func (m OfKey) Value() string   { return m.TextKey }
func (OfKey) isMessage()        {}

// OfLiteralAndKey is a message carrying a translation key and a literal fallback for it.
type OfLiteralAndKey struct {
	Text    string
	TextKey string
}

func (m OfLiteralAndKey) Literal() string { return m.Text }
func (m OfLiteralAndKey) Key() string     { return m.TextKey }
func (m OfLiteralAndKey) Value() string   { return m.Text }
func (OfLiteralAndKey) isMessage()        {}

// NewMessage builds the message variant matching the given literal and key.
// Blank values count as absent. It returns nil when both are absent.
func NewMessage(literal, key string) Message {
	hasLiteral := strings.TrimSpace(literal) != ""
	hasKey := strings.TrimSpace(key) != ""
	switch {
	case hasLiteral && hasKey:
		return OfLiteralAndKey{Text: literal, TextKey: key}
	case hasLiteral:
		return OfLiteral{Text: literal}
	case hasKey:
		return OfKey{TextKey: key}
	default:
		return nil
	}
}

// MessageValue returns the value of a possibly absent message.
func MessageValue(m Message) string {
	if m == nil {
		return ""
	}
	return m.Value()
}

// MessageStyle is the banner style derived from the class list of a user message.
type MessageStyle string

const (
	MessageStyleError   MessageStyle = "error"
	MessageStyleWarning MessageStyle = "warning"
	MessageStyleInfo    MessageStyle = "info"
)

// UserMessage is a message to be displayed to the user.
type UserMessage struct {
	Text      Message
	ClassList []string
}

// Style inspects the class list, ignoring case. Error wins over warning and
// anything else is informational.
func (m UserMessage) Style() MessageStyle {
	style := MessageStyleInfo
	for _, class := range m.ClassList {
		switch strings.ToLower(class) {
		case "error":
			return MessageStyleError
		case "warning":
			style = MessageStyleWarning
		}
	}
	return style
}
