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

package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

// Parse converts a decoded application/vnd.auth+json object into a representation.
func Parse(obj map[string]any) (*model.Representation, error) {
	return parsing("Representation", func() (*model.Representation, error) {
		o := jsonObject(obj)
		rawType, err := o.string("type")
		if err != nil {
			return nil, err
		}
		repType := model.ResolveRepresentationType(rawType)

		properties, err := parseProperties(repType, o)
		if err != nil {
			return nil, err
		}
		actions, err := list(o, "actions", parseAction)
		if err != nil {
			return nil, err
		}
		links, err := list(o, "links", parseLink)
		if err != nil {
			return nil, err
		}
		metadata, err := o.mapOfStrings("metadata")
		if err != nil {
			return nil, err
		}
		messages, err := list(o, "messages", parseUserMessage)
		if err != nil {
			return nil, err
		}

		return &model.Representation{
			Type:       repType,
			Properties: properties,
			Actions:    actions,
			Links:      links,
			Metadata:   metadata,
			Messages:   messages,
		}, nil
	})
}

// ParseJSON decodes data and parses it as a representation. Numbers are kept
// exact so that large integers survive decoding.
func ParseJSON(data []byte) (*model.Representation, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, &ParseError{Context: "Representation", Err: err}
	}
	return Parse(obj)
}

func decodeObject(data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var obj map[string]any
	if err := decoder.Decode(&obj); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("invalid JSON object: null")
	}
	return obj, nil
}

func parseProperties(repType model.RepresentationType, o jsonObject) (model.Properties, error) {
	switch repType {
	case model.RepresentationTypePollingStep:
		props, err := o.object("properties")
		if err != nil {
			return nil, err
		}
		return parsePollingProperties(props)
	case model.RepresentationTypeOAuthAuthorizationResponse:
		props, err := o.object("properties")
		if err != nil {
			return nil, err
		}
		return parseAuthorizationResponseProperties(props)
	default:
		props, err := o.objectOpt("properties")
		if err != nil || props == nil {
			return nil, err
		}
		return &model.UnknownProperties{JSON: props.raw()}, nil
	}
}

func parsePollingProperties(o jsonObject) (*model.PollingProperties, error) {
	return parsing("polling", func() (*model.PollingProperties, error) {
		recipient, err := o.stringOpt("recipientOfCommunication")
		if err != nil {
			return nil, err
		}
		status, err := o.string("status")
		if err != nil {
			return nil, err
		}
		return &model.PollingProperties{
			Recipient: recipient,
			Status:    model.ResolvePollingStatus(status),
			JSON:      o.raw(),
		}, nil
	})
}

func parseAuthorizationResponseProperties(o jsonObject) (*model.AuthorizationResponseProperties, error) {
	return parsing("oauth-authorization-response", func() (*model.AuthorizationResponseProperties, error) {
		p := &model.AuthorizationResponseProperties{JSON: o.raw()}
		for name, target := range map[string]*string{
			"code":          &p.Code,
			"state":         &p.State,
			"scope":         &p.Scope,
			"access_token":  &p.AccessToken,
			"token_type":    &p.TokenType,
			"id_token":      &p.IDToken,
			"session_state": &p.SessionState,
			"refresh_token": &p.RefreshToken,
		} {
			value, err := o.stringOpt(name)
			if err != nil {
				return nil, err
			}
			*target = value
		}
		expiresIn, err := o.durationOpt("expires_in")
		if err != nil {
			return nil, err
		}
		p.ExpiresIn = expiresIn
		return p, nil
	})
}

func parseLink(o jsonObject) (model.Link, error) {
	return parsing("Link", func() (model.Link, error) {
		href, err := o.string("href")
		if err != nil {
			return model.Link{}, err
		}
		rel, err := o.string("rel")
		if err != nil {
			return model.Link{}, err
		}
		title, err := o.messageOpt("title")
		if err != nil {
			return model.Link{}, err
		}
		linkType, err := o.stringOpt("type")
		if err != nil {
			return model.Link{}, err
		}
		return model.Link{Href: href, Rel: rel, Title: title, Type: linkType}, nil
	})
}

func parseUserMessage(o jsonObject) (model.UserMessage, error) {
	return parsing("UserMessage", func() (model.UserMessage, error) {
		text, err := o.message("text")
		if err != nil {
			return model.UserMessage{}, err
		}
		classList, err := o.listStrings("classList")
		if err != nil {
			return model.UserMessage{}, err
		}
		return model.UserMessage{Text: text, ClassList: classList}, nil
	})
}
