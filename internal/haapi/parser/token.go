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
	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

// ParseTokenResponse converts a decoded token endpoint response.
func ParseTokenResponse(obj map[string]any) (*model.TokenResponse, error) {
	return parsing("AccessToken", func() (*model.TokenResponse, error) {
		o := jsonObject(obj)
		accessToken, err := o.string("access_token")
		if err != nil {
			return nil, err
		}
		resp := &model.TokenResponse{AccessToken: accessToken, Properties: o.raw()}
		for name, target := range map[string]*string{
			"token_type":    &resp.TokenType,
			"scope":         &resp.Scope,
			"refresh_token": &resp.RefreshToken,
			"id_token":      &resp.IDToken,
		} {
			if *target, err = o.stringOpt(name); err != nil {
				return nil, err
			}
		}
		if resp.ExpiresIn, err = o.durationOpt("expires_in"); err != nil {
			return nil, err
		}
		return resp, nil
	})
}

// ParseTokenResponseJSON decodes data and parses it as a token response.
func ParseTokenResponseJSON(data []byte) (*model.TokenResponse, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, &ParseError{Context: "AccessToken", Err: err}
	}
	return ParseTokenResponse(obj)
}
