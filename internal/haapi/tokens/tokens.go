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

// Package tokens inspects the tokens obtained at the end of a flow.
package tokens

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/asgardeo/haapi-client/internal/haapi/model"
	"github.com/asgardeo/haapi-client/internal/system/log"
)

// Entry is one printable property of a token response.
type Entry struct {
	Key   string
	Value string
}

// DecodeClaims returns the claims of a JWT without verifying its signature.
// The result is only fit for display.
func DecodeClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token claims: %w", err)
	}
	return claims, nil
}

// Summarize lists the properties of a token response. Secrets are masked
// unless reveal is set.
func Summarize(resp *model.TokenResponse, reveal bool) []Entry {
	if resp == nil {
		return nil
	}
	secret := func(s string) string {
		if reveal {
			return s
		}
		return log.MaskString(s)
	}

	entries := []Entry{{Key: "access_token", Value: secret(resp.AccessToken)}}
	if resp.TokenType != "" {
		entries = append(entries, Entry{Key: "token_type", Value: resp.TokenType})
	}
	if resp.Scope != "" {
		entries = append(entries, Entry{Key: "scope", Value: resp.Scope})
	}
	if resp.ExpiresIn != nil {
		entries = append(entries, Entry{Key: "expires_in", Value: resp.ExpiresIn.String()})
	}
	if resp.RefreshToken != "" {
		entries = append(entries, Entry{Key: "refresh_token", Value: secret(resp.RefreshToken)})
	}
	if resp.IDToken != "" {
		entries = append(entries, Entry{Key: "id_token", Value: secret(resp.IDToken)})
	}
	return entries
}

// SummarizeClaims lists the claims sorted by name, rendering time claims as RFC 3339.
func SummarizeClaims(claims jwt.MapClaims) []Entry {
	names := make([]string, 0, len(claims))
	for name := range claims {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Key: name, Value: claimValue(claims, name)})
	}
	return entries
}

func claimValue(claims jwt.MapClaims, name string) string {
	var (
		numeric *jwt.NumericDate
		err     error
	)
	switch name {
	case "exp":
		numeric, err = claims.GetExpirationTime()
	case "iat":
		numeric, err = claims.GetIssuedAt()
	case "nbf":
		numeric, err = claims.GetNotBefore()
	case "auth_time":
		if v, ok := claims[name].(float64); ok {
			numeric = jwt.NewNumericDate(time.Unix(int64(v), 0))
		}
	}
	if err == nil && numeric != nil {
		return numeric.UTC().Format(time.RFC3339)
	}

	switch v := claims[name].(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(v)
	}
}
