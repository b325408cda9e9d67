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

// Package discovery resolves OpenID Connect provider metadata.
package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/asgardeo/haapi-client/internal/system/constants"
	httpservice "github.com/asgardeo/haapi-client/internal/system/http"
	"github.com/asgardeo/haapi-client/internal/system/log"
)

const (
	loggerComponentName = "DiscoveryResolver"

	// DefaultTTL is how long resolved metadata is kept.
	DefaultTTL = 24 * time.Hour
)

// ErrIncompleteMetadata is returned when the document lacks a required endpoint.
var ErrIncompleteMetadata = errors.New("discovery document is missing required endpoints")

// Metadata is the subset of the provider metadata used by the client.
type Metadata struct {
	Issuer                string   `json:"issuer"`
	AuthorizationEndpoint string   `json:"authorization_endpoint"`
	TokenEndpoint         string   `json:"token_endpoint"`
	UserInfoEndpoint      string   `json:"userinfo_endpoint,omitempty"`
	JWKSURI               string   `json:"jwks_uri,omitempty"`
	ScopesSupported       []string `json:"scopes_supported,omitempty"`
}

// Resolver fetches metadata documents and caches them per URL.
type Resolver struct {
	client httpservice.HTTPClientInterface
	cache  *gocache.Cache
}

// NewResolver creates a resolver. A non positive ttl uses DefaultTTL.
func NewResolver(client httpservice.HTTPClientInterface, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Resolver{
		client: client,
		cache:  gocache.New(ttl, time.Hour),
	}
}

// Resolve returns the metadata published at metadataURL.
func (r *Resolver) Resolve(ctx context.Context, metadataURL string) (*Metadata, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if cached, ok := r.cache.Get(metadataURL); ok {
		if metadata, ok := cached.(*Metadata); ok {
			logger.Debug("Using cached discovery metadata", log.String("url", metadataURL))
			return metadata, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, metadataURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create discovery request: %w", err)
	}
	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discovery document: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Error("Unexpected discovery response", log.Int("statusCode", resp.StatusCode),
			log.String("response", string(body)))
		return nil, fmt.Errorf("failed to fetch discovery document, status code: %d", resp.StatusCode)
	}

	var metadata Metadata
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return nil, fmt.Errorf("failed to decode discovery document: %w", err)
	}
	if metadata.AuthorizationEndpoint == "" || metadata.TokenEndpoint == "" {
		return nil, ErrIncompleteMetadata
	}

	r.cache.SetDefault(metadataURL, &metadata)
	logger.Debug("Resolved discovery metadata", log.String("url", metadataURL),
		log.String("issuer", metadata.Issuer))
	return &metadata, nil
}

// Invalidate drops the cached metadata for metadataURL.
func (r *Resolver) Invalidate(metadataURL string) {
	r.cache.Delete(metadataURL)
}
