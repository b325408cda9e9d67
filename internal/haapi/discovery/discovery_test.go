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

package discovery

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	httpservice "github.com/asgardeo/haapi-client/internal/system/http"
	"github.com/asgardeo/haapi-client/tests/mocks/httpmock"
)

const testMetadataURL = "https://idp.example.com/oauth/v2/oauth-anonymous/.well-known/openid-configuration"

type ResolverTestSuite struct {
	suite.Suite
	mockHTTPClient *httpmock.HTTPClientInterfaceMock
	resolver       *Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (suite *ResolverTestSuite) SetupTest() {
	suite.mockHTTPClient = httpmock.NewHTTPClientInterfaceMock(suite.T())
	suite.resolver = NewResolver(suite.mockHTTPClient, 0)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func (suite *ResolverTestSuite) TestResolveCachesMetadata() {
	suite.mockHTTPClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == testMetadataURL && req.Header.Get("Accept") == "application/json"
	})).Return(jsonResponse(http.StatusOK, `{
		"issuer": "https://idp.example.com/oauth/v2/oauth-anonymous",
		"authorization_endpoint": "https://idp.example.com/oauth/v2/oauth-authorize",
		"token_endpoint": "https://idp.example.com/oauth/v2/oauth-token",
		"scopes_supported": ["openid", "profile"]
	}`), nil).Once()

	first, err := suite.resolver.Resolve(context.Background(), testMetadataURL)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://idp.example.com/oauth/v2/oauth-authorize", first.AuthorizationEndpoint)
	assert.Equal(suite.T(), "https://idp.example.com/oauth/v2/oauth-token", first.TokenEndpoint)
	assert.Equal(suite.T(), []string{"openid", "profile"}, first.ScopesSupported)

	second, err := suite.resolver.Resolve(context.Background(), testMetadataURL)
	require.NoError(suite.T(), err)
	assert.Same(suite.T(), first, second)
}

func (suite *ResolverTestSuite) TestInvalidateRefetches() {
	body := `{"authorization_endpoint":"https://a","token_endpoint":"https://t"}`
	suite.mockHTTPClient.On("Do", mock.Anything).Return(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	}).Twice()

	_, err := suite.resolver.Resolve(context.Background(), testMetadataURL)
	require.NoError(suite.T(), err)
	suite.resolver.Invalidate(testMetadataURL)
	_, err = suite.resolver.Resolve(context.Background(), testMetadataURL)
	require.NoError(suite.T(), err)
}

func (suite *ResolverTestSuite) TestResolveFailures() {
	testCases := []struct {
		name     string
		response *http.Response
		err      error
		target   error
	}{
		{name: "TransportError", err: errors.New("connection refused")},
		{name: "NotFound", response: jsonResponse(http.StatusNotFound, `{"error":"not_found"}`)},
		{name: "InvalidJSON", response: jsonResponse(http.StatusOK, `{"issuer":`)},
		{name: "MissingEndpoints", response: jsonResponse(http.StatusOK, `{"issuer":"https://idp"}`),
			target: ErrIncompleteMetadata},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			client := httpmock.NewHTTPClientInterfaceMock(t)
			client.On("Do", mock.Anything).Return(tc.response, tc.err).Once()
			resolver := NewResolver(client, 0)

			metadata, err := resolver.Resolve(context.Background(), testMetadataURL)
			assert.Nil(t, metadata)
			require.Error(t, err)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func (suite *ResolverTestSuite) TestResolveAgainstServer() {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"issuer":"http://issuer","authorization_endpoint":"http://issuer/authorize",` +
			`"token_endpoint":"http://issuer/token"}`))
	}))
	defer server.Close()

	resolver := NewResolver(httpservice.NewHTTPClient(), 0)
	for i := 0; i < 3; i++ {
		metadata, err := resolver.Resolve(context.Background(), server.URL)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "http://issuer/token", metadata.TokenEndpoint)
	}
	assert.Equal(suite.T(), int32(1), hits.Load())
}

func (suite *ResolverTestSuite) TestResolveCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resolver := NewResolver(httpservice.NewHTTPClient(), 0)
	_, err := resolver.Resolve(ctx, "http://127.0.0.1:1/.well-known/openid-configuration")
	require.Error(suite.T(), err)
}
