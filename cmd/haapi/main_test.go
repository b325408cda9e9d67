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

package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginForm = `{
	"type": "authentication-step",
	"actions": [{
		"template": "form", "kind": "login", "title": "Sign in",
		"model": {"href": "/authn/login", "method": "POST", "fields": [
			{"type": "username", "name": "userName", "label": "Username"},
			{"type": "password", "name": "password", "label": "Password"},
			{"type": "checkbox", "name": "remember", "label": "Remember me"}
		]}
	}],
	"messages": [{"text": "Welcome", "classList": ["info"]}]
}`

type CommandTestSuite struct {
	suite.Suite
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

// execute runs the root command with the given arguments and standard input.
func (suite *CommandTestSuite) execute(stdin string, args ...string) (string, error) {
	out := &bytes.Buffer{}
	root := newRootCommand()
	root.SetArgs(append([]string{"--env-file", filepath.Join(suite.T().TempDir(), ".env")}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(out)
	root.SetErr(out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (suite *CommandTestSuite) TestRunExitCodes() {
	path := filepath.Join(suite.T().TempDir(), "step.json")
	require.NoError(suite.T(), os.WriteFile(path, []byte(`{"type":"continue-same-step"}`), 0o600))
	envFile := filepath.Join(suite.T().TempDir(), ".env")

	assert.Equal(suite.T(), 0, run([]string{"--env-file", envFile, "classify", path}))
	assert.Equal(suite.T(), 1, run([]string{"--env-file", envFile, "classify", path + ".missing"}))
	assert.Equal(suite.T(), 1, run([]string{"--env-file", envFile, "unknown-command"}))
}

func (suite *CommandTestSuite) TestClassifyRepresentation() {
	output, err := suite.execute(loginForm, "classify")
	require.NoError(suite.T(), err)

	assert.Contains(suite.T(), output, "step: InteractiveForm")
	assert.Contains(suite.T(), output, "type: authentication-step")
	assert.Contains(suite.T(), output, "info: Welcome")
	assert.Contains(suite.T(), output, "action: login POST /authn/login")
	assert.Contains(suite.T(), output, "- password (password)")
}

func (suite *CommandTestSuite) TestClassifyFromFile() {
	path := filepath.Join(suite.T().TempDir(), "redirect.json")
	require.NoError(suite.T(), os.WriteFile(path, []byte(`{"type":"redirection-step","actions":[
		{"template":"form","kind":"redirect","model":{"href":"/next","method":"GET","fields":[]}}]}`), 0o600))

	output, err := suite.execute("", "classify", path)
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), output, "step: Redirect")
	assert.Contains(suite.T(), output, "action: GET /next")
}

func (suite *CommandTestSuite) TestClassifyProblem() {
	testCases := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name: "InvalidInput",
			input: `{"type":"https://curity.se/problems/invalid-input","title":"Invalid input",
				"invalidFields":[{"name":"email","reason":"invalid","detail":"bad format"}]}`,
			contains: []string{"step: ProblemStep", "title: Invalid input", "invalid field: email invalid bad format"},
			excludes: []string{"ends flow"},
		},
		{
			name: "AuthorizationResponse",
			input: `{"type":"https://curity.se/problems/error-authorization-response",
				"error":"access_denied","error_description":"User cancelled"}`,
			contains: []string{"error: access_denied", "error description: User cancelled", "ends flow: true"},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			output, err := suite.execute(tc.input, "classify", "--problem", "-")
			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func (suite *CommandTestSuite) TestClassifyTokens() {
	idToken := signedIDToken(suite.T(), "alice")
	input := fmt.Sprintf(`{"access_token":"abcdefgh","token_type":"bearer","expires_in":300,"id_token":%q}`, idToken)

	output, err := suite.execute(input, "classify", "--tokens")
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), output, "step: TokensStep")
	assert.Contains(suite.T(), output, "access_token: a******h")
	assert.Contains(suite.T(), output, "expires_in: 5m0s")
	assert.Contains(suite.T(), output, "sub: alice")

	output, err = suite.execute(input, "classify", "--tokens", "--reveal")
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), output, "access_token: abcdefgh")
}

func (suite *CommandTestSuite) TestClassifyErrors() {
	_, err := suite.execute(`{"actions":[]}`, "classify")
	assert.ErrorContains(suite.T(), err, "missing required field 'type'")

	_, err = suite.execute(`{}`, "classify", "--problem", "--tokens")
	assert.Error(suite.T(), err)

	_, err = suite.execute("", "classify", filepath.Join(suite.T().TempDir(), "missing.json"))
	assert.ErrorContains(suite.T(), err, "failed to read")
}

func signedIDToken(t *testing.T, subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}

// loginServer answers the requests of a username and password login.
type loginServer struct {
	mu     sync.Mutex
	state  string
	forms  []map[string]string
	server *httptest.Server
}

func newLoginServer(t *testing.T) *loginServer {
	ls := &loginServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/authorize", func(w http.ResponseWriter, r *http.Request) {
		ls.mu.Lock()
		ls.state = r.URL.Query().Get("state")
		ls.mu.Unlock()
		w.Header().Set("Content-Type", "application/vnd.auth+json")
		_, _ = w.Write([]byte(loginForm))
	})
	mux.HandleFunc("/authn/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		ls.mu.Lock()
		ls.forms = append(ls.forms, map[string]string{
			"userName": r.PostForm.Get("userName"),
			"password": r.PostForm.Get("password"),
			"remember": r.PostForm.Get("remember"),
		})
		state := ls.state
		ls.mu.Unlock()

		if r.PostForm.Get("password") != "secret" {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"type":"https://curity.se/problems/incorrect-credentials",
				"title":"Incorrect credentials"}`))
			return
		}
		w.Header().Set("Content-Type", "application/vnd.auth+json")
		_, _ = fmt.Fprintf(w, `{"type":"oauth-authorization-response","properties":{"code":"c-1","state":%q}}`, state)
	})
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"access_token":"access-token","token_type":"bearer","id_token":%q}`,
			signedIDToken(t, "alice"))
	})
	ls.server = httptest.NewServer(mux)
	t.Cleanup(ls.server.Close)
	return ls
}

func (suite *CommandTestSuite) writeConfig(baseURL string) string {
	dir := suite.T().TempDir()
	require.NoError(suite.T(), os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("HAAPI_CLI_TEST_CLIENT_ID=cli-client\n"), 0o600))
	suite.T().Cleanup(func() { _ = os.Unsetenv("HAAPI_CLI_TEST_CLIENT_ID") })

	content := fmt.Sprintf(`default_profile: test
profiles:
  - name: test
    client_id: ${HAAPI_CLI_TEST_CLIENT_ID}
    base_url: %[1]s
    authorization_endpoint: %[1]s/oauth/authorize
    token_endpoint: %[1]s/oauth/token
    redirect_uri: app://haapi
    scopes: [openid]
`, baseURL)
	path := filepath.Join(dir, "deployment.yaml")
	require.NoError(suite.T(), os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (suite *CommandTestSuite) TestLogin() {
	server := newLoginServer(suite.T())
	path := suite.writeConfig(server.server.URL)

	output, err := suite.execute("alice\nwrong\n\nalice\nsecret\ny\n", "login", "--config", path)
	require.NoError(suite.T(), err)

	assert.Contains(suite.T(), output, "Username: ")
	assert.Contains(suite.T(), output, "step: ProblemStep")
	assert.Contains(suite.T(), output, "title: Incorrect credentials")
	assert.Contains(suite.T(), output, "step: TokensStep")
	assert.Contains(suite.T(), output, "access_token: a**********n")
	assert.Contains(suite.T(), output, "sub: alice")

	require.Len(suite.T(), server.forms, 2)
	assert.Equal(suite.T(), map[string]string{"userName": "alice", "password": "wrong", "remember": ""},
		server.forms[0])
	assert.Equal(suite.T(), map[string]string{"userName": "alice", "password": "secret", "remember": "on"},
		server.forms[1])
}

func (suite *CommandTestSuite) TestLoginFailures() {
	server := newLoginServer(suite.T())
	path := suite.writeConfig(server.server.URL)

	_, err := suite.execute("", "login", "--config", path)
	assert.ErrorContains(suite.T(), err, "failed to read input")

	_, err = suite.execute("", "login", "--config", path, "--profile", "missing")
	assert.ErrorContains(suite.T(), err, `profile "missing" not found`)

	_, err = suite.execute("", "login", "--config", filepath.Join(suite.T().TempDir(), "none.yaml"))
	assert.ErrorContains(suite.T(), err, "failed to load configuration")
}
