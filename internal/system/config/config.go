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

// Package config provides structures and functions for loading and managing client configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"
)

const (
	// DefaultHTTPTimeout is the timeout applied to outbound requests when none is configured.
	DefaultHTTPTimeout = 30 * time.Second
	// DefaultPollInterval is the delay between automatic polling requests.
	DefaultPollInterval = 2 * time.Second
	// DefaultMaxPolls bounds the number of automatic polling requests in one call.
	DefaultMaxPolls = 60
	// envFileName is the name of the optional environment file loaded next to the config file.
	envFileName = ".env"
)

// ClientConfig holds the configuration of one HAAPI client profile.
type ClientConfig struct {
	Name                       string        `yaml:"name"`
	ClientID                   string        `yaml:"client_id"`
	BaseURL                    string        `yaml:"base_url"`
	TokenEndpoint              string        `yaml:"token_endpoint"`
	AuthorizationEndpoint      string        `yaml:"authorization_endpoint"`
	MetadataEndpoint           string        `yaml:"metadata_endpoint"`
	RedirectURI                string        `yaml:"redirect_uri"`
	FollowRedirect             bool          `yaml:"follow_redirect"`
	AutoPolling                bool          `yaml:"auto_polling"`
	AutoAuthorizationChallenge bool          `yaml:"auto_authorization_challenge"`
	SSLTrustVerification       bool          `yaml:"ssl_trust_verification"`
	CAFile                     string        `yaml:"ca_file"`
	ClientCertFile             string        `yaml:"client_cert_file"`
	ClientKeyFile              string        `yaml:"client_key_file"`
	Scopes                     []string      `yaml:"scopes"`
	HTTPTimeout                time.Duration `yaml:"http_timeout"`
	PollInterval               time.Duration `yaml:"poll_interval"`
	MaxPolls                   int           `yaml:"max_polls"`
}

// NewClientConfig returns a client profile populated with the default values.
func NewClientConfig() ClientConfig {
	return ClientConfig{
		FollowRedirect:             true,
		AutoPolling:                true,
		AutoAuthorizationChallenge: true,
		SSLTrustVerification:       true,
		HTTPTimeout:                DefaultHTTPTimeout,
		PollInterval:               DefaultPollInterval,
		MaxPolls:                   DefaultMaxPolls,
	}
}

// UnmarshalYAML decodes a client profile on top of the default values.
func (c *ClientConfig) UnmarshalYAML(value *yaml.Node) error {
	type rawClientConfig ClientConfig
	raw := rawClientConfig(NewClientConfig())
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*c = ClientConfig(raw)
	return nil
}

// Validate checks that the profile carries the values needed to run a flow.
func (c *ClientConfig) Validate() error {
	if c.ClientID == "" {
		return errors.New("client_id is required")
	}
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if c.RedirectURI == "" {
		return errors.New("redirect_uri is required")
	}
	if c.MetadataEndpoint == "" && (c.AuthorizationEndpoint == "" || c.TokenEndpoint == "") {
		return errors.New("authorization_endpoint and token_endpoint are required when metadata_endpoint is not set")
	}
	if (c.ClientCertFile == "") != (c.ClientKeyFile == "") {
		return errors.New("client_cert_file and client_key_file must be set together")
	}
	if c.HTTPTimeout < 0 || c.PollInterval < 0 || c.MaxPolls < 0 {
		return errors.New("http_timeout, poll_interval and max_polls must not be negative")
	}
	return nil
}

// Config holds the complete configuration of the client.
type Config struct {
	DefaultProfile string         `yaml:"default_profile"`
	Profiles       []ClientConfig `yaml:"profiles"`
}

// Profile returns the named profile, or the default profile when name is empty.
func (c *Config) Profile(name string) (*ClientConfig, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	if name == "" && len(c.Profiles) == 1 {
		return &c.Profiles[0], nil
	}
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile %q not found", name)
}

// LoadConfig loads the configurations from the specified YAML file.
// Environment references of the form ${VAR} are expanded after loading an
// optional .env file placed next to the configuration file.
func LoadConfig(path string) (*Config, error) {
	path = filepath.Clean(path)

	if err := LoadEnvFile(filepath.Join(filepath.Dir(path), envFileName)); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvFile loads environment variables from the given files, skipping files that do not exist.
// Variables already present in the environment are not overridden.
func LoadEnvFile(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load environment file %s: %w", p, err)
		}
	}
	return nil
}
