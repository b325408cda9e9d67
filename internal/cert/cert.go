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

// Package cert builds the TLS configuration used to reach the authorization server.
package cert

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"

	"github.com/asgardeo/haapi-client/internal/system/config"
)

// GetTLSConfig returns the TLS configuration of the profile, or nil when the
// system defaults apply. Relative file paths are resolved against home.
func GetTLSConfig(cfg *config.ClientConfig, home string) (*tls.Config, error) {
	if cfg.SSLTrustVerification && cfg.CAFile == "" && cfg.ClientCertFile == "" {
		return nil, nil
	}

	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
	if !cfg.SSLTrustVerification {
		tlsConfig.InsecureSkipVerify = true //nolint:gosec
	}

	if cfg.CAFile != "" {
		caFilePath := config.ResolvePath(home, cfg.CAFile)
		pem, err := os.ReadFile(caFilePath)
		if err != nil {
			return nil, errors.New("failed to read CA file at " + caFilePath + ": " + err.Error())
		}
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.New("no certificate found in CA file at " + caFilePath)
		}
		tlsConfig.RootCAs = pool
	}

	if cfg.ClientCertFile != "" {
		certFilePath := config.ResolvePath(home, cfg.ClientCertFile)
		keyFilePath := config.ResolvePath(home, cfg.ClientKeyFile)

		// Check if the certificate and key files exist.
		if _, err := os.Stat(certFilePath); os.IsNotExist(err) {
			return nil, errors.New("certificate file not found at " + certFilePath)
		}
		if _, err := os.Stat(keyFilePath); os.IsNotExist(err) {
			return nil, errors.New("key file not found at " + keyFilePath)
		}

		certificate, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
		if err != nil {
			return nil, err
		}
		tlsConfig.Certificates = []tls.Certificate{certificate}
	}
	return tlsConfig, nil
}
