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

package config

import (
	"fmt"
	"path/filepath"
)

// Deployment is a loaded configuration file together with the directory holding it.
type Deployment struct {
	Home   string
	Config Config
}

// LoadDeployment loads the configuration file at path. Home is the absolute
// directory of the file, against which relative paths in profiles resolve.
func LoadDeployment(path string) (*Deployment, error) {
	home, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return &Deployment{Home: home, Config: *cfg}, nil
}

// Profile returns the named profile, or the default one when name is empty,
// after validating it.
func (d *Deployment) Profile(name string) (*ClientConfig, error) {
	profile, err := d.Config.Profile(name)
	if err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", profile.Name, err)
	}
	return profile, nil
}

// ResolvePath resolves a path read from a profile against the configuration
// directory home. Absolute paths are returned unchanged.
func ResolvePath(home, path string) string {
	if path == "" || home == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(home, path)
}
