/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package utils

import (
	"fmt"
	"os"
	"strings"

	"hub-api/src/internal/model"

	"gopkg.in/yaml.v3"
)

// LoadSeedEntries reads development fixture entries from a YAML file.
func LoadSeedEntries(path string) ([]model.SeedEntry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("seed data path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var entries []model.SeedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	for i, entry := range entries {
		if entry.App.ClientID == "" || entry.App.ClientSecret == "" {
			return nil, fmt.Errorf("seed entry %d: app clientId and clientSecret are required", i)
		}
		if entry.Quota.Bucket == "" || entry.Quota.Total <= 0 {
			return nil, fmt.Errorf("seed entry %d: quota bucket and positive total are required", i)
		}
	}

	return entries, nil
}
