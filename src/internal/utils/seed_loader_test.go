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
	"os"
	"path/filepath"
	"testing"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestLoadSeedEntries(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeSeedFile(t, `
- client:
    name: Acme
    email: ops@acme.test
  website:
    name: Acme Site
    url: https://acme.test
  app:
    clientId: acme-client
    clientSecret: acme-secret
    scope: "storage:create storage:delete"
    name: acme uploader
  quota:
    total: 1000000000
    bucket: acme-bucket
`)

		entries, err := LoadSeedEntries(path)
		if err != nil {
			t.Fatalf("LoadSeedEntries() error = %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("len(entries) = %d, want 1", len(entries))
		}

		entry := entries[0]
		if entry.App.ClientID != "acme-client" || entry.App.ClientSecret != "acme-secret" {
			t.Errorf("app = %+v, wrong credentials", entry.App)
		}
		if entry.App.Scope != "storage:create storage:delete" {
			t.Errorf("scope = %q", entry.App.Scope)
		}
		if entry.Quota.Total != 1000000000 || entry.Quota.Bucket != "acme-bucket" {
			t.Errorf("quota = %+v", entry.Quota)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := LoadSeedEntries(""); err == nil {
			t.Error("LoadSeedEntries() error = nil, want error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadSeedEntries(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("LoadSeedEntries() error = nil, want error")
		}
	})

	t.Run("missing app credentials", func(t *testing.T) {
		path := writeSeedFile(t, `
- app:
    clientId: acme-client
  quota:
    total: 1000
    bucket: acme-bucket
`)
		if _, err := LoadSeedEntries(path); err == nil {
			t.Error("LoadSeedEntries() error = nil, want error")
		}
	})

	t.Run("non positive quota", func(t *testing.T) {
		path := writeSeedFile(t, `
- app:
    clientId: acme-client
    clientSecret: acme-secret
  quota:
    total: 0
    bucket: acme-bucket
`)
		if _, err := LoadSeedEntries(path); err == nil {
			t.Error("LoadSeedEntries() error = nil, want error")
		}
	})
}
