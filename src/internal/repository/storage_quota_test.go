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

package repository

import (
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"hub-api/src/internal/constants"
	"hub-api/src/internal/database"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB creates a temporary SQLite database for testing
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open SQLite database: %v", err)
	}
	// Serialize access so concurrent debits hit one connection instead
	// of racing sqlite's file lock.
	sqlDB.SetMaxOpenConns(1)

	db := &database.DB{DB: sqlDB}

	schema := `
		CREATE TABLE storages (
			id TEXT PRIMARY KEY,
			storage INTEGER NOT NULL,
			remaining INTEGER NOT NULL,
			bucket TEXT NOT NULL,
			website_id TEXT NOT NULL UNIQUE,
			CHECK (remaining >= 0 AND remaining <= storage)
		);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func seedQuota(t *testing.T, db *database.DB, id string, total, remaining int64) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO storages (id, storage, remaining, bucket, website_id) VALUES (?, ?, ?, ?, ?)`,
		id, total, remaining, id+"-bucket", id+"-site",
	)
	if err != nil {
		t.Fatalf("Failed to seed quota row: %v", err)
	}
}

func TestStorageQuotaRepoGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStorageQuotaRepo(db)
	seedQuota(t, db, "quota-1", 1000, 600)

	t.Run("by id", func(t *testing.T) {
		quota, err := repo.GetByID("quota-1")
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if quota == nil {
			t.Fatal("GetByID() = nil, want row")
		}
		if quota.Total != 1000 || quota.Remaining != 600 {
			t.Errorf("quota = %+v, want total 1000 remaining 600", quota)
		}
		if quota.Bucket != "quota-1-bucket" || quota.WebsiteID != "quota-1-site" {
			t.Errorf("quota = %+v, wrong bucket or website", quota)
		}
	})

	t.Run("by website id", func(t *testing.T) {
		quota, err := repo.GetByWebsiteID("quota-1-site")
		if err != nil {
			t.Fatalf("GetByWebsiteID() error = %v", err)
		}
		if quota == nil || quota.ID != "quota-1" {
			t.Errorf("GetByWebsiteID() = %+v, want quota-1", quota)
		}
	})

	t.Run("missing row is nil without error", func(t *testing.T) {
		quota, err := repo.GetByID("nobody")
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if quota != nil {
			t.Errorf("GetByID() = %+v, want nil", quota)
		}
	})
}

func TestStorageQuotaRepoDebit(t *testing.T) {
	tests := []struct {
		name          string
		remaining     int64
		debit         int64
		wantErr       error
		wantRemaining int64
	}{
		{
			name:          "normal debit",
			remaining:     1000,
			debit:         400,
			wantRemaining: 600,
		},
		{
			name:          "debit to exactly zero fails",
			remaining:     400,
			debit:         400,
			wantErr:       constants.ErrQuotaExhausted,
			wantRemaining: 400,
		},
		{
			name:          "debit past zero fails and leaves the row untouched",
			remaining:     100,
			debit:         500,
			wantErr:       constants.ErrQuotaExhausted,
			wantRemaining: 100,
		},
		{
			name:      "unknown row fails as exhausted",
			remaining: -1,
			debit:     100,
			wantErr:   constants.ErrQuotaExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewStorageQuotaRepo(db)

			id := "missing"
			if tt.remaining >= 0 {
				id = "quota-1"
				seedQuota(t, db, id, 1000, tt.remaining)
			}

			err := repo.Debit(id, tt.debit)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Debit() error = %v, want %v", err, tt.wantErr)
			}

			if tt.remaining >= 0 {
				quota, err := repo.GetByID(id)
				if err != nil {
					t.Fatalf("GetByID() error = %v", err)
				}
				if quota.Remaining != tt.wantRemaining {
					t.Errorf("remaining = %d, want %d", quota.Remaining, tt.wantRemaining)
				}
			}
		})
	}
}

// Ten concurrent debits of 100 against 500 remaining must admit exactly
// four: the fifth would land remaining on zero, which the guard rejects.
func TestStorageQuotaRepoDebitConcurrent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStorageQuotaRepo(db)
	seedQuota(t, db, "quota-1", 1000, 500)

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Debit("quota-1", 100)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, exhausted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, constants.ErrQuotaExhausted):
			exhausted++
		default:
			t.Fatalf("Debit() unexpected error = %v", err)
		}
	}

	if succeeded != 4 || exhausted != 6 {
		t.Errorf("succeeded = %d exhausted = %d, want 4 and 6", succeeded, exhausted)
	}

	quota, err := repo.GetByID("quota-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if quota.Remaining != 100 {
		t.Errorf("remaining = %d, want 100", quota.Remaining)
	}
}

func TestStorageQuotaRepoCredit(t *testing.T) {
	tests := []struct {
		name          string
		remaining     int64
		credit        int64
		wantErr       error
		wantRemaining int64
	}{
		{
			name:          "normal credit",
			remaining:     500,
			credit:        200,
			wantRemaining: 700,
		},
		{
			name:          "credit capped at total",
			remaining:     900,
			credit:        500,
			wantRemaining: 1000,
		},
		{
			name:      "unknown row",
			remaining: -1,
			credit:    100,
			wantErr:   constants.ErrQuotaNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewStorageQuotaRepo(db)

			id := "missing"
			if tt.remaining >= 0 {
				id = "quota-1"
				seedQuota(t, db, id, 1000, tt.remaining)
			}

			err := repo.Credit(id, tt.credit)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Credit() error = %v, want %v", err, tt.wantErr)
			}

			if tt.remaining >= 0 {
				quota, err := repo.GetByID(id)
				if err != nil {
					t.Fatalf("GetByID() error = %v", err)
				}
				if quota.Remaining != tt.wantRemaining {
					t.Errorf("remaining = %d, want %d", quota.Remaining, tt.wantRemaining)
				}
			}
		})
	}
}
