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

package service

import (
	"fmt"
	"time"

	"hub-api/src/internal/database"
	"hub-api/src/internal/model"

	"github.com/google/uuid"
)

// Seeder inserts development fixture data: a client owning a website,
// an OAuth app registered against it, and the website's quota row.
// Seeding is idempotent per app client id; existing apps are left
// untouched.
type Seeder struct {
	db *database.DB
}

// NewSeeder creates a new fixture seeder
func NewSeeder(db *database.DB) *Seeder {
	return &Seeder{db: db}
}

// Seed applies the fixture entries. Returns the number of entries
// actually inserted.
func (s *Seeder) Seed(entries []model.SeedEntry) (int, error) {
	seeded := 0
	for i, entry := range entries {
		exists, err := s.appExists(entry.App.ClientID)
		if err != nil {
			return seeded, fmt.Errorf("seed entry %d: %w", i, err)
		}
		if exists {
			continue
		}

		if err := s.insertEntry(entry); err != nil {
			return seeded, fmt.Errorf("seed entry %d: %w", i, err)
		}
		seeded++
	}
	return seeded, nil
}

func (s *Seeder) appExists(clientID string) (bool, error) {
	var count int
	query := s.db.Rebind(`SELECT COUNT(1) FROM oauth_apps WHERE client_id = ?`)
	if err := s.db.QueryRow(query, clientID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Seeder) insertEntry(entry model.SeedEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	clientUUID := uuid.New().String()
	websiteUUID := uuid.New().String()

	query := s.db.Rebind(`
		INSERT INTO clients (id, name, phone, email, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if _, err := tx.Exec(query, clientUUID, entry.Client.Name, entry.Client.Phone, entry.Client.Email, now); err != nil {
		return err
	}

	query = s.db.Rebind(`
		INSERT INTO websites (id, name, url, client_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if _, err := tx.Exec(query, websiteUUID, entry.Website.Name, entry.Website.URL, clientUUID, now); err != nil {
		return err
	}

	query = s.db.Rebind(`
		INSERT INTO oauth_apps (id, client_id, client_secret, scope, name, disabled, account_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if _, err := tx.Exec(query, uuid.New().String(), entry.App.ClientID, entry.App.ClientSecret,
		entry.App.Scope, entry.App.Name, entry.App.Disabled, websiteUUID, now); err != nil {
		return err
	}

	query = s.db.Rebind(`
		INSERT INTO storages (id, storage, remaining, bucket, website_id)
		VALUES (?, ?, ?, ?, ?)
	`)
	if _, err := tx.Exec(query, uuid.New().String(), entry.Quota.Total, entry.Quota.Total,
		entry.Quota.Bucket, websiteUUID); err != nil {
		return err
	}

	return tx.Commit()
}
