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

	"hub-api/src/internal/constants"
	"hub-api/src/internal/database"
	"hub-api/src/internal/model"
)

// StorageQuotaRepo implements StorageQuotaRepository
type StorageQuotaRepo struct {
	db *database.DB
}

// NewStorageQuotaRepo creates a new storage quota repository
func NewStorageQuotaRepo(db *database.DB) StorageQuotaRepository {
	return &StorageQuotaRepo{db: db}
}

// GetByID retrieves a quota row by its id
func (r *StorageQuotaRepo) GetByID(id string) (*model.StorageQuota, error) {
	query := `
		SELECT id, storage, remaining, bucket, website_id
		FROM storages
		WHERE id = ?
	`
	return r.scanOne(query, id)
}

// GetByWebsiteID retrieves the quota row owned by a website
func (r *StorageQuotaRepo) GetByWebsiteID(websiteID string) (*model.StorageQuota, error) {
	query := `
		SELECT id, storage, remaining, bucket, website_id
		FROM storages
		WHERE website_id = ?
	`
	return r.scanOne(query, websiteID)
}

func (r *StorageQuotaRepo) scanOne(query, arg string) (*model.StorageQuota, error) {
	quota := &model.StorageQuota{}
	err := r.db.QueryRow(r.db.Rebind(query), arg).Scan(
		&quota.ID, &quota.Total, &quota.Remaining, &quota.Bucket, &quota.WebsiteID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return quota, nil
}

// Debit subtracts size from remaining capacity. The guard in the WHERE
// clause makes the check-and-decrement a single atomic statement, so
// two concurrent debits against the same row cannot both pass and
// overdraw it: the second one matches no row and fails with
// ErrQuotaExhausted.
func (r *StorageQuotaRepo) Debit(id string, size int64) error {
	query := `
		UPDATE storages
		SET remaining = remaining - ?
		WHERE id = ? AND remaining - ? > 0
	`
	result, err := r.db.Exec(r.db.Rebind(query), size, id, size)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return constants.ErrQuotaExhausted
	}
	return nil
}

// Credit adds size back to remaining capacity, capped at the row's
// total so a repeated or oversized credit cannot push remaining past
// what the account was provisioned for.
func (r *StorageQuotaRepo) Credit(id string, size int64) error {
	query := `
		UPDATE storages
		SET remaining = CASE WHEN remaining + ? > storage THEN storage ELSE remaining + ? END
		WHERE id = ?
	`
	result, err := r.db.Exec(r.db.Rebind(query), size, size, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return constants.ErrQuotaNotFound
	}
	return nil
}
