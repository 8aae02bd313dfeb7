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
	"context"
	"errors"
	"path"
	"time"

	"hub-api/src/internal/apierror"
	"hub-api/src/internal/constants"
	"hub-api/src/internal/model"
	"hub-api/src/internal/objectstore"
	"hub-api/src/internal/repository"
	"hub-api/src/internal/token"
	"hub-api/src/internal/utils"
)

// StorageService gates every storage mutation behind the scope and
// quota checks. It holds no per-request state.
type StorageService struct {
	appRepo       repository.OAuthAppRepository
	quotaRepo     repository.StorageQuotaRepository
	store         objectstore.Client
	maxObjectSize int64
	presignExpiry time.Duration
}

// NewStorageService creates a new storage service
func NewStorageService(
	appRepo repository.OAuthAppRepository,
	quotaRepo repository.StorageQuotaRepository,
	store objectstore.Client,
	maxObjectSize int64,
	presignExpiry time.Duration,
) *StorageService {
	if maxObjectSize <= 0 {
		maxObjectSize = constants.MaxObjectSizeBytes
	}
	return &StorageService{
		appRepo:       appRepo,
		quotaRepo:     quotaRepo,
		store:         store,
		maxObjectSize: maxObjectSize,
		presignExpiry: presignExpiry,
	}
}

// VerifyStoragePermission resolves the client's app and quota row, then
// checks every required scope against BOTH the app's registered scope
// and the token's claimed scope. The double gate means an over-broad or
// stale token can never exceed what the app was registered for.
func (s *StorageService) VerifyStoragePermission(clientID, claimedScope string, requiredScopes []string) (*model.StorageQuota, error) {
	app, err := s.appRepo.GetByClientID(clientID)
	if err != nil {
		utils.LogError("failed to resolve app for storage permission", err)
		return nil, apierror.ErrUnknown
	}
	if app == nil || app.AccountID == "" {
		return nil, apierror.ErrNotFound
	}

	quota, err := s.quotaRepo.GetByWebsiteID(app.AccountID)
	if err != nil {
		utils.LogError("failed to resolve quota for storage permission", err)
		return nil, apierror.ErrUnknown
	}
	if quota == nil {
		return nil, apierror.ErrNotFound
	}

	granted := token.ParseScopes(app.Scope)
	claimed := token.ParseScopes(claimedScope)
	if granted.Size() == 0 || claimed.Size() == 0 {
		return nil, apierror.ErrForbidden
	}

	for _, required := range requiredScopes {
		if !granted.Contains(required) || !claimed.Contains(required) {
			return nil, apierror.ErrForbidden
		}
	}

	return quota, nil
}

// PutObject debits the owning account's quota and returns a presigned
// upload URL. The debit is committed before the URL is issued so no URL
// can ever be outstanding for a request that would overdraw quota; if
// issuance then fails, the debit is credited back.
func (s *StorageService) PutObject(ctx context.Context, clientID, filename string, size int64, claimedScope, prefix string, expiry time.Duration) (string, error) {
	if size <= 0 {
		return "", apierror.ErrValidation
	}
	if size > s.maxObjectSize {
		return "", apierror.ErrConflict
	}

	quota, err := s.VerifyStoragePermission(clientID, claimedScope, []string{constants.ScopeStorageCreate})
	if err != nil {
		return "", err
	}

	if err := s.quotaRepo.Debit(quota.ID, size); err != nil {
		if errors.Is(err, constants.ErrQuotaExhausted) {
			return "", apierror.ErrConflict
		}
		utils.LogError("failed to debit storage quota", err)
		return "", apierror.ErrUnknown
	}

	if expiry <= 0 {
		expiry = s.presignExpiry
	}

	url, err := s.store.PresignedPutObject(ctx, quota.Bucket, objectKey(prefix, filename), expiry)
	if err != nil {
		utils.LogError("failed to presign upload", err)
		if creditErr := s.quotaRepo.Credit(quota.ID, size); creditErr != nil {
			utils.LogErrorWithContext("failed to restore quota after presign failure", creditErr, map[string]interface{}{
				"quota": quota.ID,
				"size":  size,
			})
		}
		return "", apierror.ErrUnknown
	}

	return url, nil
}

// DeleteObject removes the object and credits the quota by the
// object's stored size. The size comes from a stat on the store, never
// from the caller, so the ledger stays accurate. If the credit fails
// after removal the gap is logged and surfaced as Unknown.
func (s *StorageService) DeleteObject(ctx context.Context, clientID, filename, claimedScope, prefix string) error {
	quota, err := s.VerifyStoragePermission(clientID, claimedScope, []string{constants.ScopeStorageDelete})
	if err != nil {
		return err
	}

	key := objectKey(prefix, filename)

	info, err := s.store.StatObject(ctx, quota.Bucket, key)
	if err != nil {
		utils.LogError("failed to stat object for delete", err)
		return apierror.ErrUnknown
	}
	if info == nil {
		return apierror.ErrNotFound
	}

	if err := s.store.RemoveObject(ctx, quota.Bucket, key); err != nil {
		utils.LogError("failed to remove object", err)
		return apierror.ErrUnknown
	}

	if err := s.quotaRepo.Credit(quota.ID, info.Size); err != nil {
		utils.LogErrorWithContext("object removed but quota credit failed", err, map[string]interface{}{
			"quota": quota.ID,
			"size":  info.Size,
		})
		return apierror.ErrUnknown
	}

	return nil
}

// objectKey composes the bucket key from an optional prefix and the
// filename.
func objectKey(prefix, filename string) string {
	if prefix == "" {
		return filename
	}
	return path.Join(prefix, filename)
}
