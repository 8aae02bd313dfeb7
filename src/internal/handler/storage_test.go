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

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hub-api/src/internal/constants"
	"hub-api/src/internal/middleware"
	"hub-api/src/internal/model"
	"hub-api/src/internal/objectstore"
	"hub-api/src/internal/service"
	"hub-api/src/internal/token"

	"github.com/gin-gonic/gin"
)

type stubQuotaRepo struct {
	quota *model.StorageQuota
}

func (s *stubQuotaRepo) GetByID(id string) (*model.StorageQuota, error) { return s.quota, nil }

func (s *stubQuotaRepo) GetByWebsiteID(id string) (*model.StorageQuota, error) { return s.quota, nil }

func (s *stubQuotaRepo) Debit(id string, size int64) error {
	if size >= s.quota.Remaining {
		return constants.ErrQuotaExhausted
	}
	s.quota.Remaining -= size
	return nil
}

func (s *stubQuotaRepo) Credit(id string, size int64) error {
	s.quota.Remaining += size
	if s.quota.Remaining > s.quota.Total {
		s.quota.Remaining = s.quota.Total
	}
	return nil
}

type stubObjectStore struct {
	objects map[string]int64
}

func (s *stubObjectStore) PresignedPutObject(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	return "https://store.example/" + bucket + "/" + key + "?signed", nil
}

func (s *stubObjectStore) StatObject(ctx context.Context, bucket, key string) (*objectstore.ObjectInfo, error) {
	size, ok := s.objects[key]
	if !ok {
		return nil, nil
	}
	return &objectstore.ObjectInfo{Key: key, Size: size}, nil
}

func (s *stubObjectStore) RemoveObject(ctx context.Context, bucket, key string) error {
	delete(s.objects, key)
	return nil
}

// newStorageTestRouter wires the full stack: bearer auth middleware,
// storage handler, and in-memory backends. It returns the router and a
// valid bearer token for client-1.
func newStorageTestRouter(t *testing.T, quota *model.StorageQuota, objects map[string]int64) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec := token.NewCodec(token.CodecConfig{
		Issuer: "hub-test",
		Secret: "test-secret",
		TTL:    30 * time.Minute,
	})

	apps := &stubAppRepo{apps: testApps()}
	authService := service.NewAuthService(apps, codec)
	storageService := service.NewStorageService(
		apps,
		&stubQuotaRepo{quota: quota},
		&stubObjectStore{objects: objects},
		constants.MaxObjectSizeBytes,
		15*time.Minute,
	)

	router := gin.New()
	NewStorageHandler(storageService).RegisterRoutes(router, middleware.BearerAuth(authService))

	resp, err := authService.RequestToken("client_credentials", basicHeader("client-1", "s3cret"))
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	return router, resp.AccessToken
}

func testQuota() *model.StorageQuota {
	return &model.StorageQuota{
		ID:        "quota-1",
		Total:     constants.Size1G,
		Remaining: constants.Size1G,
		Bucket:    "site-1-bucket",
		WebsiteID: "site-1",
	}
}

func doJSON(router *gin.Engine, method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return body.Error.Code
}

func TestPutObjectEndpoint(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		router, _ := newStorageTestRouter(t, testQuota(), nil)

		w := doJSON(router, http.MethodPost, "/storage", "", `{"filename":"a.png","size":500}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if code := decodeAPIError(t, w); code != "ErrUnauthorized" {
			t.Errorf("error code = %q, want ErrUnauthorized", code)
		}
	})

	t.Run("returns presigned url", func(t *testing.T) {
		router, bearer := newStorageTestRouter(t, testQuota(), nil)

		w := doJSON(router, http.MethodPost, "/storage", bearer, `{"filename":"a.png","size":500,"prefix":"avatars"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}

		var body struct {
			Data struct {
				PresignedURL string `json:"presignedUrl"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !strings.Contains(body.Data.PresignedURL, "avatars/a.png") {
			t.Errorf("presignedUrl = %q, want prefixed key", body.Data.PresignedURL)
		}
	})

	t.Run("missing filename fails validation", func(t *testing.T) {
		router, bearer := newStorageTestRouter(t, testQuota(), nil)

		w := doJSON(router, http.MethodPost, "/storage", bearer, `{"size":500}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if code := decodeAPIError(t, w); code != "ErrValidation" {
			t.Errorf("error code = %q, want ErrValidation", code)
		}
	})

	t.Run("size above binding maximum fails validation", func(t *testing.T) {
		router, bearer := newStorageTestRouter(t, testQuota(), nil)

		w := doJSON(router, http.MethodPost, "/storage", bearer, `{"filename":"a.png","size":1000000001}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("size above object cap conflicts", func(t *testing.T) {
		router, bearer := newStorageTestRouter(t, testQuota(), nil)

		w := doJSON(router, http.MethodPost, "/storage", bearer, `{"filename":"a.png","size":100000001}`)
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409, body %s", w.Code, w.Body.String())
		}
		if code := decodeAPIError(t, w); code != "ErrConflict" {
			t.Errorf("error code = %q, want ErrConflict", code)
		}
	})

	t.Run("exhausted quota conflicts", func(t *testing.T) {
		quota := testQuota()
		quota.Remaining = 100
		router, bearer := newStorageTestRouter(t, quota, nil)

		w := doJSON(router, http.MethodPost, "/storage", bearer, `{"filename":"a.png","size":500}`)
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409, body %s", w.Code, w.Body.String())
		}
	})
}

func TestDeleteObjectEndpoint(t *testing.T) {
	t.Run("removes object and reports success", func(t *testing.T) {
		objects := map[string]int64{"a.png": 500}
		router, bearer := newStorageTestRouter(t, testQuota(), objects)

		w := doJSON(router, http.MethodDelete, "/storage", bearer, `{"filename":"a.png"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		if _, exists := objects["a.png"]; exists {
			t.Error("object still present after delete")
		}

		var body struct {
			Data struct {
				Message string `json:"message"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Data.Message == "" {
			t.Error("message is empty")
		}
	})

	t.Run("missing object is not found", func(t *testing.T) {
		router, bearer := newStorageTestRouter(t, testQuota(), map[string]int64{})

		w := doJSON(router, http.MethodDelete, "/storage", bearer, `{"filename":"nope.png"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404, body %s", w.Code, w.Body.String())
		}
		if code := decodeAPIError(t, w); code != "ErrNotFound" {
			t.Errorf("error code = %q, want ErrNotFound", code)
		}
	})

	t.Run("missing filename fails validation", func(t *testing.T) {
		router, bearer := newStorageTestRouter(t, testQuota(), nil)

		w := doJSON(router, http.MethodDelete, "/storage", bearer, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
