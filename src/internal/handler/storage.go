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
	"errors"
	"net/http"

	"hub-api/src/internal/apierror"
	"hub-api/src/internal/dto"
	"hub-api/src/internal/middleware"
	"hub-api/src/internal/service"
	"hub-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler serves the storage mutation endpoints
type StorageHandler struct {
	storageService *service.StorageService
}

// NewStorageHandler creates a new storage handler
func NewStorageHandler(storageService *service.StorageService) *StorageHandler {
	return &StorageHandler{storageService: storageService}
}

// PutObject handles POST /storage: it validates the upload intent and
// returns a presigned upload URL after the scope and quota gates pass.
func (h *StorageHandler) PutObject(c *gin.Context) {
	var req dto.PutObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAPIError(c, apierror.ErrValidation.WithCause(utils.FormatValidationError(err)))
		return
	}

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		writeAPIError(c, apierror.ErrUnauthorized)
		return
	}

	url, err := h.storageService.PutObject(c.Request.Context(), claims.Subject, req.Filename, req.Size, claims.Scope, req.Prefix, 0)
	if err != nil {
		writeAPIError(c, err)
		return
	}

	setNoStore(c)
	c.JSON(http.StatusOK, dto.PutObjectResponse{Data: dto.PutObjectData{PresignedURL: url}})
}

// DeleteObject handles DELETE /storage
func (h *StorageHandler) DeleteObject(c *gin.Context) {
	var req dto.DeleteObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAPIError(c, apierror.ErrValidation.WithCause(utils.FormatValidationError(err)))
		return
	}

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		writeAPIError(c, apierror.ErrUnauthorized)
		return
	}

	if err := h.storageService.DeleteObject(c.Request.Context(), claims.Subject, req.Filename, claims.Scope, req.Prefix); err != nil {
		writeAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteObjectResponse{Data: dto.MessageData{Message: "object deleted successfully"}})
}

// RegisterRoutes registers the storage endpoint routes behind bearer auth
func (h *StorageHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	storageGroup := r.Group("/storage", auth)
	{
		storageGroup.POST("", h.PutObject)
		storageGroup.DELETE("", h.DeleteObject)
	}
}

// writeAPIError renders an API taxonomy error. Anything that is not an
// APIError is logged and reported as the generic unknown error.
func writeAPIError(c *gin.Context, err error) {
	var apiErr *apierror.APIError
	if !errors.As(err, &apiErr) {
		utils.LogError("unexpected storage endpoint failure", err)
		apiErr = apierror.ErrUnknown
	}
	c.JSON(apiErr.Status, apiErr.Response())
}
