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
	"hub-api/src/internal/service"
	"hub-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// TokenHandler serves the OAuth token endpoint
type TokenHandler struct {
	authService *service.AuthService
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(authService *service.AuthService) *TokenHandler {
	return &TokenHandler{authService: authService}
}

// RequestToken handles POST /token?grant_type=client_credentials
func (h *TokenHandler) RequestToken(c *gin.Context) {
	// token responses are never cacheable, success or failure
	setNoStore(c)

	resp, err := h.authService.RequestToken(c.Query("grant_type"), c.GetHeader("Authorization"))
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyToken handles GET /token with a bearer token
func (h *TokenHandler) VerifyToken(c *gin.Context) {
	setNoStore(c)

	claims, err := h.authService.VerifyToken(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyTokenResponse{Payload: claims})
}

// RegisterRoutes registers the token endpoint routes
func (h *TokenHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/token", h.RequestToken)
	r.GET("/token", h.VerifyToken)
}

// setNoStore disables response caching
func setNoStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// writeAuthError renders an auth taxonomy error. Anything that is not
// an AuthError is logged and reported as the generic server_error.
func writeAuthError(c *gin.Context, err error) {
	var authErr *apierror.AuthError
	if !errors.As(err, &authErr) {
		utils.LogError("unexpected token endpoint failure", err)
		authErr = apierror.ErrAuthUnknown
	}
	c.JSON(authErr.Status, authErr.Response())
}
