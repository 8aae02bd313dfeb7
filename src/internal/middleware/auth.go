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

package middleware

import (
	"errors"

	"hub-api/src/internal/apierror"
	"hub-api/src/internal/service"
	"hub-api/src/internal/token"
	"hub-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContextClaims is the gin context key for verified token claims.
const ContextClaims = "token_claims"

// BearerAuth verifies the request's bearer token and stores its claims
// in the gin context. Auth failures on resource endpoints surface as
// the API taxonomy's Unauthorized, never with auth-flow detail.
func BearerAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authService.VerifyToken(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			apiErr := apierror.ErrUnauthorized
			var authErr *apierror.AuthError
			if !errors.As(err, &authErr) {
				utils.LogError("unexpected bearer auth failure", err)
				apiErr = apierror.ErrUnknown
			}
			c.AbortWithStatusJSON(apiErr.Status, apiErr.Response())
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// ClaimsFromContext extracts the verified claims stored by BearerAuth.
func ClaimsFromContext(c *gin.Context) (*token.Claims, bool) {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}
