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
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"hub-api/src/internal/apierror"
	"hub-api/src/internal/constants"
	"hub-api/src/internal/dto"
	"hub-api/src/internal/model"
	"hub-api/src/internal/repository"
	"hub-api/src/internal/token"
	"hub-api/src/internal/utils"
)

// AuthHeaderType discriminates the two accepted Authorization schemes.
type AuthHeaderType string

const (
	AuthTypeBasic  AuthHeaderType = "Basic"
	AuthTypeBearer AuthHeaderType = "Bearer"
)

// AuthHeader is a parsed Authorization header. ClientID/ClientSecret
// are set for Basic, Token for Bearer.
type AuthHeader struct {
	Type         AuthHeaderType
	ClientID     string
	ClientSecret string
	Token        string
}

// AuthService issues client-credentials access tokens and verifies
// bearer tokens. It holds no per-request state; every call is safe to
// run concurrently.
type AuthService struct {
	appRepo repository.OAuthAppRepository
	codec   *token.Codec
}

// NewAuthService creates a new auth service
func NewAuthService(appRepo repository.OAuthAppRepository, codec *token.Codec) *AuthService {
	return &AuthService{
		appRepo: appRepo,
		codec:   codec,
	}
}

// ParseAuthHeader splits an Authorization header into its typed parts.
// Missing header, wrong part count, undecodable Basic payloads, and
// unknown schemes all fail with ErrAuthInvalidRequest before any store
// or codec work happens.
func ParseAuthHeader(header string) (*AuthHeader, error) {
	if header == "" {
		return nil, apierror.ErrAuthInvalidRequest
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return nil, apierror.ErrAuthInvalidRequest
	}

	switch parts[0] {
	case string(AuthTypeBasic):
		decoded, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			return nil, apierror.ErrAuthInvalidRequest
		}
		pair := strings.Split(string(decoded), ":")
		if len(pair) != 2 {
			return nil, apierror.ErrAuthInvalidRequest
		}
		return &AuthHeader{
			Type:         AuthTypeBasic,
			ClientID:     pair[0],
			ClientSecret: pair[1],
		}, nil
	case string(AuthTypeBearer):
		return &AuthHeader{
			Type:  AuthTypeBearer,
			Token: parts[1],
		}, nil
	default:
		return nil, apierror.ErrAuthInvalidRequest
	}
}

// verifyBasicAuth validates Basic credentials against the registered
// app. The returned copy never carries the client secret.
func (s *AuthService) verifyBasicAuth(header *AuthHeader) (*model.OAuthApp, error) {
	if header.Type != AuthTypeBasic {
		return nil, apierror.ErrAuthIncorrectAuthType
	}

	app, err := s.appRepo.GetByClientID(header.ClientID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apierror.ErrAuthInvalidClient
	}

	if app.Disabled {
		return nil, apierror.ErrAuthClientDisabled
	}

	idOK := subtle.ConstantTimeCompare([]byte(header.ClientID), []byte(app.ClientID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(header.ClientSecret), []byte(app.ClientSecret)) == 1
	if !idOK || !secretOK {
		return nil, apierror.ErrAuthCredentialMismatch
	}

	// never echo the secret past this point
	verified := *app
	verified.ClientSecret = ""
	return &verified, nil
}

// RequestToken drives the client_credentials grant: parse the Basic
// header, verify the client, and mint a token scoped to the client's
// own registered scope. The caller never chooses the scope.
//
// Verifier failures other than IncorrectAuthType are collapsed to
// InvalidClient so callers cannot distinguish an unknown client from a
// wrong secret or a disabled one.
func (s *AuthService) RequestToken(grantType, authHeader string) (*dto.TokenResponse, error) {
	if grantType == "" {
		return nil, apierror.ErrAuthInvalidRequest
	}
	if !constants.ValidGrantTypes[grantType] {
		return nil, apierror.ErrAuthUnsupportedGrantType
	}

	header, err := ParseAuthHeader(authHeader)
	if err != nil {
		return nil, err
	}

	app, err := s.verifyBasicAuth(header)
	if err != nil {
		var authErr *apierror.AuthError
		if errors.As(err, &authErr) {
			if errors.Is(authErr, apierror.ErrAuthIncorrectAuthType) {
				return nil, authErr
			}
			return nil, apierror.ErrAuthInvalidClient
		}
		utils.LogError("client verification failed", err)
		return nil, apierror.ErrAuthUnknown
	}

	accessToken, expiresIn, err := s.codec.Issue(app.ClientID, app.Scope, "")
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   constants.TokenTypeBearer,
		ExpiresIn:   expiresIn,
		Scope:       app.Scope,
	}, nil
}

// VerifyToken parses the Authorization header and verifies the bearer
// token it carries. InvalidToken and IncorrectAuthType surface
// verbatim; every other failure collapses to InvalidClient or Unknown
// so verification never acts as an oracle for client validity.
func (s *AuthService) VerifyToken(ctx context.Context, authHeader string) (*token.Claims, error) {
	header, err := ParseAuthHeader(authHeader)
	if err != nil {
		return nil, err
	}

	var claims *token.Claims
	switch header.Type {
	case AuthTypeBearer:
		claims, err = s.codec.Verify(ctx, header.Token)
	default:
		err = apierror.ErrAuthIncorrectAuthType
	}

	if err != nil {
		var authErr *apierror.AuthError
		if errors.As(err, &authErr) {
			if errors.Is(authErr, apierror.ErrAuthInvalidToken) ||
				errors.Is(authErr, apierror.ErrAuthIncorrectAuthType) ||
				errors.Is(authErr, apierror.ErrAuthUnknown) {
				return nil, authErr
			}
			return nil, apierror.ErrAuthInvalidClient
		}
		utils.LogError("token verification failed", err)
		return nil, apierror.ErrAuthUnknown
	}

	return claims, nil
}
