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

package apierror

// AuthError is an OAuth-style error with a fixed HTTP status, a short
// error code for the wire, and a human readable description. The token
// endpoint renders it as {"error": ..., "error_description": ...}.
type AuthError struct {
	Status      int
	Code        string
	Description string
}

// Auth error taxonomy. Values are compared with errors.Is; the status,
// code and description of each member never change at runtime.
var (
	ErrAuthInvalidRequest       = &AuthError{Status: 400, Code: "invalid_request", Description: "Request is missing required parameter"}
	ErrAuthInvalidClient        = &AuthError{Status: 401, Code: "invalid_client", Description: "Client id or secret is invalid"}
	ErrAuthInvalidGrant         = &AuthError{Status: 400, Code: "invalid_grant", Description: "Grant is invalid or expired"}
	ErrAuthInvalidScope         = &AuthError{Status: 400, Code: "invalid_scope", Description: "Scope value is invalid"}
	ErrAuthUnauthorizedClient   = &AuthError{Status: 401, Code: "unauthorized_client", Description: "Client is not authorized to use the requested grant type"}
	ErrAuthUnsupportedGrantType = &AuthError{Status: 400, Code: "unsupported_grant_type", Description: "Grant type is not supported"}
	ErrAuthIncorrectAuthType    = &AuthError{Status: 400, Code: "invalid_grant", Description: "Incorrect auth type"}
	ErrAuthClientDisabled       = &AuthError{Status: 401, Code: "invalid_grant", Description: "Client credentials is disabled"}
	ErrAuthCredentialMismatch   = &AuthError{Status: 401, Code: "invalid_client", Description: "Client credentials is mismatch"}
	ErrAuthInvalidToken         = &AuthError{Status: 400, Code: "invalid_request", Description: "Token is malformed or expired"}
	ErrAuthUnknown              = &AuthError{Status: 500, Code: "server_error", Description: "Unknown server error"}
)

func (e *AuthError) Error() string {
	return e.Description
}

// AuthErrorResponse is the wire shape for token endpoint failures.
type AuthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Response returns the JSON body for this error.
func (e *AuthError) Response() AuthErrorResponse {
	return AuthErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	}
}
