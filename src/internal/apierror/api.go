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

// APIError is a resource endpoint error with a fixed HTTP status, a
// stable code and message, and an optional per-request cause. Rendered
// as {"error": {"code": ..., "message": ..., "cause": ...}}.
type APIError struct {
	Status  int
	Code    string
	Message string
	Cause   string
}

// API error taxonomy.
var (
	ErrValidation      = &APIError{Status: 400, Code: "ErrValidation", Message: "error in parsing input data"}
	ErrUnauthorized    = &APIError{Status: 401, Code: "ErrUnauthorized", Message: "sign in to continue"}
	ErrForbidden       = &APIError{Status: 403, Code: "ErrForbidden", Message: "request forbidden"}
	ErrNotFound        = &APIError{Status: 404, Code: "ErrNotFound", Message: "data not found"}
	ErrConflict        = &APIError{Status: 409, Code: "ErrConflict", Message: "request conflict"}
	ErrTooManyRequests = &APIError{Status: 425, Code: "ErrTooManyRequest", Message: "too many request"}
	ErrUnknown         = &APIError{Status: 500, Code: "ErrUnknown", Message: "unknown error occurred"}
)

func (e *APIError) Error() string {
	return e.Message
}

// Is matches by code so that a copy carrying a cause still satisfies
// errors.Is against its taxonomy member.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

// WithCause returns a copy of the error carrying a request-specific
// cause. The taxonomy members themselves are never mutated.
func (e *APIError) WithCause(cause string) *APIError {
	c := *e
	c.Cause = cause
	return &c
}

// APIErrorBody is the nested payload of an API error response.
type APIErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
}

// APIErrorResponse is the wire shape for resource endpoint failures.
type APIErrorResponse struct {
	Error APIErrorBody `json:"error"`
}

// Response returns the JSON body for this error.
func (e *APIError) Response() APIErrorResponse {
	return APIErrorResponse{
		Error: APIErrorBody{
			Code:    e.Code,
			Message: e.Message,
			Cause:   e.Cause,
		},
	}
}
