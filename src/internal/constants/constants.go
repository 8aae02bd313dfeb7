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

package constants

// Grant type constants
const (
	GrantTypeClientCredentials = "client_credentials"
)

// ValidGrantTypes lists the grant types the token endpoint supports
var ValidGrantTypes = map[string]bool{
	GrantTypeClientCredentials: true,
}

// Token constants
const (
	TokenTypeBearer = "Bearer"
	AuthTypeBasic   = "Basic"
)

// Storage scope constants
const (
	ScopeStorageCreate = "storage:create"
	ScopeStorageDelete = "storage:delete"
	ScopeStorageGet    = "storage:get"
)

// Object size constants
const (
	Size1B = int64(1)
	Size1K = Size1B * 1000
	Size1M = Size1K * 1000
	Size1G = Size1M * 1000

	// MaxObjectSizeBytes is a hard ceiling on a single upload,
	// independent of the owning account's quota.
	MaxObjectSizeBytes = 100 * Size1M
)
