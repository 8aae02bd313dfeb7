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

package model

import "time"

// StorageQuota tracks remaining object-storage capacity for one
// website. Remaining is only ever changed through the ledger's
// debit/credit updates; 0 <= Remaining <= Total holds at all times.
type StorageQuota struct {
	ID        string `json:"id"`
	Total     int64  `json:"storage"`
	Remaining int64  `json:"remaining"`
	Bucket    string `json:"bucket"`
	WebsiteID string `json:"websiteId"`
}

// Website is a storage-owning account. Quota rows and OAuth apps both
// hang off a website.
type Website struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	ClientID  string    `json:"clientId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Client is the person or company a website belongs to.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
