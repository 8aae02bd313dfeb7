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

package dto

// PutObjectRequest is the upload-intent body. Size is the declared
// object size in bytes, bounded to 1B..1GB at the validation layer.
type PutObjectRequest struct {
	Filename string `json:"filename" binding:"required"`
	Size     int64  `json:"size" binding:"required,min=1,max=1000000000"`
	Prefix   string `json:"prefix,omitempty"`
}

// DeleteObjectRequest names an object to remove.
type DeleteObjectRequest struct {
	Filename string `json:"filename" binding:"required"`
	Prefix   string `json:"prefix,omitempty"`
}

// PutObjectData carries the presigned upload URL.
type PutObjectData struct {
	PresignedURL string `json:"presignedUrl"`
}

// PutObjectResponse is the successful upload-intent payload.
type PutObjectResponse struct {
	Data PutObjectData `json:"data"`
}

// MessageData carries a human readable result message.
type MessageData struct {
	Message string `json:"message"`
}

// DeleteObjectResponse is the successful delete payload.
type DeleteObjectResponse struct {
	Data MessageData `json:"data"`
}
