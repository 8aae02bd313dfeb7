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

package objectstore

import (
	"context"
	"time"
)

// ObjectInfo describes a stored object. Size is the authoritative
// stored byte size, never a caller-supplied figure.
type ObjectInfo struct {
	Key  string
	Size int64
}

// Client is the narrow object-storage boundary the storage gate
// consumes. Implementations must honor context cancellation on every
// call; actual byte transfer happens elsewhere via the presigned URL.
type Client interface {
	// PresignedPutObject returns a URL that authorizes a single upload
	// of the object within the expiry window.
	PresignedPutObject(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)

	// StatObject returns the object's info, or nil when the object
	// does not exist.
	StatObject(ctx context.Context, bucket, key string) (*ObjectInfo, error)

	// RemoveObject deletes the object.
	RemoveObject(ctx context.Context, bucket, key string) error
}
