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

package token

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RevocationChecker decides whether otherwise-valid claims have been
// revoked. Implementations must treat lookup failures as errors, not as
// revocations.
type RevocationChecker interface {
	Revoked(ctx context.Context, claims *Claims) (bool, error)
}

// NoopRevocation never revokes. It is the default when no revocation
// store is configured.
type NoopRevocation struct{}

func (NoopRevocation) Revoked(ctx context.Context, claims *Claims) (bool, error) {
	return false, nil
}

// RedisRevocation checks a Redis blacklist. Two key shapes are read:
// the subject key holds a minimum issued-at (unix seconds) below which
// all of the subject's tokens are revoked, and the jti key marks a
// single revoked token.
type RedisRevocation struct {
	client *redis.Client
}

// NewRedisRevocation wraps a Redis client as a revocation checker.
func NewRedisRevocation(client *redis.Client) *RedisRevocation {
	return &RedisRevocation{client: client}
}

func (r *RedisRevocation) Revoked(ctx context.Context, claims *Claims) (bool, error) {
	minIat, err := r.client.Get(ctx, claims.Subject).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	if err == nil {
		floor, convErr := strconv.ParseInt(minIat, 10, 64)
		if convErr != nil {
			return false, convErr
		}
		if claims.IssuedAt == nil || claims.IssuedAt.Unix() < floor {
			return true, nil
		}
	}

	blocked, err := r.client.Exists(ctx, claims.ID).Result()
	if err != nil {
		return false, err
	}
	return blocked > 0, nil
}
