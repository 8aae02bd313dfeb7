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
	"fmt"
	"time"

	"hub-api/src/internal/apierror"
	"hub-api/src/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the access token lifetime when none is configured.
const DefaultTTL = 30 * time.Minute

// Claims are the signed token claims. Scope is optional; subject and
// jti are mandatory and verified on every use.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies access tokens with a process-wide shared
// secret. Verification is stateless: any node holding the secret can
// verify without shared mutable state. The jti claim exists so single
// tokens can be revoked later without breaking that model.
type Codec struct {
	issuer     string
	secret     []byte
	ttl        time.Duration
	jtiFn      func() string
	revocation RevocationChecker
}

// CodecConfig configures a Codec. Zero values fall back to defaults:
// DefaultTTL, uuid-generated jtis, and no revocation checking.
type CodecConfig struct {
	Issuer     string
	Secret     string
	TTL        time.Duration
	JTIFn      func() string
	Revocation RevocationChecker
}

// NewCodec creates a token codec from the given configuration.
func NewCodec(cfg CodecConfig) *Codec {
	c := &Codec{
		issuer:     cfg.Issuer,
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		jtiFn:      cfg.JTIFn,
		revocation: cfg.Revocation,
	}
	if c.ttl <= 0 {
		c.ttl = DefaultTTL
	}
	if c.jtiFn == nil {
		c.jtiFn = uuid.NewString
	}
	if c.revocation == nil {
		c.revocation = NoopRevocation{}
	}
	return c
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the subject with a fresh jti. Scope and
// audience are embedded only when non-empty. Returns the compact token
// and its lifetime in seconds.
func (c *Codec) Issue(subject, scope, audience string) (string, int64, error) {
	now := time.Now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			ID:        c.jtiFn(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		utils.LogError("failed to sign access token", err)
		return "", 0, apierror.ErrAuthUnknown
	}
	return signed, int64(c.ttl.Seconds()), nil
}

// Verify parses and validates a compact token. It fails with
// ErrAuthInvalidToken on bad signature, expiry, missing subject or jti,
// or revocation; any other failure is reported as ErrAuthUnknown and
// never exposes internal detail.
func (c *Codec) Verify(ctx context.Context, signed string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(signed, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) ||
			errors.Is(err, jwt.ErrTokenSignatureInvalid) ||
			errors.Is(err, jwt.ErrTokenExpired) ||
			errors.Is(err, jwt.ErrTokenNotValidYet) ||
			errors.Is(err, jwt.ErrTokenUnverifiable) {
			return nil, apierror.ErrAuthInvalidToken
		}
		utils.LogError("unexpected token parse failure", err)
		return nil, apierror.ErrAuthUnknown
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apierror.ErrAuthInvalidToken
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, apierror.ErrAuthInvalidToken
	}

	revoked, err := c.revocation.Revoked(ctx, claims)
	if err != nil {
		utils.LogError("revocation check failed", err)
		return nil, apierror.ErrAuthUnknown
	}
	if revoked {
		return nil, apierror.ErrAuthInvalidToken
	}

	return claims, nil
}
