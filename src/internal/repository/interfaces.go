package repository

import (
	"hub-api/src/internal/model"
)

// OAuthAppRepository defines the interface for client credential lookup
type OAuthAppRepository interface {
	// GetByClientID returns the app registered under the client id, or
	// nil when no such app exists.
	GetByClientID(clientID string) (*model.OAuthApp, error)
}

// StorageQuotaRepository defines the interface for quota ledger access.
// Debit and Credit are the only ways remaining capacity changes; both
// are single conditional updates so concurrent requests against the
// same row cannot overdraw it.
type StorageQuotaRepository interface {
	GetByID(id string) (*model.StorageQuota, error)
	GetByWebsiteID(websiteID string) (*model.StorageQuota, error)

	// Debit subtracts size from remaining. It fails with
	// constants.ErrQuotaExhausted when the subtraction would leave
	// remaining at or below zero; the row is untouched in that case.
	Debit(id string, size int64) error

	// Credit adds size back to remaining, capped at the row's total.
	Credit(id string, size int64) error
}
