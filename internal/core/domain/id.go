package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID prefixes, one per entity kind. IDs are opaque to callers; the prefix
// only helps when reading persisted data or audit trails by hand.
const (
	SaleIDPrefix        = "vnt-"
	ClientIDPrefix      = "cli-"
	TransactionIDPrefix = "usd-"
	AuditIDPrefix       = "log-"
	SessionTokenPrefix  = "ses-"
)

// newID generates a prefixed lowercase ULID.
func newID(prefix string) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternalServer.WithCause(err)
	}
	return prefix + strings.ToLower(id.String()), nil
}

// NewSaleID generates a new sale ID.
func NewSaleID() (string, error) { return newID(SaleIDPrefix) }

// NewClientID generates a new client ID.
func NewClientID() (string, error) { return newID(ClientIDPrefix) }

// NewTransactionID generates a new currency transaction ID.
func NewTransactionID() (string, error) { return newID(TransactionIDPrefix) }

// NewAuditID generates a new audit log entry ID.
func NewAuditID() (string, error) { return newID(AuditIDPrefix) }

// NewSessionToken generates a new opaque session token.
func NewSessionToken() (string, error) { return newID(SessionTokenPrefix) }
