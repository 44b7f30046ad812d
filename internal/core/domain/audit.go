package domain

import "time"

// Action is the kind of mutation an audit entry records.
type Action string

// Audit actions. Values match the persisted layout.
const (
	ActionCreate Action = "CREAR"
	ActionEdit   Action = "EDITAR"
	ActionDelete Action = "ELIMINAR"
)

// Entity is the kind of record an audit entry refers to.
type Entity string

// Audit entities. Values match the persisted layout.
const (
	EntitySale       Entity = "VENTA"
	EntityCurrencyTx Entity = "TRANSACCION_USD"
	EntityClient     Entity = "CLIENTE"
)

// MaxAuditEntries is the hard cap on retained audit entries. The log is
// newest-first; entries past the cap are silently dropped.
const MaxAuditEntries = 500

// AuditEntry is one append-only record of a mutation. Entries are never
// edited or deleted individually.
type AuditEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Action    Action `json:"action"`
	Entity    Entity `json:"entity"`
	EntityID  string `json:"entityId"`
	Details   string `json:"details"`
	User      string `json:"user"`
}

// NewAuditEntry builds an entry with a fresh ID and the current instant.
func NewAuditEntry(action Action, entity Entity, entityID, details, user string) (*AuditEntry, error) {
	id, err := NewAuditID()
	if err != nil {
		return nil, err
	}
	return &AuditEntry{
		ID:        id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		User:      user,
	}, nil
}

// Clone returns a copy of the entry.
func (e *AuditEntry) Clone() *AuditEntry {
	c := *e
	return &c
}
