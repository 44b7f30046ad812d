// Package ledgerstore holds the authoritative in-memory ledger state
// and mirrors it to a KV engine.
//
// Each state slice (sales, clients, currency transactions, audit log,
// exchange rate, dark-mode flag) lives under its own key, serialized as
// field-named JSON so the stored data stays human-inspectable. A slice
// that is missing or fails to parse on load is replaced by the built-in
// sample dataset (or an empty log), never by a hard failure.
//
// Persistence after a mutation is best-effort: a write failure is
// logged and counted but not surfaced to the caller, so a full disk
// cannot take the session down.
//
// The store performs no invariant checking of its own; the service
// layer is its only consumer and enforces uniqueness and derived-field
// rules before calling in.
package ledgerstore
