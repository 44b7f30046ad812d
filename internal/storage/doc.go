// Package storage provides the embedded key-value storage layer for
// phoneledger.
//
// The ledger keeps its authoritative state in memory and mirrors every
// slice of it (sales, clients, currency transactions, audit log,
// preferences) to a durable KV engine after each mutation. KVEngine is
// the narrow interface that mirroring needs; BadgerEngine is the
// durable implementation, MemoryEngine the ephemeral one used by tests
// and the in-memory run mode.
package storage
