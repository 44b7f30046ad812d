// Package service provides the domain services for phoneledger.
//
// Services are the only writers of ledger state. Every mutation path
// recomputes derived fields through the domain entities, enforces the
// IMEI uniqueness rule, records one audit entry, and bumps the
// mutation counters. Reads return cloned records, so callers can never
// corrupt store state behind the services' back.
package service
