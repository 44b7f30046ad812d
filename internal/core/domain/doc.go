// Package domain defines the core domain models for phoneledger.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling. All derived fields (sale
// profit, warranty date, currency transaction totals) are computed
// by methods on the entities themselves so that every write path
// shares the same arithmetic.
package domain
