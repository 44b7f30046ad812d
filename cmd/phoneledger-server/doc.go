// Package main provides the entry point for phoneledger-server.
//
// phoneledger-server is the data-layer service for a single-operator
// phone resale ledger: sales, currency transactions, clients, audit
// log, dashboard summaries and Excel exports over a local HTTP API.
package main
