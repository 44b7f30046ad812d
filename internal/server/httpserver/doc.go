// Package httpserver provides the HTTP server for phoneledger.
//
// It uses the Go standard library net/http for implementation,
// providing the REST endpoints the dashboard consumes: sales, currency
// transactions, clients, audit log, summaries, preferences, snapshot
// import/export and Excel reports.
//
// The server binds to loopback by default. Every business route sits
// behind session authentication; /health, /metrics and /auth/login are
// the only open endpoints.
package httpserver
