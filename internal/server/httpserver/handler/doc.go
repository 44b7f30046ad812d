// Package handler provides HTTP request handlers for phoneledger.
//
// This package contains handlers for all HTTP endpoints:
//
//   - auth.go: Login and logout
//   - sales.go: Sale CRUD and the IMEI check
//   - clients.go: Client directory CRUD
//   - currency.go: Currency transaction CRUD
//   - audit.go: Audit log reads
//   - summary.go: Dashboard aggregates
//   - snapshot.go: JSON export and bulk imports
//   - prefs.go: Exchange rate and theme preferences
//   - export.go: Excel report downloads
//   - health.go: Health check and Prometheus metrics
//
// All handlers follow a consistent pattern:
//
//   - Parse and validate request
//   - Call domain service
//   - Format and return response
//   - Handle errors with appropriate HTTP status codes
package handler
