// Package token provides random token generation and hashing.
//
// Tokens are Base64 RawURL encoded output of crypto/rand, safe for use
// in headers and URLs. Hashes are hex-encoded SHA-256, so stores can
// keep hashes instead of the tokens themselves.
package token
