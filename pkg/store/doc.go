// Package store persists Convertible values as files under an
// application's private storage directory. It is a thin façade over an
// injected filesystem capability: it resolves storage locations, moves
// bytes, and maps every failure into a closed set of error codes.
package store
