// Package types defines the contracts shared across the module: the
// filesystem capability the store operates through, and the Convertible
// contract a value must satisfy to be persisted.
package types
