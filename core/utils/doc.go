// Package utils holds loose value conversions shared by the HTTP handlers and the
// storage option bags, where values arrive as strings or untyped map entries.
package utils
