// Package serde defines the structured wire reader and writer surface that
// generated serializers and deserializers call against. Concrete wire formats
// live in sub-packages.
package serde
