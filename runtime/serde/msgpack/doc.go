// Package msgpack implements the serde surface over MessagePack documents.
// Structures and unions encode as maps keyed by serial name, lists and sets
// as arrays, and maps as maps with string keys.
package msgpack
