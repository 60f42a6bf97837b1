// Package smithy holds the runtime contract shared by generated model types:
// the API error base, value equality and hashing helpers, redaction,
// idempotency tokens, streaming payloads and operation bindings.
package smithy
