// Package http implements the HTTP transport of the note server.
//
// A single POST /api/data endpoint dispatches on the "action" field of the
// JSON body to the sync and share services. Request tracing, access logging,
// per-IP rate limiting, compression and the optional HMAC integrity check
// are applied as middleware before a request reaches a handler.
package http
