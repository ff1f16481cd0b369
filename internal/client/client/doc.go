// Package client is the outbound side of the qrcontacts client.
//
// # Overview
//
// The package provides:
//  1. A transport contract (Transport) that performs one HTTP exchange and
//     returns a fully buffered Response, failing only when no response was
//     received at all (errors wrap common.ErrConnectivity).
//  2. HTTPTransport, the net/http implementation bound to a base URL.
//  3. Gateway, which decorates every call with the current session's bearer
//     token, a JSON content type and a request id, and invalidates the session
//     when the service answers 401 or 403.
//
// # Error Handling
//
// Gateway returns common.ErrSessionExpired on 401/403 after logging the user
// out. Every other status is handed back untouched for the caller to
// interpret; the gateway never infers domain errors beyond authorization.
//
// # Responses
//
// Response bodies are read eagerly and parsed lazily. JSON never fails: a
// malformed body reads as an empty object. Use DecodeJSON when a typed,
// checked decode is needed.
package client
