// Package api implements the client side of the remote marketplace HTTP
// API: authentication, token validation, provider listings, and profile
// create/update. Every operation is exactly one request/response round
// trip with a shared timeout; failure policy (sentinels, message
// extraction, list coercion) is documented on the Client interface.
package api
