// Package api exposes the decimal number matcher over HTTP.
//
// Routes:
//
//	POST /v1/matchers/decimal  {"value": "123.45", "params": [5, 2]}
//	GET  /health
//
// A request without params is checked by the server's default matcher.
// Issue messages are localised using the language negotiated by
// i18n.Middleware.
package api
