// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware keeps a client supplied X-Request-ID when it is at most 128
// characters of letters, digits, "-" and "_", and otherwise generates a UUIDv4
// with github.com/google/uuid. The id is stored in the request context, echoed
// in the response header and can be added to log records with
// LoggerExtractor.
package requestid
