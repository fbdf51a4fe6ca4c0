// Package api exposes the card and training workflows over HTTP.
//
// Handlers decode JSON requests, call the services and map their errors to
// status codes in one place (MapErrorToStatusCode). Error bodies carry the
// request's trace ID so a client report can be matched to the server log.
package api
