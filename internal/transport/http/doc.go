// Package http contains the chi HTTP handlers for the analytics API.
//
// Every analysis endpoint is scoped to a session identified by the
// X-Session-ID header. Handlers translate service sentinel errors into
// structured API errors and render results with go-chi/render.
package http
