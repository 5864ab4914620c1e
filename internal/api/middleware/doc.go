// Package middleware contains the HTTP middleware of the JSON API: trace ids,
// content negotiation, bearer token authentication and the JSON body
// translator. Each middleware has the func(http.Handler) http.Handler shape
// used by chi; work done before calling next is the request phase and work
// done after it the response phase.
package middleware
