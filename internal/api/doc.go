// Package api implements the HTTP resource handlers of the shopping list
// service.
//
// Handlers have the signature func(*http.Request, *shared.RequestContext) error.
// They read the decoded body from the request context, call a service, and
// record the serialized result with RequestContext.SetResult; the JSON body
// translator writes it once the handler returns. Handle adapts such a
// function to http.HandlerFunc and turns a returned error into a JSON error
// response through MapErrorToStatusCode and GetSafeErrorMessage, so internal
// error text never reaches clients.
//
// Serialization is explicit: every entity has a response struct (UserResponse,
// ListResponse, ProductResponse). Timestamps are rendered in TimestampLayout,
// and a list's products appear only when its association was loaded.
package api
