// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - Auth: API key validation protecting every endpoint.
//   - RayID: generates a unique request id (ray id) for every incoming
//     request, injecting it into the context and response headers so log
//     lines can be traced back to one request.
//
// These components are registered globally in the start command.
package middleware
