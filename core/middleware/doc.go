// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: API key validation for the management endpoints (catalog
//     reload, integrity). An empty key disables it.
//   - RayID: assigns a Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
//
// These middleware components are registered globally or per route group
// in the start command.
package middleware
