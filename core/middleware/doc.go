// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every route except the public ones.
//   - rayid: assigns each request a RayID, stored in the context and echoed in
//     the X-Ray-ID response header for tracing.
//
// Both are registered globally in cmd/start, rayid first.
package middleware
