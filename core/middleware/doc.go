// Package middleware contains HTTP middleware for the import API.
//
// # Components
//
//   - auth: rejects requests that do not carry the configured API key.
//   - rayid: assigns every request a ray id, stores it in the Fiber locals and
//     echoes it in the X-Ray-ID response header, so import logs can be traced.
//
// Both are registered globally by the serve command, rayid first.
package middleware
