// Package middleware groups the Fiber middleware mounted in front of every route.
//
// rayid tags each request with an X-Ray-ID (reusing the caller's when present) and auth
// rejects requests without the configured X-API-Key. The server mounts rayid first so
// that rejected requests are still traceable.
package middleware
