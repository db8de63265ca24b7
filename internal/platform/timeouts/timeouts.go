// Package timeouts defines shared timeout constants for the HTTP surfaces.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// OTelShutdown bounds the final span flush when a service exits.
const OTelShutdown = 5 * time.Second
