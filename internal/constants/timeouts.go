// Package constants defines timeout values used throughout the application.
package constants

import "time"

// Timeout constants for various operations
const (
	// Timeout applied by the shared HTTP client to the info request
	RequestTimeout = 30 * time.Second
)
