// Package constants defines application-wide constants and default values.
package constants

const (
	// Tool metadata
	AppName        = "nyaainfo"
	AppVersion     = "1.0.0"
	AppDescription = "Query torrent info on Nyaa.si"

	// Environment variables
	EnvAPIHost     = "NYAA_API_HOST"
	EnvAPIUsername = "NYAA_API_USERNAME"
	EnvAPIPassword = "NYAA_API_PASSWORD"
	EnvLogLevel    = "LOG_LEVEL"

	// API paths
	APIBase = "/api"
	APIInfo = APIBase + "/info"

	// Identifier patterns
	IDPattern       = `^[1-9][0-9]*$`
	InfoHashPattern = `^[0-9a-fA-F]{40}$`
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitBadResult = 1
	ExitUsage     = 2
	ExitTransport = 3
)
