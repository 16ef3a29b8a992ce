// Package constants defines numerical limits and conversion factors.
package constants

// FileSizeUnits lists binary size labels from smallest to largest.
// Sizes past the last label keep using it.
var FileSizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// Limits for the detailed view
const (
	// Maximum number of magnet trackers to print
	MaxTrackersToShow = 10
)
