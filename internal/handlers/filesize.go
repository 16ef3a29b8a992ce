package handlers

import (
	"fmt"

	"github.com/inhies/go-bytesize"

	"github.com/amaumene/nyaainfo/internal/constants"
)

// EasyFileSize formats a byte count with one decimal and a binary unit.
// Values of 1024 TiB and above stay in TiB.
func EasyFileSize(filesize float64) string {
	step := float64(bytesize.KB)
	last := len(constants.FileSizeUnits) - 1

	for i, unit := range constants.FileSizeUnits {
		if filesize < step || i == last {
			return fmt.Sprintf("%.1f %s", filesize, unit)
		}
		filesize = filesize / step
	}
	return ""
}
