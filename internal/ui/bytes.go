package ui

import "strconv"

// byteUnits is the unit ladder for FormatBytes. There is no TB tier: anything
// past 1024 GB keeps growing in GB.
var byteUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes renders a byte count using base-1024 units.
// Plain bytes print as an integer ("500 B"); larger units print with one
// decimal place ("1.5 KB", "476.8 GB").
func FormatBytes(bytes uint64) string {
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 {
		return strconv.FormatUint(bytes, 10) + " " + byteUnits[0]
	}
	return strconv.FormatFloat(size, 'f', 1, 64) + " " + byteUnits[unit]
}
