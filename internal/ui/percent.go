package ui

// CalculatePercentage returns used as a percentage of total.
// A zero total yields 0 rather than an error. The result is not clamped, so
// used > total gives a value above 100.
func CalculatePercentage(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100.0
}
