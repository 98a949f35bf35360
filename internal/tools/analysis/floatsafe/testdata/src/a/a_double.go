package a

import "strconv"

func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
