package engine

import "strconv"

// FormatScore pads the score with dashes to keep the label centered
func FormatScore(score int) string {
	s := strconv.Itoa(score)
	switch {
	case score >= 10000:
		return s
	case score >= 1000:
		return "-" + s
	case score >= 100:
		return "--" + s
	case score >= 10:
		return "--" + s + "-"
	default:
		return "--" + s + "--"
	}
}
