package mdx

import (
	"fmt"
	"strings"
)

// wordsPerMinute is the fixed reading speed used when an article does not
// declare an explicit readTime.
const wordsPerMinute = 200

// EstimateReadMinutes returns the estimated reading time for body in whole
// minutes, rounding up. The result is always >= 1.
func EstimateReadMinutes(body []byte) int {
	words := len(strings.Fields(string(body)))
	if words == 0 {
		return 1
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// ReadTimeLabel renders a minute count as the display label used across the
// site, e.g. "8 min read".
func ReadTimeLabel(minutes int) string {
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// EstimateReadTime combines estimation and labelling for the common case.
func EstimateReadTime(body []byte) string {
	return ReadTimeLabel(EstimateReadMinutes(body))
}
