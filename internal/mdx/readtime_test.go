package mdx

import (
	"strings"
	"testing"
)

func TestEstimateReadMinutesRoundsUp(t *testing.T) {
	cases := []struct {
		words   int
		minutes int
	}{
		{0, 1},
		{1, 1},
		{199, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{401, 3},
		{1000, 5},
	}

	for _, tc := range cases {
		body := []byte(strings.Repeat("word ", tc.words))
		if got := EstimateReadMinutes(body); got != tc.minutes {
			t.Fatalf("expected %d minutes for %d words, got %d", tc.minutes, tc.words, got)
		}
	}
}

func TestReadTimeLabel(t *testing.T) {
	if got := ReadTimeLabel(8); got != "8 min read" {
		t.Fatalf("unexpected label: %s", got)
	}
	if got := ReadTimeLabel(0); got != "1 min read" {
		t.Fatalf("expected floor of one minute, got %s", got)
	}
}

func TestEstimateReadTimeOfShortBody(t *testing.T) {
	if got := EstimateReadTime([]byte("a handful of words")); got != "1 min read" {
		t.Fatalf("unexpected read time: %s", got)
	}
}
