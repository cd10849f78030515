package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeTime brings a time-of-day string into "HH:MM" form. Inputs that
// already contain a colon are returned as trimmed; a bare integer-like
// string "N" is read as the hour N with minutes 00, zero-padded. Anything
// else is returned unchanged; normalization is best effort, never an
// error. Normalizing twice yields the same result as normalizing once.
func NormalizeTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, ":") {
		return raw
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return fmt.Sprintf("%02d:00", n)
	}
	return raw
}

// CompareTimes normalizes both inputs, converts each to minutes since
// midnight and returns the signed difference. A strictly positive result
// means a is later than b. A missing minute component counts as zero.
func CompareTimes(a, b string) int {
	return minutesOf(NormalizeTime(a)) - minutesOf(NormalizeTime(b))
}

func minutesOf(t string) int {
	hh, mm, _ := strings.Cut(t, ":")
	h, _ := strconv.Atoi(strings.TrimSpace(hh))
	m, _ := strconv.Atoi(strings.TrimSpace(mm))
	return h*60 + m
}
