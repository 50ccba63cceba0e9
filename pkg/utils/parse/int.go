// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Provides safe parsing with default values

package parse

import "strconv"

// IntOrZero safely parses an integer from a string, returning 0 if parsing fails
func IntOrZero(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// IntOrDefault parses an integer from a string, returning def if parsing fails
func IntOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// Clamp constrains v to the inclusive range [min, max]
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
