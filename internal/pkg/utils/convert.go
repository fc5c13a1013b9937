package utils

import "strconv"

// ConvertToInt converts a string to an int, returning 0 when the value
// cannot be parsed.
func ConvertToInt(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
