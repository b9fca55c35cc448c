package numberutils

import "strconv"

// IsInt checks if the given string can be converted to a valid integer.
func IsInt(str string) bool {
	_, err := strconv.Atoi(str)
	return err == nil
}

// ToInt converts the given string to an integer.
// If the string cannot be converted, it returns 0.
func ToInt(str string) int {
	if i, err := strconv.Atoi(str); err == nil {
		return i
	}
	return 0
}

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(str string, defaultVal int) int {
	if i, err := strconv.Atoi(str); err == nil {
		return i
	}
	return defaultVal
}

// ToIntWithError converts the given string to an integer and returns any
// error that occurred during conversion.
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(str)
}
