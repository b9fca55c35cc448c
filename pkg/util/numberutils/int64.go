package numberutils

import "strconv"

// IsInt64 checks if the given string can be converted to a valid int64.
func IsInt64(str string) bool {
	_, err := strconv.ParseInt(str, 10, 64)
	return err == nil
}

// ToInt64 converts the given string to an int64.
// If the string cannot be converted, it returns 0.
func ToInt64(str string) int64 {
	if i, err := strconv.ParseInt(str, 10, 64); err == nil {
		return i
	}
	return 0
}

// ToInt64WithDefault converts the given string to an int64.
// If the string cannot be converted, it returns the provided default value.
func ToInt64WithDefault(str string, defaultVal int64) int64 {
	if i, err := strconv.ParseInt(str, 10, 64); err == nil {
		return i
	}
	return defaultVal
}

// ToInt64WithError converts the given string to an int64 and returns any
// error that occurred during conversion.
func ToInt64WithError(str string) (int64, error) {
	return strconv.ParseInt(str, 10, 64)
}
