package utils

// SafeDeref safely dereferences a string pointer and returns empty string if nil
func SafeDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringOrDefault dereferences a string pointer, substituting def when the
// pointer is nil or points at an empty string. EC2 reports missing public
// addressing as either, so both count as absent.
func StringOrDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
