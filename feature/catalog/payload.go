package catalog

import "strings"

// TrimBOM drops a leading UTF-8 byte order mark from a raw payload.
func TrimBOM(payload string) string {
	return strings.TrimPrefix(payload, "\ufeff")
}
