//go:build windows

package oscommand

import "strings"

// Windows environment names are case-insensitive ("Path" is common).
func isPathKey(key string) bool {
	return strings.EqualFold(key, "PATH")
}
