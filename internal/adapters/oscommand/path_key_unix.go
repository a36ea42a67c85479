//go:build !windows

package oscommand

func isPathKey(key string) bool {
	return key == "PATH"
}
