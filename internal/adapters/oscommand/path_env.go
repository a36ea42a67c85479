package oscommand

import (
	"os"
	"strings"
)

// environWithPath returns a copy of environ whose PATH has extra appended.
// A missing PATH becomes extra alone.
func environWithPath(environ []string, extra string) []string {
	env := make([]string, 0, len(environ)+1)
	found := false
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok && isPathKey(key) && !found {
			found = true
			env = append(env, key+"="+appendPathList(value, extra))
			continue
		}
		env = append(env, kv)
	}
	if !found {
		env = append(env, "PATH="+extra)
	}
	return env
}

func appendPathList(list, extra string) string {
	if list == "" {
		return extra
	}
	return list + string(os.PathListSeparator) + extra
}
