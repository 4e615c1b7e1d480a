package assets

import (
	"path"
	"strconv"
	"strings"
)

// VersionedKey checks a slash-separated relative path for a numeric
// version segment immediately before its final extension. For
// "css/styles.4.css" it returns key "css/styles.css" and version 4.
// Paths without the convention report ok=false.
func VersionedKey(relpath string) (key string, version int, ok bool) {
	base := path.Base(relpath)
	parts := strings.Split(base, ".")
	if len(parts) < 3 {
		return "", 0, false
	}
	n, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return "", 0, false
	}
	unversioned := strings.Join(parts[:len(parts)-2], ".") + "." + parts[len(parts)-1]
	return path.Join(path.Dir(relpath), unversioned), n, true
}

// RecordVersion folds one path into the highest-version-seen map.
func RecordVersion(relpath string, versions map[string]int) {
	key, n, ok := VersionedKey(relpath)
	if !ok {
		return
	}
	if n > versions[key] {
		versions[key] = n
	}
}
