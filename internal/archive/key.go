package archive

import (
	"path"
	"strings"
)

// ObjectKey joins prefix and the base name of localPath into an S3 key.
// Backslashes are treated as separators in both arguments and an empty
// prefix yields the bare base name.
//
//	ObjectKey("/a/b/show.ts", "2022Q3/Show/") == "2022Q3/Show/show.ts"
func ObjectKey(localPath, prefix string) string {
	base := path.Base(strings.ReplaceAll(localPath, `\`, "/"))

	prefix = strings.ReplaceAll(prefix, `\`, "/")
	if prefix == "" {
		return base
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + base
}
