//go:build darwin

package path

import "path/filepath"

func BeforeWrite(path string) string {
	return path
}

func AfterGetAbsPath(path string) (string, error) {
	// On macOS the same directory can be reported as /var/folders/... or
	// /private/var/folders/...; resolving symlinks settles on /private.
	return filepath.EvalSymlinks(path)
}
