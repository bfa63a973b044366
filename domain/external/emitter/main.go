//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package emitter

import (
	"path/filepath"
	"strings"

	"github.com/t-kuni/wgslbindgen/domain/external/composer"
	"github.com/t-kuni/wgslbindgen/domain/model/source"
)

// EntryModule is the per-entry payload handed to the code-emission
// collaborator. The composed module has already passed structural validation.
type EntryModule struct {
	Name         string
	Source       *source.SourceFile
	Dependencies []*source.SourceFile
	Composed     *composer.ComposedModule
}

// Emitter renders target-language bindings for the composed entry points.
type Emitter interface {
	Emit(pkg string, entries []EntryModule) (string, error)
}

// SanitizeName turns a file path into a PascalCase identifier usable in
// generated code, e.g. "shaders/post_process.wgsl" becomes "PostProcess".
func SanitizeName(filePath string) string {
	base := filepath.Base(filePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	upper := true
	for _, ch := range base {
		switch {
		case ch == '_' || ch == '-' || ch == '.' || ch == ' ':
			upper = true
		case upper:
			b.WriteRune(toUpper(ch))
			upper = false
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func toUpper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
