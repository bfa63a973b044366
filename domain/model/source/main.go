package source

import (
	"path/filepath"
	"strings"
)

// ModulePath is the canonical logical identity of a source file, independent
// of which search root located it. Two files resolving to the same ModulePath
// are the same node in the dependency graph.
type ModulePath string

// SourceFile is an immutable value describing one resolved shader source.
// Instances are created once by the source registry and shared by reference.
type SourceFile struct {
	ModulePath ModulePath
	FilePath   string
	ModuleName string // declared via #define_import_path, empty when absent
	Content    string
}

// ImportRef is a raw import reference found inside a source file, before
// resolution against the search roots.
type ImportRef struct {
	Raw string
}

const importDirective = "#import"
const importPathDirective = "#define_import_path"

// NewModulePath derives a ModulePath from a path relative to a search root.
// The extension is stripped and separators normalized so the identity is
// independent of platform and root.
func NewModulePath(relPath string) ModulePath {
	p := filepath.ToSlash(relPath)
	p = strings.TrimSuffix(p, filepath.Ext(p))
	return ModulePath(p)
}

// ToImportName renders the module path in import syntax (a::b::c).
func (m ModulePath) ToImportName() string {
	return strings.ReplaceAll(string(m), "/", "::")
}

// RelFilePath converts an import reference into the relative file path looked
// up under each search root. Quoted references are taken as literal paths,
// a::b::c references map to a/b/c.wgsl.
func (r ImportRef) RelFilePath() string {
	raw := strings.Trim(r.Raw, `"`)
	if strings.Contains(raw, "::") {
		return filepath.FromSlash(strings.ReplaceAll(raw, "::", "/")) + ".wgsl"
	}
	if filepath.Ext(raw) == "" {
		return raw + ".wgsl"
	}
	return filepath.FromSlash(raw)
}

// ScanImports returns the import references declared in content, in source
// order. Item lists (#import a::b::{c, d}) collapse to the module part.
func ScanImports(content string) []ImportRef {
	var refs []ImportRef
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, importDirective) {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, importDirective))
		if rest == "" {
			continue
		}
		if idx := strings.Index(rest, "::{"); idx >= 0 {
			rest = rest[:idx]
		}
		// "#import a::b as c" style aliases keep only the module part.
		if idx := strings.Index(rest, " as "); idx >= 0 {
			rest = rest[:idx]
		}
		refs = append(refs, ImportRef{Raw: strings.TrimSpace(rest)})
	}
	return refs
}

// ScanModuleName returns the name declared by a #define_import_path
// directive, or the empty string when the file declares none.
func ScanModuleName(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, importPathDirective) {
			return strings.TrimSpace(strings.TrimPrefix(line, importPathDirective))
		}
	}
	return ""
}

// StripDirectives removes composition directives so the remaining text is
// plain WGSL acceptable to the shader compiler.
func StripDirectives(content string) string {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, importDirective) || strings.HasPrefix(trimmed, importPathDirective) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
