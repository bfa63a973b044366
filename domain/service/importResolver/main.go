package importResolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/t-kuni/wgslbindgen/domain/model/source"
	"github.com/t-kuni/wgslbindgen/domain/repository/config"
	"github.com/t-kuni/wgslbindgen/domain/repository/file"
)

// SearchRoots is the ordered set of directories an import reference is
// resolved against. The order is a fixed precedence rule: the module import
// root, then the workspace root, then each additional scan directory in the
// order configured. The first root containing a match wins; this is
// load-bearing for reproducibility and must not depend on map iteration or
// directory listing order.
type SearchRoots struct {
	ModuleImportRoot   string // optional
	WorkspaceRoot      string
	AdditionalScanDirs []string

	// DetectAmbiguous turns a reference matched by more than one root into an
	// AmbiguousImportError instead of silently preferring the first root.
	DetectAmbiguous bool
}

// RootsFromConfig resolves the configured root directories against the
// project root.
func RootsFromConfig(rootDir string, cfg *config.Config) SearchRoots {
	roots := SearchRoots{
		WorkspaceRoot:   filepath.Join(rootDir, cfg.WorkspaceRoot),
		DetectAmbiguous: cfg.DetectAmbiguousImports,
	}
	if cfg.ModuleImportRoot != "" {
		roots.ModuleImportRoot = filepath.Join(rootDir, cfg.ModuleImportRoot)
	}
	for _, dir := range cfg.AdditionalScanDirs {
		roots.AdditionalScanDirs = append(roots.AdditionalScanDirs, filepath.Join(rootDir, dir))
	}
	return roots
}

// InOrder returns the roots in resolution precedence order.
func (r SearchRoots) InOrder() []string {
	ordered := make([]string, 0, 2+len(r.AdditionalScanDirs))
	if r.ModuleImportRoot != "" {
		ordered = append(ordered, r.ModuleImportRoot)
	}
	ordered = append(ordered, r.WorkspaceRoot)
	ordered = append(ordered, r.AdditionalScanDirs...)
	return ordered
}

type ImportResolverService struct {
	fileRepository file.Repository
}

func NewImportResolverService(fileRepository file.Repository) *ImportResolverService {
	return &ImportResolverService{
		fileRepository: fileRepository,
	}
}

// Resolved is the outcome of a successful resolution.
type Resolved struct {
	ModulePath source.ModulePath
	FilePath   string
}

type UnresolvedImportError struct {
	Reference string
	Importer  source.ModulePath
}

func (e *UnresolvedImportError) Error() string {
	return fmt.Sprintf("unresolved import %q in module %s", e.Reference, e.Importer)
}

type AmbiguousImportError struct {
	Reference  string
	Candidates []string
}

func (e *AmbiguousImportError) Error() string {
	return fmt.Sprintf("ambiguous import %q matched by multiple roots: %s",
		e.Reference, strings.Join(e.Candidates, ", "))
}

// Resolve locates the file an import reference points at, checking each
// search root in precedence order.
func (s *ImportResolverService) Resolve(importer source.ModulePath, ref source.ImportRef, roots SearchRoots) (Resolved, error) {
	relPath := ref.RelFilePath()

	var candidates []string
	for _, root := range roots.InOrder() {
		candidate := filepath.Clean(filepath.Join(root, relPath))
		if !s.fileRepository.Exists(candidate) {
			continue
		}
		if !containsPath(candidates, candidate) {
			candidates = append(candidates, candidate)
		}
		if !roots.DetectAmbiguous {
			break
		}
	}

	if len(candidates) == 0 {
		return Resolved{}, &UnresolvedImportError{Reference: ref.Raw, Importer: importer}
	}
	if roots.DetectAmbiguous && len(candidates) > 1 {
		return Resolved{}, &AmbiguousImportError{Reference: ref.Raw, Candidates: candidates}
	}

	return Resolved{
		ModulePath: source.NewModulePath(relPath),
		FilePath:   candidates[0],
	}, nil
}

// ModulePathFor derives the canonical module path of an on-disk file from
// its location relative to the first root that contains it.
func ModulePathFor(filePath string, roots SearchRoots) source.ModulePath {
	for _, root := range roots.InOrder() {
		rel, err := filepath.Rel(root, filePath)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		return source.NewModulePath(rel)
	}
	return source.NewModulePath(filepath.Base(filePath))
}

func containsPath(paths []string, path string) bool {
	for _, p := range paths {
		if p == path {
			return true
		}
	}
	return false
}
