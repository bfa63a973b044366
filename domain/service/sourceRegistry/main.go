package sourceRegistry

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/wgslbindgen/domain/model/source"
	"github.com/t-kuni/wgslbindgen/domain/repository/file"
)

// SourceRegistryService loads shader sources and caches them by module path,
// so a dependency shared between entry points is read from disk exactly once.
// The cache lives for one build invocation; Reset clears it at the start of
// the next one.
type SourceRegistryService struct {
	fileRepository file.Repository
	cache          map[source.ModulePath]*source.SourceFile
}

func NewSourceRegistryService(fileRepository file.Repository) *SourceRegistryService {
	return &SourceRegistryService{
		fileRepository: fileRepository,
		cache:          make(map[source.ModulePath]*source.SourceFile),
	}
}

type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// Load returns the source file identified by modulePath, reading filePath on
// the first call and the cached value on every later one.
func (s *SourceRegistryService) Load(modulePath source.ModulePath, filePath string) (*source.SourceFile, error) {
	if cached, ok := s.cache[modulePath]; ok {
		return cached, nil
	}

	if !s.fileRepository.Exists(filePath) {
		return nil, &NotFoundError{Path: filePath}
	}

	content, err := s.fileRepository.Read(filePath)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read source file: %s", filePath)
	}

	loaded := &source.SourceFile{
		ModulePath: modulePath,
		FilePath:   filePath,
		ModuleName: source.ScanModuleName(string(content)),
		Content:    string(content),
	}
	s.cache[modulePath] = loaded

	return loaded, nil
}

// Reset drops the cache so a fresh build re-reads every file.
func (s *SourceRegistryService) Reset() {
	s.cache = make(map[source.ModulePath]*source.SourceFile)
}
