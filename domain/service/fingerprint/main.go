package fingerprint

import (
	"encoding/hex"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/wgslbindgen/domain/model/source"
	"github.com/t-kuni/wgslbindgen/domain/repository/config"
	"gopkg.in/yaml.v3"
	"lukechampine.com/blake3"
)

// FingerprintService digests the whole build input: the serialized
// configuration, the tool version, and the content of every resolved file in
// canonical module-path order. Two builds with equal fingerprints produce
// byte-identical output, so the caller can skip regeneration entirely.
type FingerprintService struct {
	toolVersion string
}

func NewFingerprintService(toolVersion string) *FingerprintService {
	return &FingerprintService{
		toolVersion: toolVersion,
	}
}

func (s *FingerprintService) Fingerprint(cfg *config.Config, files []*source.SourceFile) (string, error) {
	serialized, err := yaml.Marshal(cfg)
	if err != nil {
		return "", eris.Wrap(err, "failed to serialize config for fingerprinting")
	}

	sorted := make([]*source.SourceFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ModulePath < sorted[j].ModulePath
	})

	hasher := blake3.New(32, nil)
	hasher.Write(serialized)
	hasher.Write([]byte(s.toolVersion))
	for _, f := range sorted {
		hasher.Write([]byte(f.Content))
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
