package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/t-kuni/wgslbindgen/domain/external/buildNotify"
	"github.com/t-kuni/wgslbindgen/domain/external/emitter"
	"github.com/t-kuni/wgslbindgen/domain/repository/buildLog"
	"github.com/t-kuni/wgslbindgen/domain/repository/config"
	"github.com/t-kuni/wgslbindgen/domain/repository/file"
	"github.com/t-kuni/wgslbindgen/domain/service/bindGroupValidate"
	"github.com/t-kuni/wgslbindgen/domain/service/composeDriver"
	"github.com/t-kuni/wgslbindgen/domain/service/configFindService"
	"github.com/t-kuni/wgslbindgen/domain/service/dependencyTree"
	"github.com/t-kuni/wgslbindgen/domain/service/fingerprint"
	"github.com/t-kuni/wgslbindgen/domain/service/importResolver"
	"github.com/t-kuni/wgslbindgen/domain/service/sourceRegistry"
	"github.com/t-kuni/wgslbindgen/domain/system/ksuid"
	"github.com/t-kuni/wgslbindgen/domain/system/timer"
)

// SourceHashMarker is the fixed prefix of the fingerprint line embedded in
// generated output. A later run compares the marker against the freshly
// computed fingerprint to detect "no change" without recomputing composition.
const SourceHashMarker = "// SourceHash:"

type GenerateService struct {
	configFindService        *configFindService.ConfigFindService
	configRepository         config.Repository
	fileRepository           file.Repository
	sourceRegistryService    *sourceRegistry.SourceRegistryService
	dependencyTreeService    *dependencyTree.DependencyTreeService
	fingerprintService       *fingerprint.FingerprintService
	composeDriverService     *composeDriver.ComposeDriverService
	bindGroupValidateService *bindGroupValidate.BindGroupValidateService
	emitter                  emitter.Emitter
	notifier                 buildNotify.Notifier
	buildLogRepository       buildLog.Repository
	timer                    timer.ITimer
	ksuidGenerator           ksuid.IKsuid
	toolVersion              string
}

func NewGenerateService(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	fileRepository file.Repository,
	sourceRegistryService *sourceRegistry.SourceRegistryService,
	dependencyTreeService *dependencyTree.DependencyTreeService,
	fingerprintService *fingerprint.FingerprintService,
	composeDriverService *composeDriver.ComposeDriverService,
	bindGroupValidateService *bindGroupValidate.BindGroupValidateService,
	emitter emitter.Emitter,
	notifier buildNotify.Notifier,
	buildLogRepository buildLog.Repository,
	timer timer.ITimer,
	ksuidGenerator ksuid.IKsuid,
	toolVersion string,
) *GenerateService {
	return &GenerateService{
		configFindService:        configFindService,
		configRepository:         configRepository,
		fileRepository:           fileRepository,
		sourceRegistryService:    sourceRegistryService,
		dependencyTreeService:    dependencyTreeService,
		fingerprintService:       fingerprintService,
		composeDriverService:     composeDriverService,
		bindGroupValidateService: bindGroupValidateService,
		emitter:                  emitter,
		notifier:                 notifier,
		buildLogRepository:       buildLogRepository,
		timer:                    timer,
		ksuidGenerator:           ksuidGenerator,
		toolVersion:              toolVersion,
	}
}

// Generate runs the whole pipeline once: resolve the dependency graph,
// fingerprint the build input, and either skip (marker match) or compose,
// validate, emit and write. Entry points are processed sequentially in the
// configured order and the batch fails fast on the first error.
func (s *GenerateService) Generate(force bool) error {
	configPath, err := s.configFindService.FindConfig()
	if err != nil {
		return eris.Wrap(err, "failed to find config file")
	}

	cfg, err := s.configRepository.Read(configPath)
	if err != nil {
		return eris.Wrap(err, "failed to read config file")
	}

	if len(cfg.EntryPoints) == 0 {
		return eris.New("no entry-points configured")
	}
	if cfg.Output == "" {
		return eris.New("output is not specified")
	}

	rootDir := s.configFindService.GetProjectRoot(configPath)
	roots := importResolver.RootsFromConfig(rootDir, cfg)

	entryPaths := make([]string, 0, len(cfg.EntryPoints))
	for _, entry := range cfg.EntryPoints {
		entryPaths = append(entryPaths, filepath.Join(rootDir, entry))
	}

	s.sourceRegistryService.Reset()

	tree, err := s.dependencyTreeService.Build(entryPaths, roots)
	if err != nil {
		return eris.Wrap(err, "failed to build dependency tree")
	}

	allFiles := tree.AllFiles()

	contentHash, err := s.fingerprintService.Fingerprint(cfg, allFiles)
	if err != nil {
		return eris.Wrap(err, "failed to fingerprint build input")
	}

	if cfg.EmitRerunIfChanged {
		for _, f := range allFiles {
			s.notifier.NotifyChangedFile(f.FilePath)
		}
	}

	outputPath := filepath.Join(rootDir, cfg.Output)

	oldContent := ""
	if s.fileRepository.Exists(outputPath) {
		old, err := s.fileRepository.Read(outputPath)
		if err != nil {
			return eris.Wrapf(err, "failed to read previous output: %s", outputPath)
		}
		oldContent = string(old)
	}

	if !force && !cfg.SkipHashCheck && hasSourceHash(oldContent, contentHash) {
		fmt.Printf("wgslbindgen: %s is up to date\n", cfg.Output)
		return s.writeBuildLog(rootDir, cfg, contentHash, true)
	}

	entryResults := tree.EntryResults()
	entries := make([]emitter.EntryModule, 0, len(entryResults))
	for _, result := range entryResults {
		composed, err := s.composeDriverService.Compose(result)
		if err != nil {
			return err
		}

		if err := s.bindGroupValidateService.Validate(composed.IR); err != nil {
			return eris.Wrapf(err, "invalid resource bindings in %s", result.Entry.FilePath)
		}

		entries = append(entries, emitter.EntryModule{
			Name:         emitter.SanitizeName(result.Entry.FilePath),
			Source:       result.Entry,
			Dependencies: result.Dependencies,
			Composed:     composed,
		})
	}

	body, err := s.emitter.Emit(cfg.Package, entries)
	if err != nil {
		return eris.Wrap(err, "failed to emit bindings")
	}

	content := s.headerText(contentHash) + body

	if err := s.fileRepository.Write(outputPath, []byte(content)); err != nil {
		return eris.Wrapf(err, "failed to write output: %s", outputPath)
	}

	if oldContent != "" {
		printDiffSummary(oldContent, content, cfg.Output)
	}
	fmt.Printf("wgslbindgen: wrote %s (%d entry points, %d files)\n", cfg.Output, len(entries), len(allFiles))

	return s.writeBuildLog(rootDir, cfg, contentHash, false)
}

func (s *GenerateService) headerText(contentHash string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// File automatically generated by wgslbindgen.\n")
	fmt.Fprintf(&b, "//\n")
	fmt.Fprintf(&b, "// wgslbindgen version %s\n", s.toolVersion)
	fmt.Fprintf(&b, "// Changes made to this file will not be saved.\n")
	fmt.Fprintf(&b, "%s %s\n\n", SourceHashMarker, contentHash)
	return b.String()
}

func (s *GenerateService) writeBuildLog(rootDir string, cfg *config.Config, contentHash string, skipped bool) error {
	id := s.ksuidGenerator.New()
	record := buildLog.BuildLog{
		ID:          id,
		GeneratedAt: s.timer.Now(),
		Fingerprint: contentHash,
		EntryPoints: cfg.EntryPoints,
		Output:      cfg.Output,
		Skipped:     skipped,
	}

	logPath := filepath.Join(rootDir, ".wgslbindgen", "builds", id+".json")
	if err := s.buildLogRepository.Write(logPath, record); err != nil {
		return eris.Wrap(err, "failed to write build log")
	}

	return nil
}

func hasSourceHash(content string, contentHash string) bool {
	marker := fmt.Sprintf("%s %s", SourceHashMarker, contentHash)
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, SourceHashMarker) {
			return line == marker
		}
	}
	return false
}

func printDiffSummary(oldContent string, newContent string, output string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldContent, newContent, false)

	inserted, deleted := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += len(d.Text)
		case diffmatchpatch.DiffDelete:
			deleted += len(d.Text)
		}
	}

	if inserted > 0 || deleted > 0 {
		fmt.Printf("wgslbindgen: %s changed (+%d/-%d bytes)\n", output, inserted, deleted)
	}
}
