package config

type Config struct {
	EntryPoints            []string `yaml:"entry-points"`
	WorkspaceRoot          string   `yaml:"workspace-root"`
	ModuleImportRoot       string   `yaml:"module-import-root"`
	AdditionalScanDirs     []string `yaml:"additional-scan-dirs"`
	Output                 string   `yaml:"output"`
	Package                string   `yaml:"package"`
	SkipHashCheck          bool     `yaml:"skip-hash-check"`
	EmitRerunIfChanged     bool     `yaml:"emit-rerun-if-changed"`
	DetectAmbiguousImports bool     `yaml:"detect-ambiguous-imports"`
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}
