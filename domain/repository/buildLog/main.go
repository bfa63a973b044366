package buildLog

import "time"

// BuildLog records one generate run, skipped or not. One file per run under
// .wgslbindgen/builds/.
type BuildLog struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	Fingerprint string    `json:"fingerprint"`
	EntryPoints []string  `json:"entryPoints"`
	Output      string    `json:"output"`
	Skipped     bool      `json:"skipped"`
}

type Repository interface {
	Read(path string) (BuildLog, error)
	Write(path string, record BuildLog) error
}
