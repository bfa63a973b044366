package buildLog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/t-kuni/wgslbindgen/domain/repository/buildLog"
)

type repositoryImpl struct{}

func NewRepository() buildLog.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Read(path string) (buildLog.BuildLog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return buildLog.BuildLog{}, err
	}

	var record buildLog.BuildLog
	err = json.Unmarshal(content, &record)
	if err != nil {
		return buildLog.BuildLog{}, err
	}

	return record, nil
}

func (r *repositoryImpl) Write(path string, record buildLog.BuildLog) error {
	content, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	return os.WriteFile(path, content, 0644)
}
