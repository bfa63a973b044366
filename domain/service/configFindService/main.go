package configFindService

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/t-kuni/wgslbindgen/util/path"
)

type ConfigFindService struct {
	fileRepository FileRepository
}

type FileRepository interface {
	Getwd() (string, error)
}

func NewConfigFindService(fileRepository FileRepository) *ConfigFindService {
	return &ConfigFindService{
		fileRepository: fileRepository,
	}
}

// FindConfig walks up from the working directory until it finds
// wgslbindgen.yml or wgslbindgen.yaml.
func (s *ConfigFindService) FindConfig() (string, error) {
	currentDir, err := s.fileRepository.Getwd()
	if err != nil {
		return "", err
	}

	currentDir, err = path.AfterGetAbsPath(currentDir)
	if err != nil {
		return "", err
	}

	for {
		ymlPath := filepath.Join(currentDir, "wgslbindgen.yml")
		yamlPath := filepath.Join(currentDir, "wgslbindgen.yaml")

		if exists(ymlPath) {
			return ymlPath, nil
		}
		if exists(yamlPath) {
			return yamlPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", errors.New("wgslbindgen.yml or wgslbindgen.yaml was not found")
}

func (s *ConfigFindService) GetProjectRoot(configPath string) string {
	return filepath.Dir(configPath)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
