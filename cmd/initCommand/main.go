package initCommand

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/t-kuni/wgslbindgen/domain/repository/config"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new wgslbindgen project",
		Long:  `Initialize a new wgslbindgen project by creating a wgslbindgen.yml configuration file in the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := os.Getwd()
			if err != nil {
				return err
			}

			configPath := filepath.Join(currentDir, "wgslbindgen.yml")
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("wgslbindgen.yml already exists in the current directory")
			}

			cfg := &config.Config{
				EntryPoints:   []string{"shaders/main.wgsl"},
				WorkspaceRoot: "shaders",
				Output:        "gen/shaders.go",
				Package:       "shaders",
			}

			err = configRepository.Write(configPath, cfg)
			if err != nil {
				return err
			}

			fmt.Println("Initialized wgslbindgen project. Created wgslbindgen.yml in the current directory.")
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}
