package generateCommand

import (
	"github.com/spf13/cobra"
	"github.com/t-kuni/wgslbindgen/domain/service/generate"
)

type GenerateCommand struct {
	CobraCommand *cobra.Command
}

func NewGenerateCommand(generateService *generate.GenerateService) *GenerateCommand {
	var force bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate bindings from the configured WGSL entry points",
		Long:  `Resolve the dependency graph of every configured entry point, compose each entry into a single shader module and write the Go bindings. Generation is skipped when the SourceHash marker in the existing output matches the current build input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateService.Generate(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Regenerate even when the source hash is unchanged")

	return &GenerateCommand{
		CobraCommand: cmd,
	}
}
