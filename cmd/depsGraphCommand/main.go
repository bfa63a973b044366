package depsGraphCommand

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/wgslbindgen/domain/repository/config"
	"github.com/t-kuni/wgslbindgen/domain/repository/depsGraph"
	"github.com/t-kuni/wgslbindgen/domain/service/configFindService"
	"github.com/t-kuni/wgslbindgen/domain/service/dependencyTree"
	"github.com/t-kuni/wgslbindgen/domain/service/importResolver"
	"github.com/t-kuni/wgslbindgen/domain/service/sourceRegistry"
)

type DepsGraphCommand struct {
	CobraCommand *cobra.Command
}

func NewDepsGraphCommand(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	sourceRegistryService *sourceRegistry.SourceRegistryService,
	dependencyTreeService *dependencyTree.DependencyTreeService,
	depsGraphRepository depsGraph.Repository,
) *DepsGraphCommand {
	cmd := &cobra.Command{
		Use:   "deps-graph",
		Short: "Generate dependency graph",
		Long:  `Resolve every configured entry point and write the shader import graph as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepsGraph(configFindService, configRepository, sourceRegistryService, dependencyTreeService, depsGraphRepository)
		},
	}

	return &DepsGraphCommand{
		CobraCommand: cmd,
	}
}

func runDepsGraph(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	sourceRegistryService *sourceRegistry.SourceRegistryService,
	dependencyTreeService *dependencyTree.DependencyTreeService,
	depsGraphRepository depsGraph.Repository,
) error {
	configPath, err := configFindService.FindConfig()
	if err != nil {
		return err
	}

	cfg, err := configRepository.Read(configPath)
	if err != nil {
		return eris.Wrap(err, "failed to read config file")
	}
	rootDir := configFindService.GetProjectRoot(configPath)

	if len(cfg.EntryPoints) == 0 {
		return eris.New("no entry-points configured")
	}

	roots := importResolver.RootsFromConfig(rootDir, cfg)
	entryPaths := make([]string, 0, len(cfg.EntryPoints))
	for _, entry := range cfg.EntryPoints {
		entryPaths = append(entryPaths, filepath.Join(rootDir, entry))
	}

	sourceRegistryService.Reset()

	tree, err := dependencyTreeService.Build(entryPaths, roots)
	if err != nil {
		return eris.Wrap(err, "failed to build dependency tree")
	}

	graph := make(depsGraph.DepsGraph)
	tree.Walk(func(node *dependencyTree.Node) {
		dependent := depsGraph.Dependent(node.File.ModulePath)
		for _, imported := range node.Imports {
			dependency := depsGraph.Dependency(imported)
			graph[dependency] = append(graph[dependency], dependent)
		}
	})

	outputPath := filepath.Join(rootDir, ".wgslbindgen", "deps-graph.json")
	err = os.MkdirAll(filepath.Dir(outputPath), 0755)
	if err != nil {
		return err
	}

	err = depsGraphRepository.Write(outputPath, graph)
	if err != nil {
		return err
	}

	fmt.Printf("Dependency graph has been saved to %s\n", outputPath)
	return nil
}
