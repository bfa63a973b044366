package cmd

import (
	"github.com/spf13/cobra"
	"github.com/t-kuni/wgslbindgen/cmd/depsGraphCommand"
	"github.com/t-kuni/wgslbindgen/cmd/generateCommand"
	"github.com/t-kuni/wgslbindgen/cmd/initCommand"
	"github.com/t-kuni/wgslbindgen/cmd/versionCommand"
	"github.com/t-kuni/wgslbindgen/domain/service/bindGroupValidate"
	"github.com/t-kuni/wgslbindgen/domain/service/composeDriver"
	"github.com/t-kuni/wgslbindgen/domain/service/configFindService"
	"github.com/t-kuni/wgslbindgen/domain/service/dependencyTree"
	"github.com/t-kuni/wgslbindgen/domain/service/fingerprint"
	"github.com/t-kuni/wgslbindgen/domain/service/generate"
	"github.com/t-kuni/wgslbindgen/domain/service/importResolver"
	"github.com/t-kuni/wgslbindgen/domain/service/sourceRegistry"
	"github.com/t-kuni/wgslbindgen/infrastructure/external/goEmitter"
	"github.com/t-kuni/wgslbindgen/infrastructure/external/nagaComposer"
	"github.com/t-kuni/wgslbindgen/infrastructure/external/stdoutNotify"
	buildLogRepo "github.com/t-kuni/wgslbindgen/infrastructure/repository/buildLog"
	configRepo "github.com/t-kuni/wgslbindgen/infrastructure/repository/config"
	depsGraphRepo "github.com/t-kuni/wgslbindgen/infrastructure/repository/depsGraph"
	fileRepo "github.com/t-kuni/wgslbindgen/infrastructure/repository/file"
	ksuidInfra "github.com/t-kuni/wgslbindgen/infrastructure/system/ksuid"
	timerInfra "github.com/t-kuni/wgslbindgen/infrastructure/system/timer"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	cmd := &cobra.Command{
		Use:   "wgslbindgen",
		Short: "A tool for generating Go bindings from WGSL shaders",
		Long:  `Wgslbindgen resolves WGSL entry points and their imports, composes each entry into a single shader module and generates Go bindings for it.`,
	}

	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	buildLogRepository := buildLogRepo.NewRepository()
	depsGraphRepository := depsGraphRepo.NewRepository()
	composerFactory := nagaComposer.NewFactory()
	emitterImpl := goEmitter.NewGoEmitter()
	notifier := stdoutNotify.NewStdoutNotifier()
	timerImpl := timerInfra.NewTimer()
	ksuidGenerator := ksuidInfra.NewKsuidGenerator()

	configFindSvc := configFindService.NewConfigFindService(fileRepository)
	sourceRegistrySvc := sourceRegistry.NewSourceRegistryService(fileRepository)
	importResolverSvc := importResolver.NewImportResolverService(fileRepository)
	dependencyTreeSvc := dependencyTree.NewDependencyTreeService(sourceRegistrySvc, importResolverSvc)
	fingerprintSvc := fingerprint.NewFingerprintService(versionCommand.Version)
	composeDriverSvc := composeDriver.NewComposeDriverService(composerFactory)
	bindGroupValidateSvc := bindGroupValidate.NewBindGroupValidateService()
	generateSvc := generate.NewGenerateService(
		configFindSvc,
		configRepository,
		fileRepository,
		sourceRegistrySvc,
		dependencyTreeSvc,
		fingerprintSvc,
		composeDriverSvc,
		bindGroupValidateSvc,
		emitterImpl,
		notifier,
		buildLogRepository,
		timerImpl,
		ksuidGenerator,
		versionCommand.Version,
	)

	cmd.AddCommand(initCommand.NewInitCommand(configRepository).CobraCommand)
	cmd.AddCommand(generateCommand.NewGenerateCommand(generateSvc).CobraCommand)
	cmd.AddCommand(depsGraphCommand.NewDepsGraphCommand(
		configFindSvc,
		configRepository,
		sourceRegistrySvc,
		dependencyTreeSvc,
		depsGraphRepository,
	).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}
