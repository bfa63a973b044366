package generateCommand

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
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
	fileRepo "github.com/t-kuni/wgslbindgen/infrastructure/repository/file"
	ksuidInfra "github.com/t-kuni/wgslbindgen/infrastructure/system/ksuid"
	timerInfra "github.com/t-kuni/wgslbindgen/infrastructure/system/timer"
	"github.com/t-kuni/wgslbindgen/testUtil"
)

func TestGenerateCommand(t *testing.T) {
	callCommand := func(
		args []string,
	) error {
		fileRepository := fileRepo.NewFileRepository()
		configFindSvc := configFindService.NewConfigFindService(fileRepository)
		sourceRegistrySvc := sourceRegistry.NewSourceRegistryService(fileRepository)
		dependencyTreeSvc := dependencyTree.NewDependencyTreeService(
			sourceRegistrySvc,
			importResolver.NewImportResolverService(fileRepository),
		)
		generateSvc := generate.NewGenerateService(
			configFindSvc,
			configRepo.NewConfigRepository(),
			fileRepository,
			sourceRegistrySvc,
			dependencyTreeSvc,
			fingerprint.NewFingerprintService("test"),
			composeDriver.NewComposeDriverService(nagaComposer.NewFactory()),
			bindGroupValidate.NewBindGroupValidateService(),
			goEmitter.NewGoEmitter(),
			stdoutNotify.NewStdoutNotifier(),
			buildLogRepo.NewRepository(),
			timerInfra.NewTimer(),
			ksuidInfra.NewKsuidGenerator(),
			"test",
		)

		// コマンドの実行
		cmd := NewGenerateCommand(generateSvc)
		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(cmd.CobraCommand)
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	t.Run("バインディングが生成されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("wgslbindgen.yml", []byte(`entry-points:
  - shaders/main.wgsl
workspace-root: shaders
output: gen/shaders.go
package: shaders
`))
		space.WriteFile("shaders/main.wgsl", []byte(`#import lib::math

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    let v = double(0.5);
    return vec4<f32>(v, v, v, 1.0);
}
`))
		space.WriteFile("shaders/lib/math.wgsl", []byte(`fn double(x: f32) -> f32 {
    return x * 2.0;
}
`))

		err := callCommand([]string{"generate"})
		assert.NoError(t, err)

		space.AssertFile("gen/shaders.go", func(actual []byte) {
			content := string(actual)
			assert.Contains(t, content, generate.SourceHashMarker)
			assert.Contains(t, content, "const MainSource = `")
			assert.Contains(t, content, `const MainEntryFsMain = "fs_main"`)
		})
	})

	t.Run("forceフラグ付きでも生成されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("wgslbindgen.yml", []byte(`entry-points:
  - shaders/main.wgsl
workspace-root: shaders
output: gen/shaders.go
package: shaders
`))
		space.WriteFile("shaders/main.wgsl", []byte(`@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`))

		err := callCommand([]string{"generate", "--force"})
		assert.NoError(t, err)

		space.AssertExistPath("gen/shaders.go")
	})

	t.Run("設定ファイルが無い場合はエラーになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		err := callCommand([]string{"generate"})
		assert.Error(t, err)
	})
}
