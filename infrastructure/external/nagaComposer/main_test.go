package nagaComposer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/wgslbindgen/domain/external/composer"
	"github.com/t-kuni/wgslbindgen/infrastructure/external/nagaComposer"
)

const mathModule = `#define_import_path lib::math
fn double(x: f32) -> f32 {
    return x * 2.0;
}
`

const mainModule = `#import lib::math

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    let v = double(0.25);
    return vec4<f32>(v, v, v, 1.0);
}
`

func TestNagaComposer(t *testing.T) {
	factory := nagaComposer.NewFactory()

	t.Run("依存モジュールの宣言をエントリから参照できること", func(t *testing.T) {
		testee := factory.NewComposer()

		err := testee.AddComposableModule(composer.ModuleDescriptor{
			Content:  mathModule,
			Identity: "shaders/lib/math.wgsl",
			AsName:   "lib::math",
		})
		assert.NoError(t, err)

		composed, err := testee.MakeModule(composer.ModuleDescriptor{
			Content:  mainModule,
			Identity: "shaders/main.wgsl",
		})
		assert.NoError(t, err)

		assert.Len(t, composed.IR.EntryPoints, 1)
		assert.Equal(t, "fs_main", composed.IR.EntryPoints[0].Name)

		// 合成後のソースには指令行が残らない
		assert.Contains(t, composed.Source, "fn double")
		assert.NotContains(t, composed.Source, "#import")
		assert.NotContains(t, composed.Source, "#define_import_path")
	})

	t.Run("バインディング付きグローバル変数がIRに現れること", func(t *testing.T) {
		testee := factory.NewComposer()

		composed, err := testee.MakeModule(composer.ModuleDescriptor{
			Content: `struct Params {
    color: vec4<f32>,
}

@group(0) @binding(0) var<uniform> params: Params;

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return params.color;
}
`,
			Identity: "shaders/params.wgsl",
		})
		assert.NoError(t, err)

		var found bool
		for _, global := range composed.IR.GlobalVariables {
			if global.Name == "params" && global.Binding != nil {
				found = true
				assert.Equal(t, uint32(0), global.Binding.Group)
				assert.Equal(t, uint32(0), global.Binding.Binding)
			}
		}
		assert.True(t, found)
	})

	t.Run("構文エラーのある依存は登録時点でCompositionErrorになること", func(t *testing.T) {
		testee := factory.NewComposer()

		err := testee.AddComposableModule(composer.ModuleDescriptor{
			Content:  "fn broken( {",
			Identity: "shaders/broken.wgsl",
		})

		var compErr *composer.CompositionError
		assert.True(t, errors.As(err, &compErr))
		assert.Equal(t, "shaders/broken.wgsl", compErr.Identity)
		assert.NotEmpty(t, compErr.Diagnostic)
	})

	t.Run("同一アイデンティティの二重登録はCompositionErrorになること", func(t *testing.T) {
		testee := factory.NewComposer()

		desc := composer.ModuleDescriptor{
			Content:  mathModule,
			Identity: "shaders/lib/math.wgsl",
		}

		assert.NoError(t, testee.AddComposableModule(desc))

		err := testee.AddComposableModule(desc)

		var compErr *composer.CompositionError
		assert.True(t, errors.As(err, &compErr))
		assert.Equal(t, "shaders/lib/math.wgsl", compErr.Identity)
	})

	t.Run("エントリの構文エラーはCompositionErrorになること", func(t *testing.T) {
		testee := factory.NewComposer()

		_, err := testee.MakeModule(composer.ModuleDescriptor{
			Content:  "@fragment fn fs_main( {",
			Identity: "shaders/main.wgsl",
		})

		var compErr *composer.CompositionError
		assert.True(t, errors.As(err, &compErr))
		assert.Equal(t, "shaders/main.wgsl", compErr.Identity)
	})
}
