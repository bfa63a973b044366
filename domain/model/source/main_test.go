package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/wgslbindgen/domain/model/source"
)

func TestNewModulePath(t *testing.T) {
	assert.Equal(t, source.ModulePath("lib/math"), source.NewModulePath("lib/math.wgsl"))
	assert.Equal(t, source.ModulePath("triangle"), source.NewModulePath("triangle.wgsl"))
}

func TestScanImports(t *testing.T) {
	t.Run("モジュール形式のimportが抽出されること", func(t *testing.T) {
		content := `
#import lib::math
#import lib::types::{Camera, Light}

fn main() {}
`
		refs := source.ScanImports(content)
		assert.Len(t, refs, 2)
		assert.Equal(t, "lib::math", refs[0].Raw)
		assert.Equal(t, "lib::types", refs[1].Raw)
	})

	t.Run("エイリアス付きimportはモジュール部分のみ抽出されること", func(t *testing.T) {
		refs := source.ScanImports("#import lib::math as math")
		assert.Len(t, refs, 1)
		assert.Equal(t, "lib::math", refs[0].Raw)
	})

	t.Run("importが無い場合は空になること", func(t *testing.T) {
		refs := source.ScanImports("fn main() {}")
		assert.Empty(t, refs)
	})
}

func TestImportRefRelFilePath(t *testing.T) {
	assert.Equal(t, "lib/math.wgsl", source.ImportRef{Raw: "lib::math"}.RelFilePath())
	assert.Equal(t, "lib/math.wgsl", source.ImportRef{Raw: `"lib/math.wgsl"`}.RelFilePath())
	assert.Equal(t, "math.wgsl", source.ImportRef{Raw: "math"}.RelFilePath())
}

func TestScanModuleName(t *testing.T) {
	assert.Equal(t, "lib::math", source.ScanModuleName("#define_import_path lib::math\nfn f() {}"))
	assert.Equal(t, "", source.ScanModuleName("fn f() {}"))
}

func TestStripDirectives(t *testing.T) {
	content := "#define_import_path lib::math\n#import lib::types\nfn f() {}"
	assert.Equal(t, "fn f() {}", source.StripDirectives(content))
}
