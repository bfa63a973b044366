package dependencyTree_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/wgslbindgen/domain/model/source"
	"github.com/t-kuni/wgslbindgen/domain/service/dependencyTree"
	"github.com/t-kuni/wgslbindgen/domain/service/importResolver"
	"github.com/t-kuni/wgslbindgen/domain/service/sourceRegistry"
	fileRepo "github.com/t-kuni/wgslbindgen/infrastructure/repository/file"
	"github.com/t-kuni/wgslbindgen/testUtil"
)

func TestDependencyTreeService(t *testing.T) {
	factory := func() *dependencyTree.DependencyTreeService {
		repo := fileRepo.NewFileRepository()
		return dependencyTree.NewDependencyTreeService(
			sourceRegistry.NewSourceRegistryService(repo),
			importResolver.NewImportResolverService(repo),
		)
	}

	roots := func(dir string) importResolver.SearchRoots {
		return importResolver.SearchRoots{
			WorkspaceRoot: filepath.Join(dir, "shaders"),
		}
	}

	modulePaths := func(files []*source.SourceFile) []source.ModulePath {
		paths := make([]source.ModulePath, 0, len(files))
		for _, f := range files {
			paths = append(paths, f.ModulePath)
		}
		return paths
	}

	t.Run("依存が依存元より前に並ぶトポロジカル順が得られること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("shaders/main.wgsl", []byte("#import a\n#import b\nfn main_fn() {}"))
		space.WriteFile("shaders/a.wgsl", []byte("#import c\nfn a_fn() {}"))
		space.WriteFile("shaders/b.wgsl", []byte("#import c\nfn b_fn() {}"))
		space.WriteFile("shaders/c.wgsl", []byte("fn c_fn() {}"))

		tree, err := factory().Build([]string{filepath.Join(space.Dir, "shaders/main.wgsl")}, roots(space.Dir))
		assert.NoError(t, err)

		results := tree.EntryResults()
		assert.Len(t, results, 1)
		assert.Equal(t, source.ModulePath("main"), results[0].Entry.ModulePath)

		// ダイヤモンド依存のcは一度だけ現れ、a/bより前に並ぶ
		assert.Equal(t,
			[]source.ModulePath{"c", "a", "b"},
			modulePaths(results[0].Dependencies),
		)
	})

	t.Run("全ファイル一覧が正規化されたモジュールパス順で得られること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("shaders/main.wgsl", []byte("#import lib::z\n#import lib::a\nfn f() {}"))
		space.WriteFile("shaders/lib/z.wgsl", []byte("fn z_fn() {}"))
		space.WriteFile("shaders/lib/a.wgsl", []byte("fn a_fn() {}"))

		tree, err := factory().Build([]string{filepath.Join(space.Dir, "shaders/main.wgsl")}, roots(space.Dir))
		assert.NoError(t, err)

		assert.Equal(t,
			[]source.ModulePath{"lib/a", "lib/z", "main"},
			modulePaths(tree.AllFiles()),
		)
	})

	t.Run("複数エントリポイントで共有される依存は一度だけ読み込まれること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("shaders/one.wgsl", []byte("#import shared\nfn one_fn() {}"))
		space.WriteFile("shaders/two.wgsl", []byte("#import shared\nfn two_fn() {}"))
		space.WriteFile("shaders/shared.wgsl", []byte("fn shared_fn() {}"))

		tree, err := factory().Build([]string{
			filepath.Join(space.Dir, "shaders/one.wgsl"),
			filepath.Join(space.Dir, "shaders/two.wgsl"),
		}, roots(space.Dir))
		assert.NoError(t, err)

		results := tree.EntryResults()
		assert.Len(t, results, 2)

		// 同一ノードが両エントリの依存として共有される
		assert.Same(t, results[0].Dependencies[0], results[1].Dependencies[0])
		assert.Len(t, tree.AllFiles(), 3)
	})

	t.Run("相互importはCyclicDependencyErrorになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("shaders/x.wgsl", []byte("#import y\nfn x_fn() {}"))
		space.WriteFile("shaders/y.wgsl", []byte("#import x\nfn y_fn() {}"))

		_, err := factory().Build([]string{filepath.Join(space.Dir, "shaders/x.wgsl")}, roots(space.Dir))

		var cyclic *dependencyTree.CyclicDependencyError
		assert.True(t, errors.As(err, &cyclic))
		assert.Contains(t, cyclic.Cycle, source.ModulePath("x"))
		assert.Contains(t, cyclic.Cycle, source.ModulePath("y"))
	})

	t.Run("自己importもCyclicDependencyErrorになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("shaders/s.wgsl", []byte("#import s\nfn s_fn() {}"))

		_, err := factory().Build([]string{filepath.Join(space.Dir, "shaders/s.wgsl")}, roots(space.Dir))

		var cyclic *dependencyTree.CyclicDependencyError
		assert.True(t, errors.As(err, &cyclic))
	})

	t.Run("依存を持たないエントリポイントの依存リストは空になること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("shaders/solo.wgsl", []byte("fn solo_fn() {}"))

		tree, err := factory().Build([]string{filepath.Join(space.Dir, "shaders/solo.wgsl")}, roots(space.Dir))
		assert.NoError(t, err)

		results := tree.EntryResults()
		assert.Len(t, results, 1)
		assert.Empty(t, results[0].Dependencies)
	})

	t.Run("解決できないimportはエラーになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("shaders/broken.wgsl", []byte("#import nowhere\nfn f() {}"))

		_, err := factory().Build([]string{filepath.Join(space.Dir, "shaders/broken.wgsl")}, roots(space.Dir))

		var unresolved *importResolver.UnresolvedImportError
		assert.True(t, errors.As(err, &unresolved))
	})
}
