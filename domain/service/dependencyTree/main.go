package dependencyTree

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/wgslbindgen/domain/model/source"
	"github.com/t-kuni/wgslbindgen/domain/service/importResolver"
	"github.com/t-kuni/wgslbindgen/domain/service/sourceRegistry"
)

// DependencyTreeService walks entry points depth-first, resolving and loading
// every import, and produces the full dependency graph of one build
// invocation. The graph is an explicit node table keyed by module path with
// adjacency lists, so shared dependencies are single nodes and cycle
// detection is a visiting-stack check.
type DependencyTreeService struct {
	sourceRegistry *sourceRegistry.SourceRegistryService
	importResolver *importResolver.ImportResolverService
}

func NewDependencyTreeService(
	sourceRegistry *sourceRegistry.SourceRegistryService,
	importResolver *importResolver.ImportResolverService,
) *DependencyTreeService {
	return &DependencyTreeService{
		sourceRegistry: sourceRegistry,
		importResolver: importResolver,
	}
}

// Node is one resolved source file and its direct imports in scan order.
type Node struct {
	File    *source.SourceFile
	Imports []source.ModulePath
}

// DependencyTree is the read-only graph over all files reachable from the
// configured entry points.
type DependencyTree struct {
	nodes   map[source.ModulePath]*Node
	order   []source.ModulePath // discovery order
	entries []source.ModulePath
}

// EntryResult pairs one entry point with its transitive dependencies in
// topological order: every dependency strictly before any module importing
// it, each appearing exactly once.
type EntryResult struct {
	Entry        *source.SourceFile
	Dependencies []*source.SourceFile
}

type CyclicDependencyError struct {
	Cycle []source.ModulePath
}

func (e *CyclicDependencyError) Error() string {
	parts := make([]string, 0, len(e.Cycle))
	for _, mp := range e.Cycle {
		parts = append(parts, string(mp))
	}
	return "cyclic dependency detected: " + strings.Join(parts, " -> ")
}

// Build resolves every entry point and its transitive imports into one tree.
func (s *DependencyTreeService) Build(entryPaths []string, roots importResolver.SearchRoots) (*DependencyTree, error) {
	tree := &DependencyTree{
		nodes: make(map[source.ModulePath]*Node),
	}

	for _, entryPath := range entryPaths {
		modulePath := importResolver.ModulePathFor(entryPath, roots)
		if err := s.walk(tree, modulePath, entryPath, roots, nil); err != nil {
			return nil, err
		}
		tree.entries = append(tree.entries, modulePath)
	}

	return tree, nil
}

func (s *DependencyTreeService) walk(
	tree *DependencyTree,
	modulePath source.ModulePath,
	filePath string,
	roots importResolver.SearchRoots,
	visiting []source.ModulePath,
) error {
	for _, ancestor := range visiting {
		if ancestor == modulePath {
			cycle := append(cycleTail(visiting, modulePath), modulePath)
			return &CyclicDependencyError{Cycle: cycle}
		}
	}
	if _, done := tree.nodes[modulePath]; done {
		return nil
	}

	loaded, err := s.sourceRegistry.Load(modulePath, filePath)
	if err != nil {
		return eris.Wrapf(err, "failed to load module %s", modulePath)
	}

	node := &Node{File: loaded}
	tree.nodes[modulePath] = node
	tree.order = append(tree.order, modulePath)

	for _, ref := range source.ScanImports(loaded.Content) {
		resolved, err := s.importResolver.Resolve(modulePath, ref, roots)
		if err != nil {
			return eris.Wrapf(err, "failed to resolve import in %s", loaded.FilePath)
		}

		node.Imports = append(node.Imports, resolved.ModulePath)

		if err := s.walk(tree, resolved.ModulePath, resolved.FilePath, roots, append(visiting, modulePath)); err != nil {
			return err
		}
	}

	return nil
}

// cycleTail trims the visiting stack to the part participating in the cycle.
func cycleTail(visiting []source.ModulePath, start source.ModulePath) []source.ModulePath {
	for i, mp := range visiting {
		if mp == start {
			return append([]source.ModulePath{}, visiting[i:]...)
		}
	}
	return append([]source.ModulePath{}, visiting...)
}

// AllFiles returns every resolved file in canonical module-path order, for
// fingerprinting and change tracking.
func (t *DependencyTree) AllFiles() []*source.SourceFile {
	files := make([]*source.SourceFile, 0, len(t.order))
	for _, mp := range t.order {
		files = append(files, t.nodes[mp].File)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModulePath < files[j].ModulePath
	})
	return files
}

// EntryResults computes, per entry point, the topological order of its
// reachable subgraph. Post-order depth-first traversal emits dependencies
// before their importers, and following adjacency lists in scan order keeps
// ties among independent dependencies in first-discovered order, which the
// fingerprint and composition stability depend on.
func (t *DependencyTree) EntryResults() []EntryResult {
	results := make([]EntryResult, 0, len(t.entries))

	for _, entry := range t.entries {
		visited := make(map[source.ModulePath]bool)
		var ordered []*source.SourceFile

		var postOrder func(mp source.ModulePath)
		postOrder = func(mp source.ModulePath) {
			visited[mp] = true
			for _, imported := range t.nodes[mp].Imports {
				if !visited[imported] {
					postOrder(imported)
				}
			}
			ordered = append(ordered, t.nodes[mp].File)
		}
		postOrder(entry)

		results = append(results, EntryResult{
			Entry:        t.nodes[entry].File,
			Dependencies: ordered[:len(ordered)-1],
		})
	}

	return results
}

// Walk visits every node in discovery order.
func (t *DependencyTree) Walk(fn func(node *Node)) {
	for _, mp := range t.order {
		fn(t.nodes[mp])
	}
}
