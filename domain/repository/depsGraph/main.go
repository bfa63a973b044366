package depsGraph

// Dependency is the module path of the imported side.
type Dependency string

// Dependent is the module path of the importing side.
type Dependent string

type DepsGraph map[Dependency][]Dependent

type Repository interface {
	Read(path string) (DepsGraph, error)
	Write(path string, graph DepsGraph) error
}
