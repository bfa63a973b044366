//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package composer

import "github.com/gogpu/naga/ir"

// Composer abstracts the shader-composition capability. Dependencies are
// registered first, strictly before any module that imports them, then the
// entry source is submitted to produce the final module.
type Composer interface {
	// AddComposableModule registers a dependency under its identity so later
	// registrations and the final submission can refer to it.
	AddComposableModule(desc ModuleDescriptor) error

	// MakeModule submits the entry source and returns the composed module.
	MakeModule(desc ModuleDescriptor) (*ComposedModule, error)
}

// Factory creates one Composer per entry point so a failed entry cannot leak
// registrations into the next one.
type Factory interface {
	NewComposer() Composer
}

// ModuleDescriptor carries one registration or submission.
type ModuleDescriptor struct {
	Content  string
	Identity string // resolved module identity (on-disk path)
	AsName   string // optional declared module name
}

// ComposedModule is the intermediate representation produced for one entry
// point, together with the fully composed source it was built from.
type ComposedModule struct {
	IR     *ir.Module
	Source string
}

// CompositionError wraps a failure reported by the composition capability
// with a rendered diagnostic.
type CompositionError struct {
	Identity   string
	Diagnostic string
	Err        error
}

func (e *CompositionError) Error() string {
	return "composition failed for " + e.Identity + ": " + e.Diagnostic
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}
