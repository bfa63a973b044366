package nagaComposer

import (
	"errors"
	"strings"

	"github.com/gogpu/naga/wgsl"
	"github.com/t-kuni/wgslbindgen/domain/external/composer"
	"github.com/t-kuni/wgslbindgen/domain/model/source"
)

// Factory creates one naga-backed composer per entry point.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) NewComposer() composer.Composer {
	return &nagaComposer{
		registered: make(map[string]bool),
	}
}

// nagaComposer composes WGSL modules by splicing registered dependency
// bodies, in registration order, ahead of the entry body and handing the
// combined source to the naga WGSL front. Composition directives (#import,
// #define_import_path) are stripped before parsing; the registration order
// guarantees every symbol is declared before its first use.
type nagaComposer struct {
	registered map[string]bool
	modules    []registeredModule
}

type registeredModule struct {
	identity string
	body     string
}

func (c *nagaComposer) AddComposableModule(desc composer.ModuleDescriptor) error {
	if c.registered[desc.Identity] {
		return &composer.CompositionError{
			Identity:   desc.Identity,
			Diagnostic: "module registered twice under the same identity",
		}
	}

	body := source.StripDirectives(desc.Content)

	// Surface syntax errors at registration time so the diagnostic points at
	// the offending module instead of the combined source.
	if err := checkSyntax(body); err != nil {
		return diagnosticError(desc.Identity, err)
	}

	c.registered[desc.Identity] = true
	if desc.AsName != "" {
		c.registered[desc.AsName] = true
	}
	c.modules = append(c.modules, registeredModule{
		identity: desc.Identity,
		body:     body,
	})

	return nil
}

func (c *nagaComposer) MakeModule(desc composer.ModuleDescriptor) (*composer.ComposedModule, error) {
	var b strings.Builder
	for _, m := range c.modules {
		b.WriteString(m.body)
		b.WriteString("\n")
	}
	b.WriteString(source.StripDirectives(desc.Content))
	combined := b.String()

	tokens, err := wgsl.NewLexer(combined).Tokenize()
	if err != nil {
		return nil, diagnosticError(desc.Identity, err)
	}

	ast, err := wgsl.NewParser(tokens).Parse()
	if err != nil {
		return nil, diagnosticError(desc.Identity, err)
	}

	module, err := wgsl.LowerWithSource(ast, combined)
	if err != nil {
		return nil, diagnosticError(desc.Identity, err)
	}

	return &composer.ComposedModule{
		IR:     module,
		Source: combined,
	}, nil
}

func checkSyntax(body string) error {
	tokens, err := wgsl.NewLexer(body).Tokenize()
	if err != nil {
		return err
	}
	_, err = wgsl.NewParser(tokens).Parse()
	return err
}

func diagnosticError(identity string, err error) error {
	return &composer.CompositionError{
		Identity:   identity,
		Diagnostic: renderDiagnostic(err),
		Err:        err,
	}
}

// renderDiagnostic prefers naga's source-context formatting when available.
func renderDiagnostic(err error) string {
	var sourceErrs wgsl.SourceErrors
	if errors.As(err, &sourceErrs) {
		return sourceErrs.FormatAll()
	}
	var sourceErr *wgsl.SourceError
	if errors.As(err, &sourceErr) {
		return sourceErr.FormatWithContext()
	}
	return err.Error()
}
