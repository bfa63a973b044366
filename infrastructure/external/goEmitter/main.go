package goEmitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t-kuni/wgslbindgen/domain/external/emitter"
)

// GoEmitter renders composed entry points as a single Go source file: the
// composed WGSL source, entry-point name constants and the bind group /
// binding table per entry. Pipeline-layout helpers are left to the consumer.
type GoEmitter struct{}

func NewGoEmitter() *GoEmitter {
	return &GoEmitter{}
}

func (e *GoEmitter) Emit(pkg string, entries []emitter.EntryModule) (string, error) {
	if pkg == "" {
		pkg = "shaders"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	if len(entries) > 0 {
		b.WriteString("// Binding locates one resource slot consumed by a composed shader module.\n")
		b.WriteString("type Binding struct {\n")
		b.WriteString("\tGroup   uint32\n")
		b.WriteString("\tBinding uint32\n")
		b.WriteString("\tName    string\n")
		b.WriteString("}\n\n")
	}

	for _, entry := range entries {
		fmt.Fprintf(&b, "// %s composed from %s with %d dependencies.\n",
			entry.Name, entry.Source.FilePath, len(entry.Dependencies))
		fmt.Fprintf(&b, "const %sSource = %s\n\n", entry.Name, quoteSource(entry.Composed.Source))

		for _, ep := range entry.Composed.IR.EntryPoints {
			fmt.Fprintf(&b, "const %sEntry%s = %q\n", entry.Name, emitter.SanitizeName(ep.Name), ep.Name)
		}
		if len(entry.Composed.IR.EntryPoints) > 0 {
			b.WriteString("\n")
		}

		bindings := collectBindings(entry)
		if len(bindings) > 0 {
			fmt.Fprintf(&b, "var %sBindings = []Binding{\n", entry.Name)
			for _, row := range bindings {
				fmt.Fprintf(&b, "\t{Group: %d, Binding: %d, Name: %q},\n", row.group, row.binding, row.name)
			}
			b.WriteString("}\n\n")
		}
	}

	return b.String(), nil
}

type bindingRow struct {
	group   uint32
	binding uint32
	name    string
}

func collectBindings(entry emitter.EntryModule) []bindingRow {
	var rows []bindingRow
	for _, global := range entry.Composed.IR.GlobalVariables {
		if global.Binding == nil {
			continue
		}
		rows = append(rows, bindingRow{
			group:   global.Binding.Group,
			binding: global.Binding.Binding,
			name:    global.Name,
		})
	}
	return rows
}

// quoteSource prefers a raw string literal and falls back to an interpreted
// one when the source itself contains a backquote.
func quoteSource(src string) string {
	if !strings.Contains(src, "`") {
		return "`\n" + src + "`"
	}
	return strconv.Quote(src)
}
