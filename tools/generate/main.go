// Command generate writes gl_generated.go from symbols.toml.
//
// Each [[function]] entry becomes a slot in the procs struct, an entry in
// the resolution table and, for kind "wrapper", an exported forwarding
// function. Kind "dynamic" entries are exposed as exported function
// variables instead.
package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
)

// SymbolFile is the layout of symbols.toml.
type SymbolFile struct {
	Package   string     `toml:"package"`
	Functions []Function `toml:"function"`
}

// Function describes one library entry point.
type Function struct {
	Name    string   `toml:"name"`
	Kind    string   `toml:"kind"`
	Returns string   `toml:"returns"`
	Params  []string `toml:"params"`
}

// Param is a parsed "name Type" pair.
type Param struct {
	Name string
	Type string
}

const (
	kindWrapper = "wrapper"
	kindDynamic = "dynamic"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	input, output := "symbols.toml", "gl_generated.go"
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	var file SymbolFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", input, err)
	}

	code, err := generateGoCode(file)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, code, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Printf("✓ Generated %s (%d functions)\n", output, len(file.Functions))
	return nil
}

// generateGoCode renders the slots, table and wrappers for file and
// returns gofmt-formatted source.
func generateGoCode(file SymbolFile) ([]byte, error) {
	if file.Package == "" {
		file.Package = "glcew"
	}

	params := make([][]Param, len(file.Functions))
	seen := make(map[string]bool)
	usesUnsafe := false
	for i, fn := range file.Functions {
		if fn.Name == "" {
			return nil, fmt.Errorf("function #%d has no name", i+1)
		}
		if seen[fn.Name] {
			return nil, fmt.Errorf("function %s listed twice", fn.Name)
		}
		seen[fn.Name] = true
		switch fn.Kind {
		case kindWrapper, kindDynamic:
		case "":
			file.Functions[i].Kind = kindWrapper
		default:
			return nil, fmt.Errorf("function %s: unknown kind %q", fn.Name, fn.Kind)
		}

		ps, err := parseParams(fn.Params)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", fn.Name, err)
		}
		params[i] = ps
		if strings.Contains(fn.Returns, "unsafe.") {
			usesUnsafe = true
		}
		for _, p := range ps {
			if strings.Contains(p.Type, "unsafe.") {
				usesUnsafe = true
			}
		}
	}

	var b strings.Builder

	b.WriteString("// Code generated by tools/generate from symbols.toml - DO NOT EDIT.\n\n")
	b.WriteString(fmt.Sprintf("package %s\n\n", file.Package))
	if usesUnsafe {
		b.WriteString("import \"unsafe\"\n\n")
	}

	// Slots for wrapped functions live in procs so every Wrangler owns its own set.
	b.WriteString("// procs holds one slot per wrapped entry point, filled in by Init.\n")
	b.WriteString("type procs struct {\n")
	for i, fn := range file.Functions {
		if fn.Kind != kindWrapper {
			continue
		}
		b.WriteString(fmt.Sprintf("\t%s %s\n", fn.Name, funcType(params[i], fn.Returns)))
	}
	b.WriteString("}\n\n")

	var dynamic []int
	for i, fn := range file.Functions {
		if fn.Kind == kindDynamic {
			dynamic = append(dynamic, i)
		}
	}
	if len(dynamic) > 0 {
		b.WriteString("// Entry points exposed as function variables.\n")
		b.WriteString("var (\n")
		for _, i := range dynamic {
			fn := file.Functions[i]
			b.WriteString(fmt.Sprintf("\t%s %s\n", exportedName(fn.Name), funcType(params[i], fn.Returns)))
		}
		b.WriteString(")\n\n")
	}

	b.WriteString("// symbols lists every entry point in resolution order.\n")
	b.WriteString("func (p *procs) symbols() []Symbol {\n")
	b.WriteString("\treturn []Symbol{\n")
	for _, fn := range file.Functions {
		if fn.Kind == kindDynamic {
			b.WriteString(fmt.Sprintf("\t\t{Name: %q, Kind: KindDynamic, Slot: &%s},\n", fn.Name, exportedName(fn.Name)))
			continue
		}
		b.WriteString(fmt.Sprintf("\t\t{Name: %q, Kind: KindWrapper, Slot: &p.%s},\n", fn.Name, fn.Name))
	}
	b.WriteString("\t}\n")
	b.WriteString("}\n")

	for i, fn := range file.Functions {
		if fn.Kind == kindDynamic {
			continue
		}
		name := exportedName(fn.Name)
		b.WriteString(fmt.Sprintf("\n// %s forwards to %s.\n", name, fn.Name))
		b.WriteString(fmt.Sprintf("func %s(%s)", name, paramList(params[i])))
		if fn.Returns != "" {
			b.WriteString(" " + fn.Returns)
		}
		b.WriteString(" {\n\t")
		if fn.Returns != "" {
			b.WriteString("return ")
		}
		b.WriteString(fmt.Sprintf("std.procs.%s(%s)\n", fn.Name, argList(params[i])))
		b.WriteString("}\n")
	}

	src := []byte(b.String())
	formatted, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return formatted, nil
}

// parseParams splits "name Type" strings.
func parseParams(raw []string) ([]Param, error) {
	params := make([]Param, 0, len(raw))
	for _, r := range raw {
		fields := strings.Fields(r)
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad parameter %q, want \"name Type\"", r)
		}
		params = append(params, Param{Name: fields[0], Type: fields[1]})
	}
	return params, nil
}

// paramList renders params, collapsing runs that share a type: "x, y Int".
func paramList(params []Param) string {
	var parts []string
	for i, p := range params {
		if i+1 < len(params) && params[i+1].Type == p.Type {
			parts = append(parts, p.Name)
			continue
		}
		parts = append(parts, p.Name+" "+p.Type)
	}
	return strings.Join(parts, ", ")
}

func argList(params []Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func funcType(params []Param, returns string) string {
	t := "func(" + paramList(params) + ")"
	if returns != "" {
		t += " " + returns
	}
	return t
}

// exportedName drops the "gl" prefix: glClearColor -> ClearColor,
// glXSwapBuffers -> XSwapBuffers.
func exportedName(name string) string {
	trimmed := strings.TrimPrefix(name, "gl")
	if trimmed == "" {
		trimmed = name
	}
	r := []rune(trimmed)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
