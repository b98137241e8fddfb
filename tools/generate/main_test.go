package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestGenerateGoCode(t *testing.T) {
	file := SymbolFile{
		Package: "glcew",
		Functions: []Function{
			{Name: "glClearColor", Kind: "wrapper", Params: []string{"red Clampf", "green Clampf", "blue Clampf", "alpha Clampf"}},
			{Name: "glIsEnabled", Returns: "Boolean", Params: []string{"cap Enum"}},
			{Name: "glReadPixels", Kind: "wrapper", Params: []string{"x Int", "y Int", "width Sizei", "height Sizei", "format Enum", "xtype Enum", "pixels unsafe.Pointer"}},
			{Name: "glXGetProcAddress", Kind: "dynamic", Returns: "ExtFuncPtr", Params: []string{"procName *Ubyte"}},
		},
	}

	code, err := generateGoCode(file)
	if err != nil {
		t.Fatalf("generateGoCode: %v", err)
	}
	src := string(code)

	wants := []string{
		"// Code generated by tools/generate from symbols.toml - DO NOT EDIT.",
		"package glcew",
		`import "unsafe"`,
		"glClearColor func(red, green, blue, alpha Clampf)",
		"func ClearColor(red, green, blue, alpha Clampf) {\n\tstd.procs.glClearColor(red, green, blue, alpha)\n}",
		"func IsEnabled(cap Enum) Boolean {\n\treturn std.procs.glIsEnabled(cap)\n}",
		"func ReadPixels(x, y Int, width, height Sizei, format, xtype Enum, pixels unsafe.Pointer) {",
		`{Name: "glIsEnabled", Kind: KindWrapper, Slot: &p.glIsEnabled},`,
		`{Name: "glXGetProcAddress", Kind: KindDynamic, Slot: &XGetProcAddress},`,
		"XGetProcAddress func(procName *Ubyte) ExtFuncPtr",
	}
	for _, want := range wants {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing %q\n%s", want, src)
		}
	}
	if strings.Contains(src, "func XGetProcAddress(") {
		t.Error("dynamic entry got a forwarding wrapper")
	}
}

func TestGenerateGoCodeWithoutUnsafe(t *testing.T) {
	file := SymbolFile{Functions: []Function{{Name: "glFlush"}}}

	code, err := generateGoCode(file)
	if err != nil {
		t.Fatalf("generateGoCode: %v", err)
	}
	if strings.Contains(string(code), "unsafe") {
		t.Errorf("unexpected unsafe import:\n%s", code)
	}
	if !strings.Contains(string(code), "func Flush() {") {
		t.Errorf("missing Flush wrapper:\n%s", code)
	}
}

func TestGenerateGoCodeErrors(t *testing.T) {
	tests := []struct {
		name string
		fns  []Function
	}{
		{"missing name", []Function{{Kind: "wrapper"}}},
		{"duplicate", []Function{{Name: "glFlush"}, {Name: "glFlush"}}},
		{"unknown kind", []Function{{Name: "glFlush", Kind: "getprocaddr"}}},
		{"bad parameter", []Function{{Name: "glClear", Params: []string{"Bitfield"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := generateGoCode(SymbolFile{Functions: tt.fns}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExportedName(t *testing.T) {
	tests := map[string]string{
		"glClearColor":         "ClearColor",
		"glXSwapBuffers":       "XSwapBuffers",
		"glXGetProcAddressARB": "XGetProcAddressARB",
		"gl":                   "Gl",
	}
	for in, want := range tests {
		if got := exportedName(in); got != want {
			t.Errorf("exportedName(%q) = %q, want %q", in, got, want)
		}
	}
}

// The checked-in symbols.toml must describe every wrapped entry point.
func TestRepositorySymbols(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "symbols.toml"))
	if err != nil {
		t.Fatalf("reading symbols.toml: %v", err)
	}
	var file SymbolFile
	if err := toml.Unmarshal(data, &file); err != nil {
		t.Fatalf("parsing symbols.toml: %v", err)
	}
	if len(file.Functions) != 44 {
		t.Errorf("symbols.toml lists %d functions, want 44", len(file.Functions))
	}

	code, err := generateGoCode(file)
	if err != nil {
		t.Fatalf("generateGoCode: %v", err)
	}
	checkedIn, err := os.ReadFile(filepath.Join("..", "..", "gl_generated.go"))
	if err != nil {
		t.Fatalf("reading gl_generated.go: %v", err)
	}
	if string(code) != string(checkedIn) {
		t.Error("gl_generated.go is stale; run go generate")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "symbols.toml")
	output := filepath.Join(dir, "out.go")
	content := "package = \"glcew\"\n\n[[function]]\nname = \"glFinish\"\nkind = \"wrapper\"\n"
	if err := os.WriteFile(input, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run([]string{input, output}); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "func Finish() {") {
		t.Errorf("output missing Finish wrapper:\n%s", data)
	}
}
