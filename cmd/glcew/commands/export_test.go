package commands

import (
	"bytes"
	"testing"

	"github.com/agiangrant/glcew"
)

func mockStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	t.Cleanup(func() { Stdout = old })
	return &buf
}

func mockRunExitHooks(t *testing.T, f func()) {
	t.Helper()
	old := runExitHooks
	runExitHooks = f
	t.Cleanup(func() { runExitHooks = old })
}

func mockNewWrangler(t *testing.T, f func(opts ...glcew.Option) *glcew.Wrangler) {
	t.Helper()
	old := newWrangler
	newWrangler = f
	t.Cleanup(func() { newWrangler = old })
}
