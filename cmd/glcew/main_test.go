package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"

	"github.com/agiangrant/glcew/cmd/glcew/commands"
)

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	old := commands.Stdout
	commands.Stdout = &buf
	defer func() { commands.Stdout = old }()

	if err := run([]string{"version"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), version) {
		t.Errorf("output %q does not contain %s", buf.String(), version)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	err := run([]string{"frobnicate"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrUnknownCommand {
		t.Errorf("err = %v, want ErrUnknownCommand", err)
	}
}

func TestRunHelp(t *testing.T) {
	err := run([]string{"--help"})
	if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
		t.Errorf("err = %v, want ErrHelp", err)
	}
}
