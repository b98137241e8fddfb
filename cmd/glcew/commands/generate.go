package commands

import (
	"fmt"
	"os"
	"os/exec"
)

// Generate implements 'glcew generate'
// It wraps the tools/generate program
type Generate struct {
	Config  string `short:"c" long:"config" default:"glcew.toml" description:"Configuration file"`
	Symbols string `long:"symbols" description:"Symbol table (overrides the config)"`
	Output  string `short:"o" long:"output" description:"Generated Go file (overrides the config)"`
}

var execCommand = exec.Command

func (c *Generate) Execute(args []string) error {
	config, err := LoadConfig(c.Config)
	if err != nil {
		return err
	}
	symbols, output := config.Generate.Symbols, config.Generate.Output
	if c.Symbols != "" {
		symbols = c.Symbols
	}
	if c.Output != "" {
		output = c.Output
	}

	if _, err := os.Stat(symbols); err != nil {
		return fmt.Errorf("symbol table not found: %w", err)
	}

	// Prefer the generator checked out next to the symbol table, fall back
	// to the module's published one.
	generator := "github.com/agiangrant/glcew/tools/generate"
	if _, err := os.Stat("tools/generate/main.go"); err == nil {
		generator = "./tools/generate"
	}

	cmd := execCommand("go", "run", generator, symbols, output)
	cmd.Stdout = Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run generator: %w", err)
	}
	return nil
}
