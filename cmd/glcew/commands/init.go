package commands

import (
	"fmt"
	"os"
)

// Init implements 'glcew init': write a default glcew.toml.
type Init struct {
	Config string `short:"c" long:"config" default:"glcew.toml" description:"Configuration file to create"`
	Force  bool   `short:"f" long:"force" description:"Overwrite an existing file"`
}

func (c *Init) Execute(args []string) error {
	if _, err := os.Stat(c.Config); err == nil && !c.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", c.Config)
	}
	if err := SaveConfig(c.Config, DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(Stdout, "✓ Created %s\n", c.Config)
	return nil
}
