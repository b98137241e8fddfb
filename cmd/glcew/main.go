// Command glcew inspects and regenerates the OpenGL entry-point wrangler.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/agiangrant/glcew/cmd/glcew/commands"
)

const version = "1.0.0"

type cmdVersion struct{}

func (cmdVersion) Execute([]string) error {
	fmt.Fprintf(commands.Stdout, "glcew version %s\n", version)
	return nil
}

type options struct {
	Probe    commands.Probe    `command:"probe" description:"Load the OpenGL library and report the result"`
	Generate commands.Generate `command:"generate" description:"Generate gl_generated.go from symbols.toml"`
	Init     commands.Init     `command:"init" description:"Write a default glcew.toml"`
	Version  cmdVersion        `command:"version" description:"Print version information"`
}

func run(args []string) error {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "glcew"

	if _, err := p.ParseArgs(args); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
