package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/agiangrant/glcew"
	"github.com/agiangrant/glcew/atexit"
	"github.com/agiangrant/glcew/internal/dl"
)

// Probe implements 'glcew probe': initialize a wrangler and report the result.
type Probe struct {
	Config  string   `short:"c" long:"config" default:"glcew.toml" description:"Configuration file"`
	Paths   []string `short:"l" long:"library" description:"Library name or path to try (repeatable, overrides the config)"`
	Strict  bool     `long:"strict" description:"Abort on the first missing symbol"`
	Verbose bool     `short:"v" long:"verbose" description:"Log library loading to stderr"`
}

var (
	newWrangler  = glcew.New
	runExitHooks = atexit.Run
)

func (c *Probe) Execute(args []string) error {
	config, err := LoadConfig(c.Config)
	if err != nil {
		return err
	}

	candidates := dl.Candidates()
	if len(config.Library.Paths) > 0 {
		candidates = config.Library.Paths
	}
	if len(c.Paths) > 0 {
		candidates = c.Paths
	}

	opts := []glcew.Option{glcew.WithCandidates(candidates...)}
	if c.Strict || config.Resolve.Strict {
		opts = append(opts, glcew.WithPolicy(glcew.Strict))
	}
	if c.Verbose || config.Resolve.Debug {
		opts = append(opts, glcew.WithLogger(log.New(os.Stderr, "glcew: ", log.LstdFlags)))
	}

	w := newWrangler(opts...)
	defer runExitHooks()
	status := w.Init()

	if status != glcew.Success {
		fmt.Fprintf(Stdout, "%s %s (tried %v)\n", colorize(Stdout, ansiRed, "✗"), status, candidates)
		return fmt.Errorf("initialization failed: %s", status)
	}
	fmt.Fprintf(Stdout, "%s %s: loaded %s, %d entry points\n",
		colorize(Stdout, ansiGreen, "✓"), status, w.Library(), w.Symbols())
	return nil
}
