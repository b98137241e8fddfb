package glcew

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/agiangrant/glcew/atexit"
	"github.com/agiangrant/glcew/internal/dl"
)

// EnvLibraryPath names an extra library path tried before the platform
// candidates by the default Wrangler.
const EnvLibraryPath = "GLCEW_GL_PATH"

// EnvDebug turns on logging for the default Wrangler when non-empty.
const EnvDebug = "GLCEW_DEBUG"

// ExitRegistrar accepts the hook that releases the library at exit.
type ExitRegistrar interface {
	Register(fn func()) error
}

// Wrangler owns one library handle and the slots resolved from it.
type Wrangler struct {
	once sync.Once

	opener     dl.Opener
	candidates []string
	exit       ExitRegistrar
	policy     Policy
	bind       Binder
	logger     *log.Logger

	mu      sync.Mutex
	lib     dl.Library
	libName string

	procs  procs
	table  []Symbol
	addrs  []uintptr
	status Status
}

// Option configures a Wrangler.
type Option func(*Wrangler)

// WithOpener sets how candidate libraries are opened.
func WithOpener(o dl.Opener) Option {
	return func(w *Wrangler) { w.opener = o }
}

// WithCandidates replaces the platform's candidate library names.
func WithCandidates(names ...string) Option {
	return func(w *Wrangler) { w.candidates = names }
}

// WithExitRegistrar sets where the release hook is registered.
func WithExitRegistrar(r ExitRegistrar) Option {
	return func(w *Wrangler) { w.exit = r }
}

// WithPolicy sets the missing-symbol policy.
func WithPolicy(p Policy) Option {
	return func(w *Wrangler) { w.policy = p }
}

// WithBinder sets how resolved addresses become Go functions.
func WithBinder(b Binder) Option {
	return func(w *Wrangler) { w.bind = b }
}

// WithLogger enables progress logging.
func WithLogger(l *log.Logger) Option {
	return func(w *Wrangler) { w.logger = l }
}

// New returns a Wrangler that has not been initialized yet.
func New(opts ...Option) *Wrangler {
	w := &Wrangler{
		opener:     dl.System,
		candidates: dl.Candidates(),
		exit:       atexit.Default(),
		policy:     Tolerant,
		bind:       purego.RegisterFunc,
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.table = w.procs.symbols()
	return w
}

// Init loads the library and resolves the symbol table. Only the first
// call does any work; later calls return the first result.
func (w *Wrangler) Init() Status {
	w.once.Do(func() {
		// Cached if strict resolution panics part way through.
		w.status = OpenFailed
		w.status = w.init()
	})
	return w.status
}

func (w *Wrangler) init() Status {
	if err := w.exit.Register(w.release); err != nil {
		w.logger.Printf("registering exit hook: %v", err)
		return AtExitFailed
	}

	lib, name, err := dl.OpenFirst(w.opener, w.candidates)
	if err != nil {
		w.logger.Printf("opening OpenGL library: %v", err)
		return OpenFailed
	}
	w.mu.Lock()
	w.lib, w.libName = lib, name
	w.mu.Unlock()
	w.logger.Printf("loaded %s", name)

	w.addrs = resolve(lib, w.table, w.policy, w.bind)

	missing := 0
	for _, addr := range w.addrs {
		if addr == 0 {
			missing++
		}
	}
	w.logger.Printf("resolved %d of %d symbols", len(w.table)-missing, len(w.table))
	return Success
}

// release closes the library handle. Errors are ignored.
func (w *Wrangler) release() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lib == nil {
		return
	}
	w.lib.Close()
	w.lib = nil
}

// Library returns the name of the library Init opened, or "" if none.
func (w *Wrangler) Library() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.libName
}

// Symbols returns the number of entry points in the resolution table.
func (w *Wrangler) Symbols() int {
	return len(w.table)
}

var std = newDefault()

func newDefault() *Wrangler {
	candidates := dl.Candidates()
	if path := os.Getenv(EnvLibraryPath); path != "" {
		candidates = append([]string{path}, candidates...)
	}
	opts := []Option{WithCandidates(candidates...)}
	if os.Getenv(EnvDebug) != "" {
		opts = append(opts, WithLogger(log.New(os.Stderr, "glcew: ", log.LstdFlags)))
	}
	return New(opts...)
}

// Init initializes the process-wide Wrangler used by the exported
// functions. See Wrangler.Init.
func Init() Status {
	return std.Init()
}

// Default returns the process-wide Wrangler.
func Default() *Wrangler {
	return std
}
