package commands

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/agiangrant/glcew"
	"github.com/agiangrant/glcew/atexit"
	"github.com/agiangrant/glcew/internal/dl"
)

type stubLibrary struct {
	closed *int
}

func (l stubLibrary) Lookup(name string) (uintptr, error) {
	return 0, errors.New("undefined symbol: " + name)
}

func (l stubLibrary) Close() error {
	if l.closed != nil {
		*l.closed++
	}
	return nil
}

// probeWith runs Probe against a fake loader that only opens libName.
func probeWith(t *testing.T, libName string, cmd *Probe) ([]string, error) {
	t.Helper()
	return probeWithLibrary(t, libName, stubLibrary{}, cmd)
}

func probeWithLibrary(t *testing.T, libName string, lib stubLibrary, cmd *Probe) ([]string, error) {
	t.Helper()
	var tried []string
	opener := dl.OpenerFunc(func(name string) (dl.Library, error) {
		tried = append(tried, name)
		if name == libName {
			return lib, nil
		}
		return nil, errors.New("not found")
	})
	registry := atexit.New()
	mockRunExitHooks(t, registry.Run)
	mockNewWrangler(t, func(opts ...glcew.Option) *glcew.Wrangler {
		opts = append(opts, glcew.WithOpener(opener), glcew.WithExitRegistrar(registry))
		return glcew.New(opts...)
	})
	if cmd.Config == "" {
		cmd.Config = filepath.Join(t.TempDir(), ConfigFile)
	}
	return tried, cmd.Execute(nil)
}

func TestProbeFound(t *testing.T) {
	out := mockStdout(t)

	tried, err := probeWith(t, "libGL.so.1", &Probe{Paths: []string{"libGL.so", "libGL.so.1"}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := []string{"libGL.so", "libGL.so.1"}; !reflect.DeepEqual(tried, want) {
		t.Errorf("tried %v, want %v", tried, want)
	}
	if !strings.Contains(out.String(), "SUCCESS") || !strings.Contains(out.String(), "libGL.so.1") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestProbeNotFound(t *testing.T) {
	out := mockStdout(t)

	_, err := probeWith(t, "libGL.so.1", &Probe{Paths: []string{"libGL.so.2"}})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(out.String(), "OPEN_FAILED") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestProbeStrictPanics(t *testing.T) {
	mockStdout(t)

	defer func() {
		if recover() == nil {
			t.Error("expected strict resolution to panic on a missing symbol")
		}
	}()
	probeWith(t, "libGL.so", &Probe{Paths: []string{"libGL.so"}, Strict: true})
}

func TestProbeReleasesLibraryAfterStrictPanic(t *testing.T) {
	mockStdout(t)
	closed := 0

	func() {
		defer func() { recover() }()
		probeWithLibrary(t, "libGL.so", stubLibrary{closed: &closed}, &Probe{Paths: []string{"libGL.so"}, Strict: true})
	}()

	if closed != 1 {
		t.Errorf("library closed %d times, want 1", closed)
	}
}

func TestProbeReleasesLibrary(t *testing.T) {
	mockStdout(t)
	closed := 0

	if _, err := probeWithLibrary(t, "libGL.so", stubLibrary{closed: &closed}, &Probe{Paths: []string{"libGL.so"}}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if closed != 1 {
		t.Errorf("library closed %d times, want 1", closed)
	}
}
