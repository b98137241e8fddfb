// Package glcew loads the system OpenGL/GLX library at runtime and
// forwards calls to it.
//
// Init opens the first library that matches the platform's candidate
// names, resolves every entry point listed in symbols.toml, and caches the
// outcome. The exported functions (ClearColor, XSwapBuffers, ...) call the
// resolved entry points directly and must only be used after Init reported
// Success:
//
//	if status := glcew.Init(); status != glcew.Success {
//		log.Fatalf("glcew: %s", status)
//	}
//	defer atexit.Run()
//	glcew.ClearColor(0, 0, 0, 1)
//
// The library handle is released by a hook registered with the atexit
// package. An entry point missing from the library leaves its slot unset;
// calling its wrapper then panics.
package glcew

//go:generate go run ./tools/generate symbols.toml gl_generated.go
