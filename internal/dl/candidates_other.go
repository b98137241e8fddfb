//go:build !darwin && !windows

package dl

// Candidates returns the OpenGL library names in the order they are tried.
func Candidates() []string {
	return []string{
		"libGL.so",
		"libGL.so.1",
	}
}
