//go:build darwin

package dl

// Candidates returns nil: wrangling the system OpenGL framework is not
// supported on Apple platforms, so initialization always reports an open
// failure there.
func Candidates() []string {
	return nil
}
