package glcew

// Status is the cached outcome of Init.
type Status int

const (
	Success      Status = 0
	OpenFailed   Status = -1
	AtExitFailed Status = -2
)

// ErrorString returns the fixed name of an Init status code, or "UNKNOWN"
// for any other value.
func ErrorString(code int) string {
	switch Status(code) {
	case Success:
		return "SUCCESS"
	case OpenFailed:
		return "OPEN_FAILED"
	case AtExitFailed:
		return "ATEXIT_FAILED"
	}
	return "UNKNOWN"
}

func (s Status) String() string {
	return ErrorString(int(s))
}
