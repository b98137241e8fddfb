package glcew

import (
	"math"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "SUCCESS"},
		{-1, "OPEN_FAILED"},
		{-2, "ATEXIT_FAILED"},
		{1, "UNKNOWN"},
		{-3, "UNKNOWN"},
		{42, "UNKNOWN"},
		{math.MaxInt32, "UNKNOWN"},
		{math.MinInt32, "UNKNOWN"},
		{math.MaxInt, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := ErrorString(tt.code); got != tt.want {
			t.Errorf("ErrorString(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if got := OpenFailed.String(); got != "OPEN_FAILED" {
		t.Errorf("OpenFailed.String() = %q", got)
	}
	if got := Status(7).String(); got != "UNKNOWN" {
		t.Errorf("Status(7).String() = %q", got)
	}
}
