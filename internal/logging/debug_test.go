package logging

import (
	"os"
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	os.Unsetenv("TIMECLOCK_DEBUG")
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false when TIMECLOCK_DEBUG is not set")
	}

	os.Setenv("TIMECLOCK_DEBUG", "")
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false when TIMECLOCK_DEBUG is empty")
	}

	os.Setenv("TIMECLOCK_DEBUG", "1")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when TIMECLOCK_DEBUG is set")
	}

	os.Unsetenv("TIMECLOCK_DEBUG")
}
