package log

import (
	"os"
	"testing"
	"time"
)

func TestDebugDisabledByDefault(t *testing.T) {
	// Clean up any previous state
	DebugEnabled = false
	DebugLog = nil

	// Without CW_DEBUG=1, debug should be disabled
	os.Unsetenv("CW_DEBUG")
	InitDebug()

	if DebugEnabled {
		t.Error("Debug should be disabled by default")
	}
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	// Clean up any previous state
	DebugEnabled = false
	DebugLog = nil

	os.Setenv("CW_DEBUG", "1")
	defer os.Unsetenv("CW_DEBUG")

	InitDebug()
	defer CloseDebug()

	if !DebugEnabled {
		t.Error("Debug should be enabled with CW_DEBUG=1")
	}
	if DebugLog == nil {
		t.Error("DebugLog should be initialized")
	}
}

func TestDebugFunction(t *testing.T) {
	// When disabled, should not panic
	DebugEnabled = false
	DebugLog = nil
	Debug("test message %s", "arg") // Should not panic

	// When enabled but log is nil, should not panic
	DebugEnabled = true
	DebugLog = nil
	Debug("test message %s", "arg") // Should not panic
}

func TestTraceHelpers(t *testing.T) {
	// All trace helpers should not panic when disabled
	DebugEnabled = false
	DebugLog = nil

	LayoutTrace("test %s", "arg")
	InputTrace("test %s", "arg")

	// Should not panic when enabled but log is nil
	DebugEnabled = true
	DebugLog = nil

	LayoutTrace("test %s", "arg")
	InputTrace("test %s", "arg")
}

func TestRecordFrame(t *testing.T) {
	profiler.Reset()
	DebugEnabled = true

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.RecordFrame(20 * time.Millisecond)

	if profiler.frameCount != 2 {
		t.Errorf("Expected frame count 2, got %d", profiler.frameCount)
	}
	if profiler.totalTime != 30*time.Millisecond {
		t.Errorf("Expected total time 30ms, got %v", profiler.totalTime)
	}
}

func TestProfilerStats(t *testing.T) {
	profiler.Reset()
	DebugEnabled = true

	if got := profiler.Stats(); got != "no frames recorded" {
		t.Errorf("Expected empty-profile message, got %q", got)
	}

	profiler.RecordFrame(10 * time.Millisecond)
	if got := profiler.Stats(); got == "" || got == "no frames recorded" {
		t.Errorf("Expected frame stats, got %q", got)
	}
}
