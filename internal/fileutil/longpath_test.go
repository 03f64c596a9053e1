package fileutil

import (
	"runtime"
	"strings"
	"testing"
)

func TestNormalizeLongPath(t *testing.T) {
	short := "/tmp/out.srt"
	if got := NormalizeLongPath(short); got != short {
		t.Errorf("short path changed: %q", got)
	}

	long := "/" + strings.Repeat("a", 300) + "/out.srt"
	got := NormalizeLongPath(long)
	if runtime.GOOS == "windows" {
		if !strings.HasPrefix(got, `\\?\`) {
			t.Errorf("long path missing extended prefix: %q", got)
		}
	} else if got != long {
		t.Errorf("long path changed off windows: %q", got)
	}
}
