package diag

import (
	"os"
	"testing"
)

func TestWarnDoesNotPanic(t *testing.T) {
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer devnull.Close()
	SetOutput(devnull)
	Warn("test message %d", 1)
}
