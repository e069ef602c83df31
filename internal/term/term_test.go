package term

import (
	"testing"

	"github.com/backmassage/seqrename/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	if !Enabled() {
		t.Fatal("Enabled() = false after ColorAlways")
	}
	if got := Paint(Green, "ok"); got != Green+"ok"+NC {
		t.Errorf("Paint with colors = %q", got)
	}

	Configure(config.ColorNever)
	if Enabled() {
		t.Fatal("Enabled() = true after ColorNever")
	}
	if got := Paint(Green, "ok"); got != "ok" {
		t.Errorf("Paint without colors = %q, want %q", got, "ok")
	}
}

func TestArrow(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	if got := Arrow(); got != Cyan+"->"+NC {
		t.Errorf("Arrow() with colors = %q", got)
	}
	Configure(config.ColorNever)
	if got := Arrow(); got != "->" {
		t.Errorf("Arrow() without colors = %q, want %q", got, "->")
	}
}

func TestIsTerminal_Nil(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) should be false")
	}
}
