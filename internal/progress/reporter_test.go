package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewCIReporter(&buf)

	r.Start(2)
	r.Update("Loaded movies")
	r.Update("Loaded series")
	r.Finish()

	want := "Loading 2 catalog resources\n[1/2] Loaded movies\n[2/2] Loaded series\nCatalog loaded\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestTerminalReporterConcurrentUpdates(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{w: &buf}
	r.Start(2)

	var wg sync.WaitGroup
	for _, msg := range []string{"Loaded movies", "Loaded series"} {
		wg.Add(1)
		go func(m string) {
			defer wg.Done()
			r.Update(m)
		}(msg)
	}
	wg.Wait()
	r.Finish()

	if !strings.Contains(buf.String(), "Loaded") {
		t.Errorf("expected progress output, got %q", buf.String())
	}
}
