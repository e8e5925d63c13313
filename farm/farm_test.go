package farm

import "testing"

func TestNamesAreDistinct(t *testing.T) {
	f := New(8, "/does/not/matter")

	names := f.Names()
	if len(names) != 8 {
		t.Fatalf("got %d names, want 8", len(names))
	}

	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate client name %q", name)
		}
		seen[name] = true
	}
	if names[0] != "virtual-1" || names[7] != "virtual-8" {
		t.Errorf("names out of order: %v", names)
	}
}

func TestStartFailureIsReported(t *testing.T) {
	f := New(2, "/nonexistent/spawner-binary")

	if err := f.Start(); err == nil {
		t.Fatal("expected start error for missing binary")
	}

	for _, c := range f.Children() {
		if c.State != StateFailed {
			t.Errorf("child %d state = %v, want failed", c.Number, c.State)
		}
	}

	// Failures must have been published as events too.
	failed := 0
	for len(f.Events()) > 0 {
		e := <-f.Events()
		if e.State == StateFailed {
			failed++
		}
	}
	if failed != 2 {
		t.Errorf("got %d failure events, want 2", failed)
	}
}

func TestStopOnUnstartedFarmIsSafe(t *testing.T) {
	f := New(3, "/does/not/matter")
	f.Stop() // no children running, must not hang or panic
}

func TestSpawnerPathPrefersConfigured(t *testing.T) {
	got, err := SpawnerPath("/opt/custom/spawner")
	if err != nil {
		t.Fatalf("SpawnerPath: %v", err)
	}
	if got != "/opt/custom/spawner" {
		t.Errorf("SpawnerPath = %q, want configured path", got)
	}
}
