package buildinfo

import "testing"

func TestShort(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	Version, Commit = "v0.3.1", "0123456789abcdef"
	if got := Short(); got != "v0.3.1" {
		t.Fatalf("Short() = %q, want v0.3.1", got)
	}

	Version = "dev"
	if got := Short(); got != "0123456" {
		t.Fatalf("Short() = %q, want 0123456", got)
	}
}
