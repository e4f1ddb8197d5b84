// Package testsupport holds fixture helpers shared by tests across the
// module.
package testsupport

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagegen/pkg/manifest"
)

var update = flag.Bool("update", false, "rewrite golden files with current output")

// MustLoadPage reads a manifest fixture, failing the test on any error.
func MustLoadPage(t *testing.T, path string) *manifest.Page {
	t.Helper()

	page, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("load page fixture: %v", err)
	}
	return page
}

// AssertGolden compares got against the golden file at path, rewriting the
// file first when tests run with -update.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()

	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Fatalf("golden mismatch for %s (-want +got):\n%s", path, diff)
	}
}
