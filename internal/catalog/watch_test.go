package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const watchYAMLv1 = `
products:
  - id: aria-sofa
    variants: [{name: Blue, price: 300}]
`

const watchYAMLv2 = `
products:
  - id: aria-sofa
    variants: [{name: Blue, price: 300}, {name: Red, price: 400}]
`

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(watchYAMLv1), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	reloads := make(chan *Catalog, 4)
	w, err := Watch(path, func(c *Catalog) { reloads <- c })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(watchYAMLv2), 0o600); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}

	select {
	case c := <-reloads:
		if got := len(c.Product("aria-sofa").Variants); got != 2 {
			t.Errorf("expected reloaded catalog with 2 variants, got %d", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatch_KeepsLastGoodOnBadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(watchYAMLv1), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	reloads := make(chan *Catalog, 4)
	w, err := Watch(path, func(c *Catalog) { reloads <- c })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	// Invalid content must not reach the callback.
	if err := os.WriteFile(path, []byte("products: []"), 0o600); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}
	select {
	case <-reloads:
		t.Fatal("invalid catalog must not be delivered")
	case <-time.After(500 * time.Millisecond):
	}

	// A valid write afterwards still comes through.
	if err := os.WriteFile(path, []byte(watchYAMLv2), 0o600); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}
	select {
	case <-reloads:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher stopped delivering after a bad write")
	}
}

func TestWatch_MissingDir(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "missing", "catalog.yaml"), func(*Catalog) {}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
