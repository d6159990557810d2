package window

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAssetFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bush.png", "actor.png", "tree.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	found, err := assetFiles(dir)
	if err != nil {
		t.Fatalf("assetFiles() failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("found %v, expected bush and actor only", found)
	}
	if found["bush"] != filepath.Join(dir, "bush.png") {
		t.Errorf("bush path = %q", found["bush"])
	}
	if _, ok := found["column"]; ok {
		t.Error("missing column sprite should not be reported")
	}
}

func TestAssetFilesEmptyDir(t *testing.T) {
	found, err := assetFiles("")
	if err != nil || len(found) != 0 {
		t.Errorf("empty dir should mean no assets, got %v, %v", found, err)
	}
	if _, err := assetFiles(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing directory should be an error")
	}
}

func TestImagesHas(t *testing.T) {
	var im Images
	if im.Has("bush") {
		t.Error("nil Images should have nothing")
	}
}
