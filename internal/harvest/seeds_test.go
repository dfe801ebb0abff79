package harvest

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestLoadSeeds(t *testing.T) {
	dir := t.TempDir()
	require := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}

	require(os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require(os.WriteFile(filepath.Join(dir, "words.md"), []byte(`# Seed words

- struggling with
- how to fix
* tips for

plain seed line
`), 0644))
	require(os.WriteFile(filepath.Join(dir, "nested", "more.md"), []byte(`- Struggling With
- spreadsheet formulas
`), 0644))

	seeds, err := LoadSeeds(filepath.Join(dir, "**", "*.md"))
	if err != nil {
		t.Fatalf("LoadSeeds() error = %v", err)
	}

	// File visit order depends on the glob walk; compare as a set.
	want := []string{
		"struggling with", "how to fix", "tips for",
		"plain seed line", "spreadsheet formulas",
	}
	sort.Strings(seeds)
	sort.Strings(want)
	if !reflect.DeepEqual(seeds, want) {
		t.Errorf("LoadSeeds() = %v, want %v", seeds, want)
	}
}

func TestLoadSeeds_DefaultsWhenNoFiles(t *testing.T) {
	dir := t.TempDir()

	seeds, err := LoadSeeds(filepath.Join(dir, "**", "*.md"))
	if err != nil {
		t.Fatalf("LoadSeeds() error = %v", err)
	}
	if !reflect.DeepEqual(seeds, defaultSeeds) {
		t.Errorf("LoadSeeds() = %v, want built-in defaults", seeds)
	}
}

func TestLoadSeeds_DefaultsWhenEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "empty.md"), []byte("# only a heading\n"), 0644); err != nil {
		t.Fatal(err)
	}

	seeds, err := LoadSeeds(filepath.Join(dir, "*.md"))
	if err != nil {
		t.Fatalf("LoadSeeds() error = %v", err)
	}
	if !reflect.DeepEqual(seeds, defaultSeeds) {
		t.Errorf("LoadSeeds() = %v, want built-in defaults", seeds)
	}
}
