package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// Dir is the testdata location relative to the module root.
const Dir = "internal/testutil"

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Inputs returns the names, relative to testdata, of the .nyml files in the
// given testdata subdirectory.
func Inputs(dir string) ([]string, error) {
	matches, err := fs.Glob(TestdataFS, fmt.Sprintf("testdata/%s/*.nyml", dir))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimPrefix(m, "testdata/"))
	}
	return names, nil
}

// GoldenName maps an input name to its golden file name.
func GoldenName(name string) string {
	return strings.TrimSuffix(name, ".nyml") + ".golden"
}

// SourcePath returns the on-disk path of a testdata file for a test running
// in the module root.
func SourcePath(name string) string {
	return filepath.Join(Dir, "testdata", filepath.FromSlash(name))
}
