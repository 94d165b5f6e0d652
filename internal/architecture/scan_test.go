// Where: internal/architecture/scan_test.go
// What: Shared source scanner for architecture guard tests.
// Why: Every guard walks the same internal tree; parse it in one place.
package architecture

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const internalImportPrefix = "github.com/trendradar/radarctl/internal/"

// forEachInternalGoFile parses every non-test Go file under internal/ and
// hands it to fn along with its path relative to the internal root.
func forEachInternalGoFile(t *testing.T, fn func(rel string, fset *token.FileSet, file *ast.File)) {
	t.Helper()

	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()

	err := filepath.WalkDir(internalRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(internalRoot, path)
		if err != nil {
			return err
		}
		file, err := parser.ParseFile(fset, path, nil, 0)
		if err != nil {
			return err
		}
		fn(filepath.ToSlash(rel), fset, file)
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}
}

func resolveInternalRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root := filepath.Clean(filepath.Join(wd, "..", ".."))
	return filepath.Join(root, "internal")
}

// topPackage returns the first path element of a file path relative to the
// internal root, which is the package directory the guards reason about.
func topPackage(rel string) string {
	parts := strings.Split(rel, "/")
	return strings.TrimSpace(parts[0])
}

func importPaths(file *ast.File) []string {
	paths := make([]string, 0, len(file.Imports))
	for _, imp := range file.Imports {
		paths = append(paths, strings.Trim(imp.Path.Value, "\""))
	}
	return paths
}

// internalPackage maps an import path to its internal package name, or ""
// for imports outside this module's internal tree.
func internalPackage(importPath string) string {
	if !strings.HasPrefix(importPath, internalImportPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(importPath, internalImportPrefix)
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}
