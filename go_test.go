package num_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The library itself should stay importable without dragging in the CLI or
// test stacks. Only these non-stdlib imports are allowed outside _test.go
// files in the root package:
var allowedLibImports = map[string]bool{
	"github.com/zeebo/errs": true,
}

func TestLibraryImports(t *testing.T) {
	if os.Getenv("NUM_SKIP_IMPORTS") != "" {
		// Use this to avoid this check if you need to use spew.Dump while
		// debugging:
		t.Skip()
	}

	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatal(err)
		}
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				t.Fatal(err)
			}
			if isStdlib(path) || allowedLibImports[path] {
				continue
			}
			t.Errorf("%s imports unexpected package %q", file, path)
		}
	}
}

// isStdlib uses the same heuristic as the go command: standard library paths
// have no dot in their first element.
func isStdlib(path string) bool {
	first := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		first = path[:i]
	}
	return !strings.Contains(first, ".")
}
