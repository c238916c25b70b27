package world

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestCorePackagesAvoidDriverImports 模拟核心不能依赖 ebiten 等需要 cgo 的驱动库
func TestCorePackagesAvoidDriverImports(t *testing.T) {
	core := []string{"components", "config", "ecs", "entities", "events", "game", "systems", "world"}
	banned := []string{
		"github.com/hajimehoshi/ebiten",
		"github.com/gdamore/tcell",
		"github.com/gopxl/beep",
	}

	for _, pkg := range core {
		dir := filepath.Join("..", pkg)
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
				continue
			}
			path := filepath.Join(dir, e.Name())
			f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				for _, b := range banned {
					if strings.HasPrefix(p, b) {
						t.Errorf("%s imports %s", path, p)
					}
				}
			}
		}
	}
}
