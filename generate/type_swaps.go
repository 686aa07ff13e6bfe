package generate

import (
	"fmt"
	"go/types"
	"sort"
)

type ImportData struct {
	Path  string
	Name  string
	Alias string
}

// TypeProcessor renders types for the generated file and records every
// package they reference. Each package gets an alias of its own so that
// nothing clashes with the proxy's own imports.
type TypeProcessor struct {
	localPath string
	byPath    map[string]*ImportData
}

// NewTypeProcessor leaves types from localPath unqualified; pass "" to
// qualify everything.
func NewTypeProcessor(localPath string) *TypeProcessor {
	return &TypeProcessor{
		localPath: localPath,
		byPath:    make(map[string]*ImportData),
	}
}

func (tp *TypeProcessor) TypeString(t types.Type) string {
	return types.TypeString(t, tp.qualify)
}

// Imports returns the referenced packages sorted by path.
func (tp *TypeProcessor) Imports() []*ImportData {
	imports := make([]*ImportData, 0, len(tp.byPath))
	for _, imp := range tp.byPath {
		imports = append(imports, imp)
	}
	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})

	return imports
}

func (tp *TypeProcessor) qualify(pkg *types.Package) string {
	if pkg.Path() == tp.localPath {
		return ""
	}
	if imp, ok := tp.byPath[pkg.Path()]; ok {
		return imp.Alias
	}

	// aliases depend on first use, which follows the sorted method order
	imp := &ImportData{
		Path:  pkg.Path(),
		Name:  pkg.Name(),
		Alias: fmt.Sprintf("import%s%d", pkg.Name(), len(tp.byPath)),
	}
	tp.byPath[pkg.Path()] = imp

	return imp.Alias
}
