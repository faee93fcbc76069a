package compile

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/qobs-build/ipxact-compile/internal/ipxact"
)

// FileEnv is what a --filter expression sees for each file
type FileEnv struct {
	Name           string `expr:"name"`
	FileType       string `expr:"file_type"`
	LogicalName    string `expr:"logical_name"`
	HasLogicalName bool   `expr:"has_logical_name"`
}

func newFileEnv(f ipxact.File) FileEnv {
	return FileEnv{
		Name:           f.Path,
		FileType:       f.FileType,
		LogicalName:    f.Library(),
		HasLogicalName: f.HasLogicalName(),
	}
}

// Filter drops files by glob pattern and by expression
type Filter struct {
	exclude []string
	program *vm.Program
	source  string
}

// NewFilter validates every pattern and compiles the expression up front
func NewFilter(exclude []string, expression string) (*Filter, error) {
	for _, pat := range exclude {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pat)
		}
	}

	f := &Filter{exclude: exclude, source: expression}
	if expression != "" {
		program, err := expr.Compile(expression, expr.Env(FileEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("failed to compile filter %q: %w", expression, err)
		}
		f.program = program
	}
	return f, nil
}

func (f *Filter) excluded(file ipxact.File) (bool, error) {
	path := filepath.ToSlash(file.Path)
	for _, pat := range f.exclude {
		matched, err := doublestar.Match(pat, path)
		if err != nil {
			return false, fmt.Errorf("while matching %s against %q: %w", path, pat, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func (f *Filter) selected(file ipxact.File) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	result, err := expr.Run(f.program, newFileEnv(file))
	if err != nil {
		return false, fmt.Errorf("failed to run filter %q for file %s: %w", f.source, file.Path, err)
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, expected bool", f.source, result)
	}
	return keep, nil
}

// Apply returns the kept files and the dropped ones, both in document order
func (f *Filter) Apply(files []ipxact.File) (kept, dropped []ipxact.File, err error) {
	kept = make([]ipxact.File, 0, len(files))
	for _, file := range files {
		excluded, err := f.excluded(file)
		if err != nil {
			return nil, nil, err
		}
		keep := !excluded
		if keep {
			if keep, err = f.selected(file); err != nil {
				return nil, nil, err
			}
		}
		if keep {
			kept = append(kept, file)
		} else {
			dropped = append(dropped, file)
		}
	}
	return kept, dropped, nil
}
