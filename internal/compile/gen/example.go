package gen

import (
	"slices"

	"github.com/qobs-build/ipxact-compile/internal/ipxact"
)

// ExampleGen emits a script for a generic simulator: one library per
// logical name, one compile command per HDL file and a final elaboration.
type ExampleGen struct{}

func (ExampleGen) Name() string { return ToolExample }

// Generate ignores options. Files of unknown type are skipped silently.
func (ExampleGen) Generate(top string, files []ipxact.File, options string) Script {
	var lines []string
	for _, lib := range libraries(files) {
		lines = append(lines, command("create_library", lib))
	}

	for _, f := range files {
		var verb string
		switch {
		case IsVHDL(f.FileType):
			verb = "compile_vhdl"
		case IsVerilog(f.FileType):
			verb = "compile_verilog"
		default:
			continue
		}
		if f.HasLogicalName() {
			lines = append(lines, command(verb, "-lib", f.Library(), f.Path))
		} else {
			lines = append(lines, command(verb, f.Path))
		}
	}

	lines = append(lines, command("elaborate", top))
	return Script{Lines: lines}
}

// libraries returns the distinct logical names, sorted
func libraries(files []ipxact.File) []string {
	var libs []string
	for _, f := range files {
		if f.HasLogicalName() {
			libs = append(libs, f.Library())
		}
	}
	slices.Sort(libs)
	return slices.Compact(libs)
}
