package gen

import (
	"fmt"
	"strings"

	"github.com/qobs-build/ipxact-compile/internal/ipxact"
)

// VerilatorGen emits a single verilator invocation. verilator does not
// compile VHDL, so only Verilog and SystemVerilog sources are passed.
type VerilatorGen struct{}

func (VerilatorGen) Name() string { return ToolVerilator }

// Generate passes options through verbatim, right after the program name
func (VerilatorGen) Generate(top string, files []ipxact.File, options string) Script {
	var sb strings.Builder
	var warnings []string

	write(&sb, "verilator ", options)
	for _, f := range files {
		if IsVerilog(f.FileType) {
			write(&sb, " ", f.Path)
			continue
		}
		warnings = append(warnings, fmt.Sprintf("ipxact-compile does not know if verilator supports file type: %s for file: %s", f.FileType, f.Path))
	}

	return Script{Lines: []string{sb.String()}, Warnings: warnings}
}
