package compile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/qobs-build/ipxact-compile/internal/compile/gen"
	"github.com/qobs-build/ipxact-compile/internal/ipxact"
	"github.com/qobs-build/ipxact-compile/internal/msg"
	"github.com/stretchr/testify/require"
)

const cpuXML = `<?xml version="1.0" encoding="UTF-8"?>
<ipxact:component xmlns:ipxact="http://www.accellera.org/XMLSchema/IPXACT/1685-2014">
  <ipxact:name>cpu</ipxact:name>
  <ipxact:fileSets>
    <ipxact:fileSet>
      <ipxact:name>rtl</ipxact:name>
      %s
    </ipxact:fileSet>
  </ipxact:fileSets>
</ipxact:component>
`

func fileXML(name, fileType, logical string) string {
	s := "<ipxact:file><ipxact:name>" + name + "</ipxact:name><ipxact:fileType>" + fileType + "</ipxact:fileType>"
	if logical != "" {
		s += "<ipxact:logicalName>" + logical + "</ipxact:logicalName>"
	}
	return s + "</ipxact:file>"
}

func writeInput(t *testing.T, files ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "component.xml")
	doc := strings.Replace(cpuXML, "%s", strings.Join(files, "\n      "), 1)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

// captureMsg redirects diagnostics for the duration of the test
func captureMsg(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor, prevVerbose := msg.Output, color.NoColor, msg.Verbose
	msg.Output, color.NoColor = &buf, true
	t.Cleanup(func() {
		msg.Output, color.NoColor, msg.Verbose = prevOut, prevNoColor, prevVerbose
	})
	return &buf
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestScenarioExampleVHDL(t *testing.T) {
	diag := captureMsg(t)
	input := writeInput(t, fileXML("alu.vhd", "vhdlSource", "work"))
	output := filepath.Join(t.TempDir(), "compile.tcl")

	err := Run(Options{Input: input, Output: output, Tool: gen.ToolExample}, nil)
	require.NoError(t, err)
	require.Equal(t, "create_library work\ncompile_vhdl -lib work alu.vhd\nelaborate cpu\n", readOutput(t, output))
	require.NotContains(t, diag.String(), "warning")
}

func TestScenarioVerilator(t *testing.T) {
	captureMsg(t)
	input := writeInput(t, fileXML("alu.v", "verilogSource", ""))
	output := filepath.Join(t.TempDir(), "compile.sh")

	err := Run(Options{Input: input, Output: output, Tool: gen.ToolVerilator, CompileOptions: "-Wall"}, nil)
	require.NoError(t, err)
	require.Equal(t, "verilator -Wall alu.v\n", readOutput(t, output))
}

func TestScenarioUnsupportedFileType(t *testing.T) {
	input := writeInput(t, fileXML("model.cpp", "systemCSource", ""))

	t.Run("example", func(t *testing.T) {
		diag := captureMsg(t)
		output := filepath.Join(t.TempDir(), "out")
		require.NoError(t, Run(Options{Input: input, Output: output, Tool: gen.ToolExample}, nil))
		require.Equal(t, "elaborate cpu\n", readOutput(t, output))
		require.NotContains(t, diag.String(), "warning")
	})

	t.Run("verilator", func(t *testing.T) {
		diag := captureMsg(t)
		output := filepath.Join(t.TempDir(), "out")
		require.NoError(t, Run(Options{Input: input, Output: output, Tool: gen.ToolVerilator, CompileOptions: "-Wall"}, nil))
		require.Equal(t, "verilator -Wall\n", readOutput(t, output))
		require.Equal(t, 1, strings.Count(diag.String(), "warning: "))
		require.Contains(t, diag.String(), "warning: ipxact-compile does not know if verilator supports file type: systemCSource for file: model.cpp")
	})
}

func TestScenarioNoFileSets(t *testing.T) {
	captureMsg(t)
	input := filepath.Join(t.TempDir(), "component.xml")
	require.NoError(t, os.WriteFile(input, []byte(`<component><name>cpu</name></component>`), 0o644))
	output := filepath.Join(t.TempDir(), "out")

	err := Run(Options{Input: input, Output: output, Tool: gen.ToolExample}, nil)
	var elemErr *ipxact.ElementError
	require.ErrorAs(t, err, &elemErr)
	require.Equal(t, "fileSets", elemErr.Element)
	require.NoFileExists(t, output)
}

func TestFatalErrorsWriteNothing(t *testing.T) {
	captureMsg(t)
	good := writeInput(t, fileXML("a.v", "verilogSource", ""))
	malformed := filepath.Join(t.TempDir(), "bad.xml")
	require.NoError(t, os.WriteFile(malformed, []byte("<component><name>cpu"), 0o644))
	badFile := writeInput(t, "<ipxact:file><ipxact:name>a.v</ipxact:name></ipxact:file>")

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "unknown tool", opts: Options{Input: good, Tool: "vcs"}, want: "unknown tool: vcs"},
		{name: "missing tool", opts: Options{Input: good}, want: "no tool given"},
		{name: "missing input", opts: Options{Tool: gen.ToolExample}, want: "no input file given"},
		{name: "input not found", opts: Options{Input: filepath.Join(t.TempDir(), "nope.xml"), Tool: gen.ToolExample}, want: "no such file"},
		{name: "malformed input", opts: Options{Input: malformed, Tool: gen.ToolExample}, want: "malformed xml"},
		{name: "file without type", opts: Options{Input: badFile, Tool: gen.ToolExample}, want: "file 1 contains no <fileType></fileType> element"},
		{name: "bad filter", opts: Options{Input: good, Tool: gen.ToolExample, Filter: "name +"}, want: "failed to compile filter"},
		{name: "bad exclude", opts: Options{Input: good, Tool: gen.ToolExample, Exclude: []string{"[a-"}}, want: "invalid exclude pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "out")
			tt.opts.Output = output
			err := Run(tt.opts, nil)
			require.ErrorContains(t, err, tt.want)
			require.NoFileExists(t, output)
		})
	}
}

func TestMissingOutputIsAnError(t *testing.T) {
	err := Run(Options{Input: "x.xml", Tool: gen.ToolExample}, nil)
	require.ErrorContains(t, err, "no output file given")
}

func TestUnwritableOutput(t *testing.T) {
	captureMsg(t)
	input := writeInput(t, fileXML("a.v", "verilogSource", ""))
	output := filepath.Join(t.TempDir(), "missing-dir", "out")

	err := Run(Options{Input: input, Output: output, Tool: gen.ToolExample}, nil)
	require.ErrorContains(t, err, "failed to write compile script")
}

func TestOverwritesExistingOutput(t *testing.T) {
	captureMsg(t)
	input := writeInput(t, fileXML("a.v", "verilogSource", ""))
	output := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(output, []byte("stale\nstale\nstale\nstale\n"), 0o644))

	require.NoError(t, Run(Options{Input: input, Output: output, Tool: gen.ToolExample}, nil))
	require.Equal(t, "compile_verilog a.v\nelaborate cpu\n", readOutput(t, output))
}

func TestIdempotent(t *testing.T) {
	captureMsg(t)
	input := writeInput(t,
		fileXML("pkg.vhd", "vhdlSource-93", "common"),
		fileXML("alu.vhd", "vhdlSource", "work"),
		fileXML("regs.sv", "systemVerilogSource", ""),
		fileXML("top.v", "verilogSource", "work"),
	)
	dir := t.TempDir()

	for _, tool := range gen.Names() {
		a, b := filepath.Join(dir, tool+".1"), filepath.Join(dir, tool+".2")
		require.NoError(t, Run(Options{Input: input, Output: a, Tool: tool, CompileOptions: "-Wall"}, nil))
		require.NoError(t, Run(Options{Input: input, Output: b, Tool: tool, CompileOptions: "-Wall"}, nil))
		require.Equal(t, readOutput(t, a), readOutput(t, b))
	}
}

func TestMultipleFileSetsWarning(t *testing.T) {
	diag := captureMsg(t)
	input := filepath.Join(t.TempDir(), "component.xml")
	require.NoError(t, os.WriteFile(input, []byte(`<component><name>cpu</name><fileSets>
		<fileSet><name>a</name><file><name>a.v</name><fileType>verilogSource</fileType></file></fileSet>
		<fileSet><name>b</name><file><name>b.v</name><fileType>verilogSource</fileType></file></fileSet>
	</fileSets></component>`), 0o644))
	output := filepath.Join(t.TempDir(), "out")

	require.NoError(t, Run(Options{Input: input, Output: output, Tool: gen.ToolExample}, nil))
	require.Equal(t, "compile_verilog a.v\nelaborate cpu\n", readOutput(t, output))
	require.Contains(t, diag.String(), "warning: xml contains multiple <fileSet></fileSet> elements, will use the first one")
}

func TestGenerateFilters(t *testing.T) {
	input := writeInput(t,
		fileXML("rtl/alu.vhd", "vhdlSource", "work"),
		fileXML("tb/tb_alu.vhd", "vhdlSource", "work"),
		fileXML("rtl/regs.sv", "systemVerilogSource", ""),
		fileXML("tb/deep/tb_regs.sv", "systemVerilogSource", "tb"),
	)

	res, err := Generate(Options{
		Input:   input,
		Output:  "unused",
		Tool:    gen.ToolExample,
		Exclude: []string{"tb/**"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"create_library work",
		"compile_vhdl -lib work rtl/alu.vhd",
		"compile_verilog rtl/regs.sv",
		"elaborate cpu",
	}, res.Script.Lines)
	require.Len(t, res.Dropped, 2)
	require.Equal(t, "tb/tb_alu.vhd", res.Dropped[0].Path)

	res, err = Generate(Options{
		Input:  input,
		Output: "unused",
		Tool:   gen.ToolExample,
		Filter: `has_logical_name && logical_name != "tb"`,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"rtl/alu.vhd", "tb/tb_alu.vhd"}, paths(res.Files))
}

func paths(files []ipxact.File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestVerboseReportsDroppedFiles(t *testing.T) {
	diag := captureMsg(t)
	msg.Verbose = true
	input := writeInput(t, fileXML("tb/tb.v", "verilogSource", ""), fileXML("a.v", "verilogSource", ""))
	output := filepath.Join(t.TempDir(), "out")

	require.NoError(t, Run(Options{Input: input, Output: output, Tool: gen.ToolVerilator, Exclude: []string{"tb/*"}}, nil))
	require.Equal(t, "verilator  a.v\n", readOutput(t, output))
	require.Contains(t, diag.String(), "debug: skipping file tb/tb.v (verilogSource)")
}

func TestCheckMode(t *testing.T) {
	captureMsg(t)
	input := writeInput(t, fileXML("alu.vhd", "vhdlSource", "work"))
	output := filepath.Join(t.TempDir(), "out")
	opts := Options{Input: input, Output: output, Tool: gen.ToolExample, Check: true}

	var diff bytes.Buffer
	err := Run(opts, &diff)
	require.True(t, errors.Is(err, ErrOutOfDate))
	require.NoFileExists(t, output)

	opts.Check = false
	require.NoError(t, Run(opts, nil))

	opts.Check = true
	diff.Reset()
	require.NoError(t, Run(opts, &diff))
	require.Empty(t, diff.String())

	require.NoError(t, os.WriteFile(output, []byte("create_library work\ncompile_vhdl alu.vhd\nelaborate cpu\n"), 0o644))
	diff.Reset()
	err = Run(opts, &diff)
	require.True(t, errors.Is(err, ErrOutOfDate))
	require.Equal(t, " create_library work\n-compile_vhdl alu.vhd\n+compile_vhdl -lib work alu.vhd\n elaborate cpu\n", diff.String())
	require.Equal(t, "create_library work\ncompile_vhdl alu.vhd\nelaborate cpu\n", readOutput(t, output), "check never writes")
}

func TestRender(t *testing.T) {
	require.Equal(t, "a\nb\n", string(Render([]string{"a", "b"})))
	require.Equal(t, "verilator -Wall\n", string(Render([]string{"verilator -Wall"})))
}
