package gen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/qobs-build/ipxact-compile/internal/ipxact"
)

var ErrUnknownTool = errors.New("unknown tool")

// Script is the output of a generator. Warnings are diagnostics and are
// never part of the script itself.
type Script struct {
	Lines    []string
	Warnings []string
}

// Generator turns the files of a component into a compile script for one tool
type Generator interface {
	Name() string
	Generate(top string, files []ipxact.File, options string) Script
}

const (
	ToolExample   = "example"
	ToolVerilator = "verilator"
)

var generators = map[string]Generator{
	ToolExample:   ExampleGen{},
	ToolVerilator: VerilatorGen{},
}

var descriptions = map[string]string{
	ToolExample:   "Generic create_library/compile_*/elaborate script",
	ToolVerilator: "Single verilator command line",
}

// Lookup returns the generator registered under the exact name
func Lookup(name string) (Generator, error) {
	if g, ok := generators[name]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
}

// Names returns the registered tool names, sorted
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Descriptions returns tool name -> help text
func Descriptions() map[string]string {
	out := make(map[string]string, len(descriptions))
	for _, name := range Names() {
		out[name] = descriptions[name]
	}
	return out
}
