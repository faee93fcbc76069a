// Package compile drives one run: parse the descriptor, filter its files,
// generate the script for the selected tool and write (or check) it.
package compile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/qobs-build/ipxact-compile/internal/compile/gen"
	"github.com/qobs-build/ipxact-compile/internal/ipxact"
	"github.com/qobs-build/ipxact-compile/internal/msg"
)

// long flag names, shared with the cmd package so config precedence can be
// decided per flag
const (
	FlagInput          = "input"
	FlagOutput         = "output"
	FlagTool           = "tool"
	FlagCompileOptions = "compile-options"
	FlagExclude        = "exclude"
	FlagFilter         = "filter"
	FlagCheck          = "check"
	FlagConfig         = "config"
)

var (
	errNoInput  = errors.New("no input file given (--input)")
	errNoOutput = errors.New("no output file given (--output)")
	errNoTool   = errors.New("no tool given (--tool)")
)

type Options struct {
	Input          string
	Output         string
	Tool           string
	CompileOptions string
	Exclude        []string
	Filter         string
	// Check compares against Output instead of writing it
	Check bool
}

func (o Options) validate() error {
	switch {
	case o.Input == "":
		return errNoInput
	case o.Output == "":
		return errNoOutput
	case o.Tool == "":
		return errNoTool
	}
	return nil
}

// Result is everything a run produced before anything is written
type Result struct {
	Component *ipxact.Component
	Files     []ipxact.File
	Dropped   []ipxact.File
	Script    gen.Script
}

// Generate runs the pipeline up to and including script generation.
// Configuration problems are reported before the input is read.
func Generate(o Options) (*Result, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	g, err := gen.Lookup(o.Tool)
	if err != nil {
		return nil, err
	}

	filter, err := NewFilter(o.Exclude, o.Filter)
	if err != nil {
		return nil, err
	}

	c, err := ipxact.ParseFile(o.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read component: %w", err)
	}

	files, dropped, err := filter.Apply(c.FileSet.Files)
	if err != nil {
		return nil, err
	}

	return &Result{
		Component: c,
		Files:     files,
		Dropped:   dropped,
		Script:    g.Generate(c.Name, files, o.CompileOptions),
	}, nil
}

// Run generates the script, reports diagnostics and writes the output.
// In check mode the diff (if any) goes to diffOut and nothing is written.
func Run(o Options, diffOut io.Writer) error {
	res, err := Generate(o)
	if err != nil {
		return err
	}

	for _, w := range res.Component.Warnings {
		msg.Warn("%s", w)
	}
	for _, f := range res.Dropped {
		msg.Debug("skipping file %s (%s)", f.Path, f.FileType)
	}
	msg.Info("output compile script for %s", o.Tool)
	for _, w := range res.Script.Warnings {
		msg.Warn("%s", w)
	}

	if o.Check {
		if diffOut == nil {
			diffOut = os.Stdout
		}
		if err := Check(diffOut, o.Output, res.Script.Lines); err != nil {
			return err
		}
		msg.Info("%s is up to date", o.Output)
		return nil
	}

	if err := WriteScript(o.Output, res.Script.Lines); err != nil {
		return err
	}
	msg.Debug("wrote %d line(s) to %s", len(res.Script.Lines), o.Output)
	return nil
}
