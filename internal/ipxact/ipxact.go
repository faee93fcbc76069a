// Package ipxact reads the parts of an IP-XACT component descriptor needed
// to build a compile script: the component name and the files of its first
// fileSet.
package ipxact

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// File is a single <file> entry of a fileSet
type File struct {
	Path     string
	FileType string
	// LogicalName is nil when the file has no <logicalName> element
	LogicalName *string
}

// HasLogicalName reports whether the file belongs to a named library
func (f File) HasLogicalName() bool { return f.LogicalName != nil }

// Library returns the logical name, or "" if there is none
func (f File) Library() string {
	if f.LogicalName == nil {
		return ""
	}
	return *f.LogicalName
}

type FileSet struct {
	Name  string
	Files []File
}

// Component is the extracted view of a descriptor
type Component struct {
	Name    string
	FileSet FileSet
	// Warnings holds non-fatal findings, in the order they were made
	Warnings []string
}

// Parse reads a descriptor from rdr and extracts the component
func Parse(rdr io.Reader) (*Component, error) {
	root, err := decode(rdr)
	if err != nil {
		return nil, err
	}
	return extract(root)
}

// ParseFile parses the descriptor at path
func ParseFile(path string) (*Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
