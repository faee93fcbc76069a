package compile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var ErrOutOfDate = errors.New("compile script is out of date")

// Check compares the rendered lines with the file at path without touching
// it. Differences are written to w as a line diff.
func Check(w io.Writer, path string, lines []string) error {
	want := Render(lines)
	have, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", ErrOutOfDate, path)
	}
	if err != nil {
		return err
	}
	if bytes.Equal(have, want) {
		return nil
	}

	writeLineDiff(w, string(have), string(want))
	return fmt.Errorf("%w: %s", ErrOutOfDate, path)
}

func writeLineDiff(w io.Writer, have, want string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(have, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(w, color.RedString("-"+line))
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(w, color.GreenString("+"+line))
			default:
				fmt.Fprintln(w, " "+line)
			}
		}
	}
}
