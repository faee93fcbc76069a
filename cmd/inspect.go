// ipxact-compile inspect -i component.xml
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/qobs-build/ipxact-compile/internal/compile"
	"github.com/qobs-build/ipxact-compile/internal/compile/gen"
	"github.com/qobs-build/ipxact-compile/internal/ipxact"
	"github.com/qobs-build/ipxact-compile/internal/msg"
	"github.com/spf13/cobra"
)

var flagInspectInput string

func printComponent(w io.Writer, c *ipxact.Component) {
	fmt.Fprintf(w, "%s %s\n", color.HiCyanString("component"), c.Name)
	fmt.Fprintf(w, "%s %s (%d files)\n", color.HiCyanString("fileSet"), c.FileSet.Name, len(c.FileSet.Files))

	groupW := &msg.IndentWriter{Indent: "  ", W: w}
	pathW := &msg.IndentWriter{Indent: "    ", W: w}
	for _, g := range gen.GroupFiles(c.FileSet.Files) {
		kind := "other"
		switch {
		case gen.IsVHDL(g.FileType):
			kind = "vhdl"
		case gen.IsVerilog(g.FileType):
			kind = "verilog"
		}
		header := g.FileType + " (" + kind + ")"
		if g.LogicalName != nil {
			header += " lib " + g.Library()
		}
		fmt.Fprintln(groupW, color.HiGreenString(header))
		fmt.Fprintln(pathW, strings.Join(g.Paths, "\n"))
	}
}

func doInspect(cmd *cobra.Command, args []string) {
	c, err := ipxact.ParseFile(flagInspectInput)
	if err != nil {
		msg.Fatal("failed to read component: %v", err)
	}
	for _, w := range c.Warnings {
		msg.Warn("%s", w)
	}
	printComponent(cmd.OutOrStdout(), c)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect -i <component.xml>",
	Short: "Print the files of a component, grouped by type and library",
	Args:  cobra.NoArgs,
	Run:   doInspect,
}

func init() {
	// ipxact-compile inspect subcommand
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&flagInspectInput, compile.FlagInput, "i", "", "Path of the IP-XACT xml file to read")
	inspectCmd.MarkFlagRequired(compile.FlagInput)
}
