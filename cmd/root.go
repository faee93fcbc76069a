// ipxact-compile -i component.xml -o compile.sh -t verilator
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/qobs-build/ipxact-compile/internal/compile"
	"github.com/qobs-build/ipxact-compile/internal/compile/gen"
	"github.com/qobs-build/ipxact-compile/internal/msg"
	"github.com/spf13/cobra"
)

var (
	flagInput          string
	flagOutput         string
	flagCompileOptions string
	flagConfig         string
	flagFilter         string
	flagExclude        []string
	flagCheck          bool
	flagVerbose        bool
	flagNoColor        bool
	flagTool           EnumValue = NewEnumValue("", gen.Descriptions())
)

func compileOptions(cmd *cobra.Command) (compile.Options, error) {
	opts := compile.Options{
		Input:          flagInput,
		Output:         flagOutput,
		Tool:           flagTool.Value(),
		CompileOptions: flagCompileOptions,
		Exclude:        flagExclude,
		Filter:         flagFilter,
		Check:          flagCheck,
	}
	if flagConfig == "" {
		return opts, nil
	}

	cfg, err := compile.ParseConfigFromFile(flagConfig)
	if err != nil {
		return opts, err
	}
	cfg.Apply(&opts, cmd.Flags().Changed)
	return opts, nil
}

func doCompile(cmd *cobra.Command, args []string) {
	opts, err := compileOptions(cmd)
	if err != nil {
		msg.Fatal("%v", err)
	}
	if err := compile.Run(opts, cmd.OutOrStdout()); err != nil {
		msg.Fatal("%v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ipxact-compile -i <component.xml> -o <script> -t <tool>",
	Short: "Generate a compile script from an IP-XACT component",
	Long: `Reads an IP-XACT component descriptor and writes a compile script for the
selected tool. The first fileSet of the component is used.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		msg.Verbose = flagVerbose
		if flagNoColor {
			color.NoColor = true
		}
	},
	Run: doCompile,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print debug information")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	flags := rootCmd.Flags()
	flags.StringVarP(&flagInput, compile.FlagInput, "i", "", "Path of the IP-XACT xml file to read")
	flags.StringVarP(&flagOutput, compile.FlagOutput, "o", "", "Path of the compile script to write")
	flags.VarP(&flagTool, compile.FlagTool, "t", "Generate the compile script for this tool, one of "+flagTool.HelpString())
	flags.StringVar(&flagCompileOptions, compile.FlagCompileOptions, "", "Options to add to the tool compile command (short form: -co)")
	flags.StringVar(&flagConfig, compile.FlagConfig, "", "Read defaults from this TOML file")
	flags.StringArrayVar(&flagExclude, compile.FlagExclude, nil, "Skip files whose path matches this glob (repeatable)")
	flags.StringVar(&flagFilter, compile.FlagFilter, "", "Only keep files for which this expression is true")
	flags.BoolVar(&flagCheck, compile.FlagCheck, false, "Compare with the existing output instead of writing it")

	rootCmd.MarkFlagRequired(compile.FlagInput)
	rootCmd.MarkFlagRequired(compile.FlagOutput)
	rootCmd.RegisterFlagCompletionFunc(compile.FlagTool, flagTool.CompletionFunc())
}

func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
