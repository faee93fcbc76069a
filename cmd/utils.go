package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// EnumValue is a pflag.Value restricted to a fixed set of keys. An empty
// default means "not given".
type EnumValue struct {
	value      string
	allowed    map[string]string // value -> help text
	defaultVal string
}

func NewEnumValue(defaultVal string, allowed map[string]string) EnumValue {
	if _, ok := allowed[defaultVal]; !ok && defaultVal != "" {
		panic(fmt.Sprintf("default value %q not in allowed set", defaultVal))
	}
	return EnumValue{
		value:      defaultVal,
		allowed:    allowed,
		defaultVal: defaultVal,
	}
}

func (e *EnumValue) String() string     { return e.value }
func (e *EnumValue) HelpString() string { return "[" + strings.Join(e.AllowedKeys(), ", ") + "]" }
func (e *EnumValue) Type() string       { return "tool" }
func (e *EnumValue) Value() string      { return e.value }

func (e *EnumValue) Set(v string) error {
	if _, ok := e.allowed[v]; ok {
		e.value = v
		return nil
	}
	return fmt.Errorf("unknown tool %q, must be one of: %s", v, strings.Join(e.AllowedKeys(), ", "))
}

// AllowedKeys returns the keys in sorted order
func (e *EnumValue) AllowedKeys() []string {
	keys := make([]string, 0, len(e.allowed))
	for k := range e.allowed {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (e *EnumValue) CompletionFunc() func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		items := make([]string, 0, len(e.allowed))
		for _, k := range e.AllowedKeys() {
			if help := e.allowed[k]; help != "" {
				items = append(items, fmt.Sprintf("%s\t%s", k, help))
			} else {
				items = append(items, k)
			}
		}
		return items, cobra.ShellCompDirectiveNoFileComp
	}
}

// compileOptionsShorthand is the historical two-letter short form of
// --compile-options. pflag only knows single-letter shorthands.
const compileOptionsShorthand = "-co"

// valueFlags take their value from the next argument when given as a bare
// token. That argument is passed through untouched.
var valueFlags = map[string]bool{
	"-i": true, "--input": true,
	"-o": true, "--output": true,
	"-t": true, "--tool": true,
	"--compile-options": true,
	"--config":          true,
	"--exclude":         true,
	"--filter":          true,
}

// normalizeArgs rewrites -co and -co=X into --compile-options. Values of
// other flags and everything after "--" are passed through untouched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == compileOptionsShorthand:
			if i+1 == len(args) {
				// let pflag report the missing value
				out = append(out, "--compile-options")
				continue
			}
			i++
			out = append(out, "--compile-options="+args[i])
		case strings.HasPrefix(arg, compileOptionsShorthand+"="):
			out = append(out, "--compile-options="+arg[len(compileOptionsShorthand)+1:])
		case valueFlags[arg] && i+1 < len(args):
			out = append(out, arg, args[i+1])
			i++
		default:
			out = append(out, arg)
		}
	}
	return out
}
