// Package flagx lets several components share os.Args: each one filters
// out the flags it owns before handing them to its own flag.FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Set describes a group of flags. Valued flags take an argument (either
// "-f value" or "-f=value"); switches never consume the following token.
type Set struct {
	Valued   []string
	Switches []string
}

// key folds "--name" into "-name"; the flag package accepts both.
func key(arg string) string {
	if strings.HasPrefix(arg, "--") && len(arg) > 2 {
		return arg[1:]
	}
	return arg
}

func index(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[key(n)] = struct{}{}
	}
	return m
}

// Filter returns the subset of args that belongs to s, values included.
// Names match in both -name and --name form. Scanning stops at "--".
func (s Set) Filter(args []string) []string {
	valued := index(s.Valued)
	switches := index(s.Switches)

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := key(strings.SplitN(arg, "=", 2)[0])
			_, v := valued[name]
			_, sw := switches[name]
			if v || sw {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := switches[key(arg)]; ok {
			filtered = append(filtered, arg)
			continue
		}

		if _, ok := valued[key(arg)]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// Positional returns the arguments that are neither flags nor values of
// valued flags in s. Everything after "--" is positional.
func (s Set) Positional(args []string) []string {
	valued := index(s.Valued)

	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i+1:]...)
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			out = append(out, arg)
			continue
		}
		if strings.Contains(arg, "=") {
			continue
		}
		if _, ok := valued[key(arg)]; ok && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
		}
	}
	return out
}

// FilterArgs keeps only allowedFlags (all treated as valued) and their values.
func FilterArgs(args []string, allowedFlags []string) []string {
	return Set{Valued: allowedFlags}.Filter(args)
}

// StringFlag returns the value of the first-named flag among names found in
// args, last occurrence wins. Names are given without the leading dash.
// An absent flag yields "".
func StringFlag(args []string, names ...string) string {
	dashed := make([]string, 0, len(names))
	for _, n := range names {
		dashed = append(dashed, "-"+n)
	}

	var value string
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(args, dashed))

	return value
}
