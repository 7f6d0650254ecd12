// Package flagx holds small helpers for sharing os.Args between several
// independent flag sets (config file lookup, component flags, subcommands).
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns only the allowed flags (and their values) from args.
//
// Both "-f value" and "-f=value" forms are recognised. A value is taken from
// the next argument only when it does not itself start with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFileFlag extracts the JSON config path given with -c or -config.
// Every other argument is ignored. Empty string means no file was requested.
func ConfigFileFlag(args []string) string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return config
}

// SplitSubcommand returns the first positional argument as the subcommand and
// everything else (flags before and after it) as the remaining arguments.
func SplitSubcommand(args []string) (string, []string) {
	rest := make([]string, 0, len(args))
	cmd := ""
	for i, a := range args {
		if cmd == "" && !strings.HasPrefix(a, "-") && (i == 0 || !expectsValue(args[i-1])) {
			cmd = a
			continue
		}
		rest = append(rest, a)
	}
	return cmd, rest
}

// expectsValue reports whether a looks like "-flag" (no "=value" part), in which
// case the following argument is treated as its value.
func expectsValue(a string) bool {
	return strings.HasPrefix(a, "-") && !strings.Contains(a, "=")
}
