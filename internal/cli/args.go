package cli

import "strings"

// shortAliases maps the two-letter single-dash flag aliases to their long
// forms. pflag shorthands are single letters, so these are rewritten before
// parsing.
var shortAliases = map[string]string{
	"-ih": "--input_haystack",
	"-in": "--input_needle",
	"-hc": "--haystack_col",
	"-nc": "--needle_col",
	"-hd": "--haystack_delim",
	"-nd": "--needle_delim",
	"-hh": "--haystack_header",
	"-nh": "--needle_header",
	"-sc": "--split_col",
	"-sd": "--split_delim",
}

// NormalizeArgs rewrites two-letter aliases ("-ih x", "-ih=x") to long flags.
// When the first argument is a flag and an extract flag is present, the
// extract subcommand is inserted so flat invocations keep working.
// Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	extractFlag := false

	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := shortAliases[name]; ok {
			arg = long
			if hasValue {
				arg += "=" + value
			}
		}
		if isExtractFlag(arg) {
			extractFlag = true
		}
		out = append(out, arg)
	}

	if extractFlag && len(out) > 0 && strings.HasPrefix(out[0], "-") {
		out = append([]string{"extract"}, out...)
	}
	return out
}

func isExtractFlag(arg string) bool {
	name, _, _ := strings.Cut(arg, "=")
	for _, long := range shortAliases {
		if name == long {
			return true
		}
	}
	return false
}
