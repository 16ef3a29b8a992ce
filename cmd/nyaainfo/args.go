package main

import "strings"

// valueFlags are the options that take the next token as their value.
var valueFlags = map[string]bool{
	"u":          true,
	flagUser:     true,
	"p":          true,
	flagPassword: true,
	flagHost:     true,
}

// hoistFlags moves options ahead of positional arguments so they may appear
// anywhere on the command line. The cli package stops reading flags at the
// first positional. Everything after "--" stays positional.
func hoistFlags(args []string) []string {
	if len(args) == 0 {
		return args
	}

	flags := []string{args[0]}
	var positionals []string

	for i := 1; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}

		if len(arg) < 2 || arg[0] != '-' {
			positionals = append(positionals, arg)
			continue
		}

		flags = append(flags, arg)

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if valueFlags[name] && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	if len(positionals) == 0 {
		return flags
	}
	return append(append(flags, "--"), positionals...)
}
