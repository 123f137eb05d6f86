package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// This small tool generates shell completions and a man page based on the
// known flags. It emits simple completions for common shells and a
// minimal roff man page mirroring --help.

const (
	appName        = "eternal-green"
	appDescription = "Keeps your session active by simulating minimal user input at configurable intervals."
)

type flagDef struct {
	Short string
	Long  string
	Arg   string
	Desc  string
}

var appFlags = []flagDef{
	{Short: "-f", Long: "-config", Arg: "<path>", Desc: "Path to the configuration file"},
	{Short: "-s", Long: "-start", Arg: "", Desc: "Start idle prevention immediately"},
	{Short: "-i", Long: "-interval", Arg: "<string>", Desc: "Session-only interval override (e.g. \"90\" or \"2m\")"},
	{Short: "-v", Long: "-version", Arg: "", Desc: "Show version information"},
	{Short: "-h", Long: "-help", Arg: "", Desc: "Show help message"},
}

func main() {
	if err := writeCompletions(appFlags); err != nil {
		panic(err)
	}
	if err := writeMan(appFlags); err != nil {
		panic(err)
	}
}

func flagNames(flags []flagDef) []string {
	var opts []string
	for _, f := range flags {
		if f.Short != "" {
			opts = append(opts, f.Short)
		}
		if f.Long != "" {
			opts = append(opts, f.Long)
		}
	}
	return opts
}

func writeCompletions(flags []flagDef) error {
	base := filepath.Join("docs", "completions")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}

	var bash strings.Builder
	bash.WriteString("_" + appName + "() {\n")
	bash.WriteString("  local cur\n")
	bash.WriteString("  COMPREPLY=()\n")
	bash.WriteString("  cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	bash.WriteString("  if [[ ${cur} == -* ]] ; then\n")
	bash.WriteString("    COMPREPLY=( $(compgen -W \"" + strings.Join(flagNames(flags), " ") + "\" -- ${cur}) )\n")
	bash.WriteString("  fi\n")
	bash.WriteString("}\n")
	bash.WriteString("complete -F _" + appName + " " + appName + "\n")
	if err := os.WriteFile(filepath.Join(base, appName+".bash"), []byte(bash.String()), 0o644); err != nil {
		return err
	}

	var zsh strings.Builder
	zsh.WriteString("#compdef " + appName + "\n")
	zsh.WriteString("_arguments ")
	var parts []string
	for _, f := range flags {
		name := f.Long
		if f.Arg != "" {
			name += "="
		}
		parts = append(parts, fmt.Sprintf("'%s[%s]'", name, f.Desc))
	}
	zsh.WriteString(strings.Join(parts, " ") + "\n")
	if err := os.WriteFile(filepath.Join(base, "_"+appName), []byte(zsh.String()), 0o644); err != nil {
		return err
	}

	var fish strings.Builder
	fish.WriteString("complete -c " + appName + " -f\n")
	for _, f := range flags {
		fish.WriteString("complete -c " + appName)
		fish.WriteString(" -s " + strings.TrimPrefix(f.Short, "-"))
		fish.WriteString(" -l " + strings.TrimPrefix(f.Long, "-"))
		if f.Arg != "" {
			fish.WriteString(" -r")
		}
		fish.WriteString(" -d \"" + strings.ReplaceAll(f.Desc, "\"", "\\\"") + "\"\n")
	}
	return os.WriteFile(filepath.Join(base, appName+".fish"), []byte(fish.String()), 0o644)
}

func writeMan(flags []flagDef) error {
	if err := os.MkdirAll("man", 0o755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(appName) + "\" \"1\" \"\" \"" + appName + "\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + appName + " - " + appDescription + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n[flags]\n")
	b.WriteString(".SH DESCRIPTION\n" + appDescription + "\n")
	b.WriteString(".SH OPTIONS\n")
	for _, f := range flags {
		names := f.Short + ", " + f.Long
		if f.Arg != "" {
			names += " " + f.Arg
		}
		b.WriteString(".TP\n\\fB" + names + "\\fR\n" + f.Desc + "\n")
	}
	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + appName + "\\fR\nStart the interactive menu.\n")
	b.WriteString(".TP\n\\fB" + appName + " -s -i 2m\\fR\nStart right away with a 2 minute interval for this session.\n")
	return os.WriteFile(filepath.Join("man", appName+".1"), []byte(b.String()), 0o644)
}
