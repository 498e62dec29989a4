package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kievzenit/skribi/internal/config"
	"github.com/kievzenit/skribi/internal/interpreter"
)

type options struct {
	configPath string

	prompt      string
	historyFile string
	shellLabel  string
	dumpTokens  bool
	dumpAst     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("skribi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: skribi [flags] [file ...]")
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "path to the YAML config (default ~/"+config.FileName+")")
	fs.StringVar(&opts.prompt, "prompt", "", "shell prompt")
	fs.StringVar(&opts.historyFile, "history", "", "shell history file, empty to disable")
	fs.StringVar(&opts.shellLabel, "label", "", "name shell diagnostics point at")
	fs.BoolVar(&opts.dumpTokens, "dump-tokens", false, "print the token stream before running")
	fs.BoolVar(&opts.dumpAst, "dump-ast", false, "print the syntax tree before running")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	applyFlags(fs, cfg, &opts)

	in := interpreter.New(
		interpreter.WithOutput(stdout),
		interpreter.WithErrorOutput(stderr),
		interpreter.WithSessionLabel(cfg.ShellLabel),
		interpreter.WithTokenDump(cfg.DumpTokens),
		interpreter.WithAstDump(cfg.DumpAst),
	)

	if fs.NArg() == 0 {
		return repl(in, cfg, stdout, stderr)
	}

	status := 0
	for _, fileName := range fs.Args() {
		if !runFile(in, fileName, stderr) {
			status = 1
		}
	}
	return status
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	defaultPath, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.LoadOptional(defaultPath)
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(fs *flag.FlagSet, cfg *config.Config, opts *options) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			cfg.Prompt = opts.prompt
		case "history":
			cfg.HistoryFile = opts.historyFile
		case "label":
			cfg.ShellLabel = opts.shellLabel
		case "dump-tokens":
			cfg.DumpTokens = opts.dumpTokens
		case "dump-ast":
			cfg.DumpAst = opts.dumpAst
		}
	})
}

func runFile(in *interpreter.Interpreter, fileName string, stderr io.Writer) bool {
	fileData, err := os.ReadFile(fileName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return false
	}

	return in.ExecFile(fileName, fileData)
}
