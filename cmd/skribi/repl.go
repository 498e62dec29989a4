package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kievzenit/skribi/internal/config"
	"github.com/kievzenit/skribi/internal/interpreter"
	"github.com/peterh/liner"
)

const helpText = `Shell commands:
  :load <file>  Run a file in its own scope
  :help         Show this message
  :quit, :exit  Leave the shell
Anything else is run as a line; variables persist between lines.`

func repl(in *interpreter.Interpreter, cfg *config.Config, stdout, stderr io.Writer) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	historyPath, err := cfg.HistoryPath()
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(stderr, err)
			}
			fmt.Fprintln(stdout)
			return 0
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if quit := handleLine(in, line, stdout, stderr); quit {
			return 0
		}
	}
}

// handleLine runs one shell line and reports whether the shell should stop.
func handleLine(in *interpreter.Interpreter, line string, stdout, stderr io.Writer) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		in.Exec(line, false)
		return false
	}

	command, arg, _ := strings.Cut(trimmed, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case ":quit", ":exit":
		return true
	case ":help":
		fmt.Fprintln(stdout, helpText)
	case ":load":
		if arg == "" {
			fmt.Fprintln(stderr, "usage: :load <file>")
			break
		}
		runFile(in, arg, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %s, type :help for a list\n", command)
	}

	return false
}
