package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/kievzenit/skribi/internal/scope"
	"github.com/kievzenit/skribi/internal/skribi_errors"
	"github.com/kievzenit/skribi/internal/types"
	"github.com/kievzenit/skribi/internal/value"
	"github.com/sanity-io/litter"
)

const (
	DefaultSessionLabel = "<stdin>"
	DefaultFileLabel    = "<file>"
)

type Interpreter struct {
	universe *scope.Scope
	session  *SkribiFile

	stack     *scope.ScopeStack
	evaluator *Evaluator

	out io.Writer
	eh  skribi_errors.ErrorHandler

	dumpTokens bool
	dumpAst    bool
}

type Option func(*Interpreter)

// WithOutput sets where results and dumps are printed.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

// WithErrorOutput sets where diagnostics are rendered.
func WithErrorOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.eh = skribi_errors.NewErrorHandler(w)
	}
}

func WithSessionLabel(label string) Option {
	return func(in *Interpreter) {
		in.session = NewSkribiFile(label, in.universe)
	}
}

func WithTokenDump(enabled bool) Option {
	return func(in *Interpreter) {
		in.dumpTokens = enabled
	}
}

func WithAstDump(enabled bool) Option {
	return func(in *Interpreter) {
		in.dumpAst = enabled
	}
}

func New(opts ...Option) *Interpreter {
	universe := scope.New(types.UniverseName, nil)
	for _, primitive := range types.Primitives() {
		if err := universe.CreateType(primitive); err != nil {
			panic(err)
		}
	}

	stack := scope.NewScopeStack()
	in := &Interpreter{
		universe: universe,
		session:  NewSkribiFile(DefaultSessionLabel, universe),

		stack:     stack,
		evaluator: NewEvaluator(stack),

		out: os.Stdout,
		eh:  skribi_errors.NewErrorHandler(os.Stderr),
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Session is the top-level scope shared by every interactive line.
func (in *Interpreter) Session() *SkribiFile {
	return in.session
}

// Run executes source. A file gets a fresh top-level scope whose bindings
// are dropped afterwards; an interactive line runs in the session scope.
func (in *Interpreter) Run(source string, isFile bool) (value.Value, error) {
	if isFile {
		return in.RunFile(DefaultFileLabel, []byte(source))
	}

	in.session.Load([]byte(source))
	return in.run(in.session)
}

func (in *Interpreter) RunFile(path string, content []byte) (value.Value, error) {
	file := NewSkribiFile(path, in.universe)
	file.Load(content)

	return in.run(file)
}

// Exec runs source and prints either its result or its diagnostic. It
// reports whether the run succeeded.
func (in *Interpreter) Exec(source string, isFile bool) bool {
	return in.Report(in.Run(source, isFile))
}

func (in *Interpreter) ExecFile(path string, content []byte) bool {
	return in.Report(in.RunFile(path, content))
}

// Report prints a non-nil result, or renders err through the error handler.
func (in *Interpreter) Report(result value.Value, err error) bool {
	if err != nil {
		in.eh.AddError(err)
		in.eh.Flush()
		return false
	}

	if result != nil {
		fmt.Fprintln(in.out, result.String())
	}
	return true
}

// run stops at the first diagnostic. Bindings made by earlier statements
// stay in place.
func (in *Interpreter) run(file *SkribiFile) (value.Value, error) {
	err := file.Tokenize()
	if in.dumpTokens {
		fmt.Fprintln(in.out, litter.Sdump(file.Tokens))
	}
	if err != nil {
		return nil, err
	}

	if err := file.Parse(); err != nil {
		return nil, err
	}
	if in.dumpAst {
		fmt.Fprintln(in.out, litter.Sdump(file.Program))
	}

	result, err := in.evaluator.ExecuteIn(file.Scope, file.Program.Stmts)
	if err != nil {
		return nil, err
	}

	file.Result = result
	return result, nil
}
