package interpreter

import (
	"github.com/kievzenit/skribi/internal/ast"
	"github.com/kievzenit/skribi/internal/lexer"
	"github.com/kievzenit/skribi/internal/parser"
	"github.com/kievzenit/skribi/internal/scope"
	"github.com/kievzenit/skribi/internal/value"
)

// SkribiFile is one source unit. It is also the top-level scope its
// statements bind into.
type SkribiFile struct {
	*scope.Scope

	Content []byte
	Path    string

	Tokens  []lexer.Token
	Parser  *parser.Parser
	Program *ast.Program
	Result  value.Value
}

func NewSkribiFile(path string, parent *scope.Scope) *SkribiFile {
	return &SkribiFile{
		Scope: scope.New(path, parent),
		Path:  path,
	}
}

// Load replaces the content of the file and drops everything derived from
// the previous content. Bindings in the scope are kept.
func (f *SkribiFile) Load(content []byte) {
	f.Content = content
	f.Tokens = nil
	f.Parser = nil
	f.Program = nil
	f.Result = nil
}

// Tokenize keeps the tokens read before a lexer error, so they can still be
// dumped.
func (f *SkribiFile) Tokenize() error {
	tokens, err := lexer.NewLexer(f.Content, f.Path).Tokenize()
	f.Tokens = tokens
	return err
}

func (f *SkribiFile) Parse() error {
	f.Parser = parser.NewParser(f.Path, lexer.NewTokenScanner(f.Tokens))

	program, err := f.Parser.Parse()
	if err != nil {
		return err
	}

	f.Program = program
	return nil
}
