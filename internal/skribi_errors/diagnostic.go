package skribi_errors

import (
	"fmt"
	"io"
	"strings"
)

// Phase names the pipeline stage a diagnostic was raised in.
type Phase string

const (
	Tokenizing   Phase = "Tokenizer"
	Parsing      Phase = "parsing"
	Interpreting Phase = "interpreter"
	Evaluating   Phase = "evaluation"
)

type Kind int

const (
	InvalidCharacter Kind = iota
	UnterminatedString

	MissingOperand
	MissingOperator
	UnexpectedToken
	UnmatchedBracket
	InvalidLiteral

	NotFound
	UnknownType
	AlreadyExists
	TypeMismatch

	UnknownOperator
	UnknownNode
	DivisionByZero
	InvalidOperands
	Overflow
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	case MissingOperand:
		return "MissingOperand"
	case MissingOperator:
		return "MissingOperator"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnmatchedBracket:
		return "UnmatchedBracket"
	case InvalidLiteral:
		return "InvalidLiteral"
	case NotFound:
		return "NotFound"
	case UnknownType:
		return "UnknownType"
	case AlreadyExists:
		return "AlreadyExists"
	case TypeMismatch:
		return "TypeMismatch"
	case UnknownOperator:
		return "UnknownOperator"
	case UnknownNode:
		return "UnknownNode"
	case DivisionByZero:
		return "DivisionByZero"
	case InvalidOperands:
		return "InvalidOperands"
	case Overflow:
		return "Overflow"
	default:
		panic(fmt.Sprintf("Kind.String(): received illegal diagnostic kind: %d", k))
	}
}

// Error lets a Kind act as a sentinel for errors.Is.
func (k Kind) Error() string {
	return k.String()
}

func (k Kind) Phase() Phase {
	switch k {
	case InvalidCharacter, UnterminatedString:
		return Tokenizing
	case MissingOperand, MissingOperator, UnexpectedToken, UnmatchedBracket, InvalidLiteral:
		return Parsing
	case NotFound, UnknownType, AlreadyExists, TypeMismatch:
		return Interpreting
	default:
		return Evaluating
	}
}

type Position struct {
	Line int
	File string
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("line %d", p.Line)
	}

	return fmt.Sprintf("line %d in %s", p.Line, p.File)
}

// Diagnostic is the error value every stage returns instead of unwinding.
type Diagnostic struct {
	Kind    Kind
	Message string
	Trace   []Position
}

func New(kind Kind, message string, trace ...Position) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: message,
		Trace:   trace,
	}
}

func Newf(kind Kind, trace []Position, format string, args ...any) *Diagnostic {
	return New(kind, fmt.Sprintf(format, args...), trace...)
}

func (d *Diagnostic) Error() string {
	return d.Message
}

func (d *Diagnostic) Phase() Phase {
	return d.Kind.Phase()
}

func (d *Diagnostic) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == d.Kind
}

// WithTrace returns a copy of d positioned at trace.
func (d *Diagnostic) WithTrace(trace []Position) *Diagnostic {
	return &Diagnostic{
		Kind:    d.Kind,
		Message: d.Message,
		Trace:   append([]Position(nil), trace...),
	}
}

func (d *Diagnostic) Render(w io.Writer) {
	fmt.Fprintf(w, "Error %s\n", d.Message)
	fmt.Fprintf(w, "When %s\n", d.Phase())
	for _, pos := range d.Trace {
		fmt.Fprintf(w, "    at: %s\n", pos)
	}
}

func (d *Diagnostic) String() string {
	var b strings.Builder
	d.Render(&b)
	return b.String()
}
