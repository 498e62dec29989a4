package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kievzenit/skribi/internal/skribi_errors"
	"github.com/kievzenit/skribi/internal/value"
)

func newTestInterpreter(opts ...Option) (*Interpreter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	opts = append([]Option{WithOutput(&out), WithErrorOutput(&errOut)}, opts...)

	return New(opts...), &out, &errOut
}

func TestRunValues(t *testing.T) {
	tests := []struct {
		src  string
		want value.Value
	}{
		{"3 + 4 + 5", value.IntValue(12)},
		{"2 + 3 * 4", value.IntValue(14)},
		{"2 ^ 3 + 1", value.IntValue(9)},
		{"(1 + 2) * 3", value.IntValue(9)},
		{"2 ^ 3 ^ 2", value.IntValue(512)},
		{"10 - 2 - 3", value.IntValue(5)},
		{"3 -4", value.IntValue(-1)},
		{"3-4", value.IntValue(-1)},
		{"-3 * -2", value.IntValue(6)},
		{"-(2 + 3)", value.IntValue(-5)},
		{"7 / 2", value.FloatValue(3.5)},
		{"1.5 * 2", value.FloatValue(3)},
		{"2 ^ -1", value.FloatValue(0.5)},
		{"1 < 2", value.BoolValue(true)},
		{"2 <= 1", value.BoolValue(false)},
		{"(1 < 2) + 1", value.IntValue(2)},
		{"1 + 1 == 2", value.BoolValue(true)},
		{"!false", value.BoolValue(true)},
		{`"ab" + "cd"`, value.StringValue("abcd")},
		{`"abc" < "abd"`, value.BoolValue(true)},
		{`"a" == 1`, value.BoolValue(false)},
	}

	for _, tt := range tests {
		in, _, _ := newTestInterpreter()

		got, err := in.Run(tt.src, true)
		if err != nil {
			t.Fatalf("Run(%q) returned error: %v", tt.src, err)
		}
		if got != tt.want {
			t.Errorf("Run(%q) = %#v, want %#v", tt.src, got, tt.want)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		src   string
		kind  skribi_errors.Kind
		phase skribi_errors.Phase
	}{
		{"1 + $", skribi_errors.InvalidCharacter, skribi_errors.Tokenizing},
		{`"abc`, skribi_errors.UnterminatedString, skribi_errors.Tokenizing},
		{"(1 + 2", skribi_errors.UnmatchedBracket, skribi_errors.Parsing},
		{"1 2", skribi_errors.MissingOperator, skribi_errors.Parsing},
		{"1 +", skribi_errors.MissingOperand, skribi_errors.Parsing},
		{"y", skribi_errors.NotFound, skribi_errors.Interpreting},
		{"x: number = 1", skribi_errors.UnknownType, skribi_errors.Interpreting},
		{"x = 5\nx = \"text\"", skribi_errors.TypeMismatch, skribi_errors.Interpreting},
		{"1 / 0", skribi_errors.DivisionByZero, skribi_errors.Evaluating},
		{"1.5 / 0", skribi_errors.DivisionByZero, skribi_errors.Evaluating},
		{`"a" + 3`, skribi_errors.InvalidOperands, skribi_errors.Evaluating},
		{`-"a"`, skribi_errors.InvalidOperands, skribi_errors.Evaluating},
		{"9223372036854775807 + 1", skribi_errors.Overflow, skribi_errors.Evaluating},
		{"2 ^ 64", skribi_errors.Overflow, skribi_errors.Evaluating},
		{"2 ^ 63", skribi_errors.Overflow, skribi_errors.Evaluating},
		{"3037000500 * 3037000500", skribi_errors.Overflow, skribi_errors.Evaluating},
		{"- (-9223372036854775807 - 1)", skribi_errors.Overflow, skribi_errors.Evaluating},
	}

	for _, tt := range tests {
		in, _, _ := newTestInterpreter()

		_, err := in.Run(tt.src, true)
		if !errors.Is(err, tt.kind) {
			t.Errorf("Run(%q) error = %v, want %s", tt.src, err, tt.kind)
			continue
		}

		var diag *skribi_errors.Diagnostic
		if !errors.As(err, &diag) {
			t.Fatalf("Run(%q) returned %T, want *Diagnostic", tt.src, err)
		}
		if diag.Phase() != tt.phase {
			t.Errorf("Run(%q) phase = %q, want %q", tt.src, diag.Phase(), tt.phase)
		}
	}
}

func TestRunFileResultIsLastStatement(t *testing.T) {
	in, _, _ := newTestInterpreter()

	got, err := in.RunFile("main.skr", []byte("x = 2\ny: float = x * 1.5\n\ny - x\n"))
	if err != nil {
		t.Fatalf("RunFile returned error: %v", err)
	}
	if got != value.FloatValue(1) {
		t.Fatalf("expected 1.0, got %#v", got)
	}

	got, err = in.RunFile("main.skr", []byte("x = 2\nx = x + 40"))
	if err != nil {
		t.Fatalf("RunFile returned error: %v", err)
	}
	if got != value.IntValue(42) {
		t.Fatalf("expected the assigned value 42, got %#v", got)
	}
}

func TestEmptyProgramHasNoResult(t *testing.T) {
	in, out, _ := newTestInterpreter()

	if !in.Exec("\n\n", true) {
		t.Fatalf("empty program must succeed")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestSessionPersistsBindings(t *testing.T) {
	in, _, _ := newTestInterpreter()

	if _, err := in.Run("x = 5", false); err != nil {
		t.Fatalf("declaring x failed: %v", err)
	}

	got, err := in.Run("x * 2", false)
	if err != nil {
		t.Fatalf("reading x failed: %v", err)
	}
	if got != value.IntValue(10) {
		t.Fatalf("expected 10, got %#v", got)
	}

	if _, err := in.Run("x = x + 1", false); err != nil {
		t.Fatalf("reassigning x failed: %v", err)
	}
	variable, err := in.Session().GetVariable("x")
	if err != nil || variable.Value != value.IntValue(6) {
		t.Fatalf("expected x = 6 in the session, got %v (%v)", variable.Value, err)
	}
}

func TestFileBindingsDoNotLeak(t *testing.T) {
	in, _, _ := newTestInterpreter()

	if _, err := in.Run("secret = 1", true); err != nil {
		t.Fatalf("file run failed: %v", err)
	}

	_, err := in.Run("secret", false)
	if !errors.Is(err, skribi_errors.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestFileSeesNothingFromSession(t *testing.T) {
	in, _, _ := newTestInterpreter()

	if _, err := in.Run("x = 1", false); err != nil {
		t.Fatalf("session run failed: %v", err)
	}

	_, err := in.Run("x", true)
	if !errors.Is(err, skribi_errors.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestPartialExecutionIsKept(t *testing.T) {
	in, _, _ := newTestInterpreter()

	_, err := in.Run("a = 1\nb = a / 0\nc = 3", false)
	if !errors.Is(err, skribi_errors.DivisionByZero) {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}

	if !in.Session().CheckName("a") {
		t.Fatalf("a should survive the failing statement")
	}
	if in.Session().CheckName("b") || in.Session().CheckName("c") {
		t.Fatalf("statements after the failure must not run")
	}
}

func TestSessionSurvivesDiagnostics(t *testing.T) {
	in, out, errOut := newTestInterpreter()

	if in.Exec("1 +", false) {
		t.Fatalf("expected failure")
	}
	if !in.Exec("1 + 1", false) {
		t.Fatalf("session must accept input after a diagnostic")
	}

	if out.String() != "2\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if !strings.HasPrefix(errOut.String(), "Error expected a number, found end of input\nWhen parsing\n") {
		t.Fatalf("unexpected diagnostic %q", errOut.String())
	}
}

func TestDiagnosticTraceNamesLine(t *testing.T) {
	in, _, errOut := newTestInterpreter()

	in.ExecFile("main.skr", []byte("a = 1\n\nb = missing + a"))

	want := "Error Variable 'missing' not found\nWhen interpreter\n    at: line 3 in main.skr\n"
	if errOut.String() != want {
		t.Fatalf("got %q, want %q", errOut.String(), want)
	}
}

func TestSessionLabel(t *testing.T) {
	in, _, errOut := newTestInterpreter(WithSessionLabel("shell"))

	in.Exec("1 / 0", false)

	if !strings.Contains(errOut.String(), "at: line 1 in shell") {
		t.Fatalf("unexpected diagnostic %q", errOut.String())
	}
}

func TestDumps(t *testing.T) {
	in, out, _ := newTestInterpreter(WithTokenDump(true), WithAstDump(true))

	if !in.Exec("1 + 2", true) {
		t.Fatalf("expected success")
	}

	dump := out.String()
	for _, want := range []string{"lexer.Token", `Value: "+"`, "ast.Program", "ast.OperatorNode", "3\n"} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump is missing %q:\n%s", want, dump)
		}
	}
}

func TestTokenDumpOnLexerError(t *testing.T) {
	in, out, _ := newTestInterpreter(WithTokenDump(true))

	if in.Exec("7 $", true) {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(out.String(), `Value: "7"`) {
		t.Fatalf("tokens read before the error should be dumped:\n%s", out.String())
	}
}

func TestBlockRebindsOuterVariable(t *testing.T) {
	in, _, _ := newTestInterpreter()

	got, err := in.Run("x = 5\n{\n  x = x + 1\n  y = 10\n}\nx", false)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != value.IntValue(6) {
		t.Fatalf("expected x rebound to 6, got %#v", got)
	}

	if in.Session().CheckName("y") {
		t.Fatalf("y was created inside the block and must not be visible outside it")
	}
}

func TestBlockReadsInnerDeclaration(t *testing.T) {
	in, _, _ := newTestInterpreter()

	got, err := in.Run("kodi inner {\n  x = 5\n  x\n}", true)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != value.IntValue(5) {
		t.Fatalf("expected the block to yield 5, got %#v", got)
	}

	_, err = in.Run("{ x = 5 }\nx", true)
	if !errors.Is(err, skribi_errors.NotFound) {
		t.Fatalf("expected NotFound outside the block, got %v", err)
	}
}

func TestBlockRebindKeepsType(t *testing.T) {
	in, _, _ := newTestInterpreter()

	_, err := in.Run("x = 5\n{ x = \"text\" }", true)
	if !errors.Is(err, skribi_errors.TypeMismatch) {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestBlockDiagnosticTrace(t *testing.T) {
	in, _, errOut := newTestInterpreter()

	in.ExecFile("main.skr", []byte("a = 1\nkodi outer {\n  b = 2\n  {\n    c = b / 0\n  }\n}"))

	want := "Error division by zero\nWhen evaluation\n" +
		"    at: line 2 in main.skr\n" +
		"    at: line 4 in main.skr\n" +
		"    at: line 5 in main.skr\n"
	if errOut.String() != want {
		t.Fatalf("got %q, want %q", errOut.String(), want)
	}
}

func TestBlockScopesArePopped(t *testing.T) {
	in, _, _ := newTestInterpreter()

	if _, err := in.Run("{ { 1 / 0 } }", false); !errors.Is(err, skribi_errors.DivisionByZero) {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}
	if in.stack.Len() != 0 {
		t.Fatalf("scope stack must be empty after a run, has %d scopes", in.stack.Len())
	}
}

func TestUniverseOwnsPrimitives(t *testing.T) {
	in, _, _ := newTestInterpreter()

	for _, name := range []string{"int", "float", "string", "bool"} {
		primitive, err := in.Session().GetType(name)
		if err != nil {
			t.Fatalf("GetType(%q) returned error: %v", name, err)
		}
		if primitive.Scope == nil || primitive.Scope.Name() != in.universe.Name() {
			t.Errorf("%s must be owned by %s, got %v", name, in.universe.Name(), primitive.Scope)
		}
	}
}
