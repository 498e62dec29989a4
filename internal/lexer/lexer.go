package lexer

import (
	"iter"
	"strconv"
	"unicode/utf8"

	"github.com/kievzenit/skribi/internal/skribi_errors"
)

type Lexer struct {
	buf []byte
	pos int

	line     int
	fileName string
}

func NewLexer(buf []byte, fileName string) *Lexer {
	return &Lexer{
		buf: buf,
		pos: 0,

		line:     1,
		fileName: fileName,
	}
}

// Tokens lazily yields the tokens of the buffer, finishing with EOF. The
// first invalid character yields a diagnostic and ends the sequence. The
// sequence shares the lexer position, so it cannot be restarted.
func (l *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for l.hasChars() {
			token, ok, err := l.scan()
			if err != nil {
				yield(Token{}, err)
				return
			}
			l.advance()

			if ok && !yield(token, nil) {
				return
			}
		}

		yield(Token{
			Kind:  EOF,
			Value: EOF.String(),
			Line:  l.line,
		}, nil)
	}
}

// Tokenize drains Tokens. On failure the tokens produced before the
// offending character are returned together with the diagnostic.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for token, err := range l.Tokens() {
		if err != nil {
			return tokens, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

func (l *Lexer) scan() (Token, bool, error) {
	switch {
	case l.isCurrNewline():
		l.line++
		return Token{
			Kind:  NEWLINE,
			Value: strconv.Itoa(l.line),
			Line:  l.line - 1,
		}, true, nil

	case l.isCurrSkippable():
		return Token{}, false, nil

	case l.isCurrDigit():
		return l.processNumber(), true, nil

	case l.read() == '-' && l.isNextDigit():
		return l.processNumber(), true, nil

	case l.isCurrLetter():
		return l.processIdentifier(), true, nil

	case l.read() == '"':
		token, err := l.processStringLiteral()
		return token, err == nil, err

	case l.isCurrPunctuation():
		return l.processPunctuation(), true, nil
	}

	return Token{}, false, l.unexpected()
}

func (l *Lexer) position() skribi_errors.Position {
	return skribi_errors.Position{
		Line: l.line,
		File: l.fileName,
	}
}

func (l *Lexer) unexpected() error {
	char, _ := utf8.DecodeRune(l.buf[l.pos:])
	return skribi_errors.Newf(
		skribi_errors.InvalidCharacter,
		[]skribi_errors.Position{l.position()},
		"invalid character: '%c'", char)
}

func (l *Lexer) isCurrLetter() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z')
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isNextDigit() bool {
	return l.pos+1 < len(l.buf) && l.next() >= '0' && l.next() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '^', '=', '!', '<', '>', '(', ')', '{', '}', ':':
		return true
	}
	return false
}

func (l *Lexer) isCurrNewline() bool {
	return l.read() == '\n'
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	line := l.line
	identifierBuf := make([]byte, 0)
	identifierBuf = append(identifierBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrLetter() && !l.isCurrDigit() {
			break
		}

		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	l.unread()
	identifier := string(identifierBuf)

	switch identifier {
	case "true", "false":
		return Token{
			Kind:  BOOL,
			Value: identifier,
			Line:  line,
		}
	}

	return Token{
		Kind:  IDENT,
		Value: identifier,
		Line:  line,
	}
}

// processNumber leaves the lexer on the last character of the literal.
func (l *Lexer) processNumber() Token {
	line := l.line
	numberBuf := make([]byte, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	var isFloat bool
	for l.hasChars() {
		if !isFloat && l.read() == '.' {
			isFloat = true
			numberBuf = append(numberBuf, l.read())

			l.advance()
			if !l.hasChars() || !l.isCurrDigit() {
				isFloat = false
				l.unread()
				numberBuf = numberBuf[:len(numberBuf)-1]
				break
			}
		}

		if !l.isCurrDigit() {
			break
		}

		numberBuf = append(numberBuf, l.read())
		l.advance()
	}
	l.unread()

	if isFloat {
		return Token{
			Kind:  FLOAT,
			Value: string(numberBuf),
			Line:  line,
		}
	}

	return Token{
		Kind:  INT,
		Value: string(numberBuf),
		Line:  line,
	}
}

// processStringLiteral keeps escape characters in the value; a backslash
// only stops the following quote from closing the literal.
func (l *Lexer) processStringLiteral() (Token, error) {
	line := l.line
	l.advance()

	stringBuf := make([]byte, 0)
	var escaped bool
	for l.hasChars() {
		if l.read() == '"' && !escaped {
			return Token{
				Kind:  STRING,
				Value: string(stringBuf),
				Line:  line,
			}, nil
		}

		if l.isCurrNewline() {
			l.line++
		}

		escaped = l.read() == '\\' && !escaped
		stringBuf = append(stringBuf, l.read())
		l.advance()
	}

	return Token{}, skribi_errors.New(
		skribi_errors.UnterminatedString,
		"expected '\"' to close the string literal",
		skribi_errors.Position{Line: line, File: l.fileName})
}

func (l *Lexer) processEquals() Token {
	l.advance()
	if l.hasChars() && l.read() == '=' {
		return Token{
			Kind:  COMPARISON,
			Value: "==",
			Line:  l.line,
		}
	}

	l.unread()
	return Token{
		Kind:  EQUAL,
		Value: "=",
		Line:  l.line,
	}
}

func (l *Lexer) processExclamationMark() Token {
	l.advance()
	if l.hasChars() && l.read() == '=' {
		return Token{
			Kind:  COMPARISON,
			Value: "!=",
			Line:  l.line,
		}
	}

	l.unread()
	return Token{
		Kind:  OPERATOR,
		Value: "!",
		Line:  l.line,
	}
}

func (l *Lexer) processAngle() Token {
	angle := string(l.read())

	l.advance()
	if l.hasChars() && l.read() == '=' {
		return Token{
			Kind:  COMPARISON,
			Value: angle + "=",
			Line:  l.line,
		}
	}

	l.unread()
	return Token{
		Kind:  COMPARISON,
		Value: angle,
		Line:  l.line,
	}
}

func (l *Lexer) processPunctuation() Token {
	switch l.read() {
	case '+', '-', '*', '/', '^':
		return Token{
			Kind:  OPERATOR,
			Value: string(l.read()),
			Line:  l.line,
		}
	case '(', ')':
		return Token{
			Kind:  BRACKET,
			Value: string(l.read()),
			Line:  l.line,
		}
	case '{', '}':
		return Token{
			Kind:  BRACE,
			Value: string(l.read()),
			Line:  l.line,
		}
	case ':':
		return Token{
			Kind:  COLON,
			Value: ":",
			Line:  l.line,
		}
	case '=':
		return l.processEquals()
	case '!':
		return l.processExclamationMark()
	case '<', '>':
		return l.processAngle()
	}

	panic("unreachable")
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) next() byte { return l.buf[l.pos+1] }
func (l *Lexer) read() byte { return l.buf[l.pos] }
func (l *Lexer) unread()    { l.pos-- }
