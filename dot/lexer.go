// SPDX-License-Identifier: MIT

package dot

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokOperator
	tokDelim
)

func (k tokenKind) String() string {
	switch k {
	case tokIdent:
		return "identifier"
	case tokNumber:
		return "number"
	case tokString:
		return "string"
	case tokOperator:
		return "operator"
	case tokDelim:
		return "delimiter"
	default:
		return "end of input"
	}
}

type token struct {
	kind tokenKind
	text string
	line int
}

// is reports whether t is the operator or delimiter s.
func (t token) is(s string) bool {
	return (t.kind == tokOperator || t.kind == tokDelim) && t.text == s
}

// isID reports whether t can serve as a DOT ID.
func (t token) isID() bool {
	return t.kind == tokIdent || t.kind == tokNumber || t.kind == tokString
}

// keyword reports whether t is the (case-insensitive) keyword kw.
func (t token) keyword(kw string) bool {
	return t.kind == tokIdent && strings.EqualFold(t.text, kw)
}

func (t token) describe() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.kind, t.text)
}

var keywords = []string{"strict", "graph", "digraph", "subgraph", "node", "edge"}

func isKeyword(s string) bool {
	for _, kw := range keywords {
		if strings.EqualFold(s, kw) {
			return true
		}
	}
	return false
}

// session is the per-parse tokenizer state.
type session struct {
	src  []rune
	pos  int
	line int

	// level is the brace nesting depth.
	level int
	// inAttrs is set between '[' and ']'.
	inAttrs bool
	// readingValue is set after '=' until the value token is read.
	readingValue bool

	peeked *token
}

func newSession(src string) *session {
	return &session{src: []rune(src), line: 1}
}

func (s *session) errorf(kind error, format string, args ...interface{}) error {
	return &ParseError{Line: s.line, Msg: fmt.Sprintf(format, args...), Kind: kind}
}

func (s *session) at(off int) rune {
	if s.pos+off < len(s.src) {
		return s.src[s.pos+off]
	}
	return 0
}

func (s *session) eof() bool { return s.pos >= len(s.src) }

// advance consumes one rune, counting newlines.
func (s *session) advance() rune {
	r := s.src[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
	}
	return r
}

// peek returns the next token without consuming it.
func (s *session) peek() (token, error) {
	if s.peeked != nil {
		return *s.peeked, nil
	}
	t, err := s.scan()
	if err != nil {
		return token{}, err
	}
	s.peeked = &t
	return t, nil
}

// next consumes and returns the next token.
func (s *session) next() (token, error) {
	if s.peeked != nil {
		t := *s.peeked
		s.peeked = nil
		return t, nil
	}
	return s.scan()
}

// skipSpace skips whitespace and comments.
func (s *session) skipSpace() error {
	for !s.eof() {
		r := s.at(0)
		switch {
		case unicode.IsSpace(r):
			s.advance()
		case r == '#' || (r == '/' && s.at(1) == '/'):
			for !s.eof() && s.at(0) != '\n' {
				s.advance()
			}
		case r == '/' && s.at(1) == '*':
			start := s.line
			s.advance()
			s.advance()
			for {
				if s.eof() {
					return &ParseError{Line: start, Msg: "unterminated comment", Kind: ErrUnterminated}
				}
				if s.at(0) == '*' && s.at(1) == '/' {
					s.advance()
					s.advance()
					break
				}
				s.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

func isIDStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIDPart(r rune) bool { return isIDStart(r) || unicode.IsDigit(r) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// scan reads one token and updates the session flags.
func (s *session) scan() (token, error) {
	if err := s.skipSpace(); err != nil {
		return token{}, err
	}
	line := s.line
	if s.eof() {
		return token{kind: tokEOF, line: line}, nil
	}
	r := s.at(0)
	switch {
	case r == '"':
		text, err := s.scanString()
		if err != nil {
			return token{}, err
		}
		s.readingValue = false
		return token{kind: tokString, text: text, line: line}, nil

	case isIDStart(r):
		start := s.pos
		for !s.eof() && isIDPart(s.at(0)) {
			s.advance()
		}
		s.readingValue = false
		return token{kind: tokIdent, text: string(s.src[start:s.pos]), line: line}, nil

	case isDigit(r) || (r == '.' && isDigit(s.at(1))) ||
		(r == '-' && (isDigit(s.at(1)) || (s.at(1) == '.' && isDigit(s.at(2))))):
		text, err := s.scanNumber()
		if err != nil {
			return token{}, err
		}
		s.readingValue = false
		return token{kind: tokNumber, text: text, line: line}, nil

	case r == '-':
		s.advance()
		switch s.at(0) {
		case '-':
			s.advance()
			return token{kind: tokOperator, text: "--", line: line}, nil
		case '>':
			s.advance()
			return token{kind: tokOperator, text: "->", line: line}, nil
		}
		return token{}, s.errorf(ErrSyntax, "stray '-'")

	case r == '=':
		s.advance()
		s.readingValue = true
		return token{kind: tokOperator, text: "=", line: line}, nil
	}

	s.advance()
	switch r {
	case '{':
		if s.inAttrs {
			return token{}, s.errorf(ErrSyntax, "'{' inside attribute list")
		}
		s.level++
	case '}':
		if s.inAttrs {
			return token{}, s.errorf(ErrSyntax, "'}' inside attribute list")
		}
		if s.level == 0 {
			return token{}, s.errorf(ErrSyntax, "unbalanced '}'")
		}
		s.level--
	case '[':
		if s.inAttrs {
			return token{}, s.errorf(ErrSyntax, "nested '['")
		}
		s.inAttrs = true
	case ']':
		if !s.inAttrs {
			return token{}, s.errorf(ErrSyntax, "unbalanced ']'")
		}
		s.inAttrs = false
	case ',', ';':
	default:
		return token{}, s.errorf(ErrSyntax, "unexpected character %q", r)
	}
	return token{kind: tokDelim, text: string(r), line: line}, nil
}

// scanString reads a double-quoted string. \" and \\ are escapes, a
// backslash-newline pair continues the line, and any other backslash is
// kept as is.
func (s *session) scanString() (string, error) {
	start := s.line
	s.advance()
	var b strings.Builder
	for {
		if s.eof() {
			return "", &ParseError{Line: start, Msg: "unterminated string", Kind: ErrUnterminated}
		}
		r := s.advance()
		switch {
		case r == '"':
			return b.String(), nil
		case r == '\\' && (s.at(0) == '"' || s.at(0) == '\\'):
			b.WriteRune(s.advance())
		case r == '\\' && s.at(0) == '\n':
			s.advance()
		default:
			b.WriteRune(r)
		}
	}
}

// scanNumber reads [-] digits with at most one '.', rejecting an
// identifier character glued to the numeral.
func (s *session) scanNumber() (string, error) {
	start := s.pos
	if s.at(0) == '-' {
		s.advance()
	}
	dot := false
	for !s.eof() {
		r := s.at(0)
		if r == '.' && !dot {
			dot = true
		} else if !isDigit(r) {
			break
		}
		s.advance()
	}
	if !s.eof() && (isIDStart(s.at(0)) || s.at(0) == '.') {
		return "", s.errorf(ErrSyntax, "malformed number %q", string(s.src[start:s.pos+1]))
	}
	return string(s.src[start:s.pos]), nil
}
