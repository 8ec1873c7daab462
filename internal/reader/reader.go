// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     reader
// Description: S-expression reader for numeric literals and operator forms
// Author:      Mike Stoffels
// Created:     2025-12-21
// License:     MIT
// ============================================================================

package reader

import (
	"strings"

	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/pkg/number"
)

// FormKind identifies the variant held by a Form
type FormKind int

const (
	FormNumber FormKind = iota
	FormSymbol
	FormList
)

// Form is one datum read from the input
type Form struct {
	Kind   FormKind
	Number number.Number
	Symbol string
	List   []Form
}

// NumberForm wraps a number
func NumberForm(n number.Number) Form {
	return Form{Kind: FormNumber, Number: n}
}

// SymbolForm wraps a symbol name
func SymbolForm(name string) Form {
	return Form{Kind: FormSymbol, Symbol: name}
}

// ListForm wraps a list of forms
func ListForm(items ...Form) Form {
	return Form{Kind: FormList, List: items}
}

// String prints the form the way it would be read back
func (f Form) String() string {
	switch f.Kind {
	case FormNumber:
		return f.Number.String()
	case FormSymbol:
		return f.Symbol
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, item := range f.List {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Options control how literals are read
type Options struct {
	// DefaultFloat is the kind of floats written without an exponent
	// marker or with the marker e
	DefaultFloat number.Kind
}

// DefaultOptions reads unmarked floats as single floats
func DefaultOptions() Options {
	return Options{DefaultFloat: number.KindSingleFloat}
}

// Reader walks a token stream
type Reader struct {
	input  string
	tokens []string
	index  int
	opts   Options
}

// New tokenizes input
func New(input string, opts Options) (*Reader, error) {
	if !opts.DefaultFloat.IsFloat() {
		opts.DefaultFloat = number.KindSingleFloat
	}
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	return &Reader{input: input, tokens: tokens, opts: opts}, nil
}

// ReadString reads exactly one form from input
func ReadString(input string, opts Options) (Form, error) {
	forms, err := ReadAll(input, opts)
	if err != nil {
		return Form{}, err
	}
	if len(forms) != 1 {
		return Form{}, errors.InvalidFormat(errors.ModuleReader, input, "single form")
	}
	return forms[0], nil
}

// ReadAll reads every form in input
func ReadAll(input string, opts Options) ([]Form, error) {
	r, err := New(input, opts)
	if err != nil {
		return nil, err
	}
	var forms []Form
	for r.More() {
		f, err := r.Read()
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, nil
}

// More reports whether tokens remain
func (r *Reader) More() bool {
	return r.index < len(r.tokens)
}

func (r *Reader) next() (string, bool) {
	t, ok := r.peek()
	if ok {
		r.index++
	}
	return t, ok
}

func (r *Reader) peek() (string, bool) {
	if r.index >= len(r.tokens) {
		return "", false
	}
	return r.tokens[r.index], true
}

// Read returns the next form
func (r *Reader) Read() (Form, error) {
	t, ok := r.next()
	if !ok {
		return Form{}, errors.InvalidFormat(errors.ModuleReader, r.input, "form, got end of input")
	}

	switch {
	case t == "(":
		items, err := r.readList()
		if err != nil {
			return Form{}, err
		}
		return ListForm(items...), nil
	case t == ")":
		return Form{}, errors.InvalidFormat(errors.ModuleReader, r.input, "balanced parentheses")
	case strings.EqualFold(t, "#C"):
		return r.readComplex()
	}

	n, ok, err := ParseNumber(t, r.opts.DefaultFloat)
	if err != nil {
		return Form{}, err
	}
	if ok {
		return NumberForm(n), nil
	}
	return SymbolForm(strings.ToLower(t)), nil
}

func (r *Reader) readList() ([]Form, error) {
	items := []Form{}
	for {
		t, ok := r.peek()
		if !ok {
			return nil, errors.InvalidFormat(errors.ModuleReader, r.input, "')', got end of input")
		}
		if t == ")" {
			r.index++
			return items, nil
		}
		item, err := r.Read()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// readComplex reads the (re im) list after #C
func (r *Reader) readComplex() (Form, error) {
	if t, ok := r.next(); !ok || t != "(" {
		return Form{}, errors.InvalidFormat(errors.ModuleReader, r.input, "#C(real imag)")
	}
	parts, err := r.readList()
	if err != nil {
		return Form{}, err
	}
	if len(parts) != 2 || parts[0].Kind != FormNumber || parts[1].Kind != FormNumber {
		return Form{}, errors.InvalidFormat(errors.ModuleReader, r.input, "#C(real imag)")
	}
	c, err := number.MakeComplex(parts[0].Number, parts[1].Number)
	if err != nil {
		return Form{}, err
	}
	return NumberForm(c), nil
}

// tokenize splits input into parentheses, #C markers and atoms. Semicolon
// comments run to the end of the line.
func tokenize(input string) ([]string, error) {
	tokens := make([]string, 0, 16)
	for pos := 0; pos < len(input); {
		c := input[pos]
		switch c {
		case ' ', '\t', '\r', '\n':
			pos++
		case '(', ')':
			tokens = append(tokens, string(c))
			pos++
		case ';':
			for pos < len(input) && input[pos] != '\n' {
				pos++
			}
		case '#':
			if pos+1 >= len(input) || (input[pos+1] != 'C' && input[pos+1] != 'c') {
				return nil, errors.InvalidFormat(errors.ModuleReader, input, "#C dispatch")
			}
			tokens = append(tokens, input[pos:pos+2])
			pos += 2
		default:
			end := pos + 1
			for end < len(input) && !isDelimiter(input[end]) {
				end++
			}
			tokens = append(tokens, input[pos:end])
			pos = end
		}
	}
	return tokens, nil
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', ';':
		return true
	}
	return false
}
