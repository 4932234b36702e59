package strptime

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Parser is a compiled format. It has no mutable state and can be used by
// any number of goroutines concurrently.
type Parser struct {
	format string
	prog   []Token
	date   bool
	clock  bool
	year2  YearResolver
}

// Compile translates format into a Parser. Errors are of type
// *CompileError.
func Compile(format string, opts ...Option) (*Parser, error) {
	p := &Parser{
		format: format,
		year2:  PivotResolver(DefaultPivot),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.compile(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustCompile is like Compile but panics on error. It simplifies the
// initialization of package level parsers.
func MustCompile(format string, opts ...Option) *Parser {
	p, err := Compile(format, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Parser) compile() error {
	var (
		mask uint16 // bit set of Kinds
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			p.prog = append(p.prog, Literal{Text: lit.String()})
			lit.Reset()
		}
	}
	f := p.format
	for i := 0; i < len(f); {
		esc := strings.IndexByte(f[i:], Escape)
		if esc < 0 {
			lit.WriteString(f[i:])
			break
		}
		lit.WriteString(f[i : i+esc])
		i += esc
		if i+1 >= len(f) {
			return &CompileError{Format: f, Pos: i, Err: ErrDanglingEscape}
		}
		verb, vsz := utf8.DecodeRuneInString(f[i+1:])
		k, ok := kindOf(verb)
		if !ok {
			return &CompileError{Format: f, Pos: i, Char: verb, Err: ErrUnknownSpecifier}
		}
		flush()
		p.prog = append(p.prog, Specifier{Kind: k})
		mask |= 1 << k
		i += 1 + vsz
	}
	flush()

	year := mask&(1<<KindYear|1<<KindYear2) != 0
	month := mask&(1<<KindMonth) != 0
	day := mask&(1<<KindDay) != 0
	if year || month || day {
		if !(year && month && day) {
			return &CompileError{Format: f, Pos: -1, Err: ErrIncompleteDate}
		}
		p.date = true
	}
	p.clock = mask&(1<<KindHour|1<<KindMinute|1<<KindSecond) != 0
	return nil
}

// Format returns the format string p was compiled from.
func (p *Parser) Format() string { return p.format }

// Tokens returns a copy of the compiled program.
func (p *Parser) Tokens() []Token { return slices.Clone(p.prog) }

// HasDate reports whether results of p carry a date.
func (p *Parser) HasDate() bool { return p.date }

// HasTime reports whether results of p carry a time.
func (p *Parser) HasTime() bool { return p.clock }

// Parse matches input against p. The complete input must be consumed.
// Errors are of type *ParseError.
func (p *Parser) Parse(input string) (DateTime, error) {
	raw, err := p.scan(input)
	if err != nil {
		return DateTime{}, &ParseError{Format: p.format, Input: input, Err: err}
	}
	res, err := p.assemble(&raw)
	if err != nil {
		return DateTime{}, &ParseError{Format: p.format, Input: input, Err: err}
	}
	return res, nil
}

// Parse compiles format and uses it to parse input. The error is either a
// *CompileError or a *ParseError.
func Parse(format, input string, opts ...Option) (DateTime, error) {
	p, err := Compile(format, opts...)
	if err != nil {
		return DateTime{}, err
	}
	return p.Parse(input)
}
