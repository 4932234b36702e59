package strptime

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func ExampleCompile() {
	p, err := Compile("%d.%m.%Y %H:%M")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, tok := range p.Tokens() {
		fmt.Println(tok)
	}
	_, err = Compile("%Y-%q")
	fmt.Println(err)
	_, err = Compile("%Y-%m")
	fmt.Println(err)
	// Output:
	// spec %d day/2
	// lit "."
	// spec %m month/2
	// lit "."
	// spec %Y year/4
	// lit " "
	// spec %H hour/2
	// lit ":"
	// spec %M minute/2
	// format "%Y-%q":3: unknown specifier '%q'
	// format "%Y-%m": date needs year, month and day
}

func TestCompile_tokens(t *testing.T) {
	p, err := Compile("at %H%%: 100%% on %y%m%d")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		Literal{"at "},
		Specifier{KindHour},
		Specifier{KindPercent},
		Literal{": 100"},
		Specifier{KindPercent},
		Literal{" on "},
		Specifier{KindYear2},
		Specifier{KindMonth},
		Specifier{KindDay},
	}
	if got := p.Tokens(); !slices.Equal(got, want) {
		t.Errorf("wrong program %v", got)
	}
	if !p.HasDate() || !p.HasTime() {
		t.Errorf("wrong shape date=%t time=%t", p.HasDate(), p.HasTime())
	}
	if p.Format() != "at %H%%: 100%% on %y%m%d" {
		t.Errorf("wrong format '%s'", p.Format())
	}
}

func TestCompile_tokensCopied(t *testing.T) {
	p := MustCompile("%H:%M")
	toks := p.Tokens()
	toks[0] = Literal{"x"}
	if _, err := p.Parse("12:30"); err != nil {
		t.Error("program modified through Tokens():", err)
	}
}

func TestCompile_literalOnly(t *testing.T) {
	p := MustCompile("plain text ☺")
	if !slices.Equal(p.Tokens(), []Token{Literal{"plain text ☺"}}) {
		t.Errorf("wrong program %v", p.Tokens())
	}
	if p.HasDate() || p.HasTime() {
		t.Error("literal format has fields")
	}
}

func TestCompile_errors(t *testing.T) {
	check := func(t *testing.T, format string, want error, pos int, char rune) {
		t.Helper()
		_, err := Compile(format)
		if !errors.Is(err, want) {
			t.Fatalf("%q: unexpected error %v", format, err)
		}
		var cerr *CompileError
		if !errors.As(err, &cerr) {
			t.Fatalf("%q: not a *CompileError: %T", format, err)
		}
		if cerr.Pos != pos || cerr.Char != char || cerr.Format != format {
			t.Errorf("%q: wrong error data %+v", format, *cerr)
		}
	}
	t.Run("unknown specifier", func(t *testing.T) {
		check(t, "%Y-%m-%d %I", ErrUnknownSpecifier, 9, 'I')
		check(t, "%b", ErrUnknownSpecifier, 0, 'b')
		check(t, "%-m", ErrUnknownSpecifier, 0, '-')
		check(t, "x%ä", ErrUnknownSpecifier, 1, 'ä')
	})
	t.Run("dangling escape", func(t *testing.T) {
		check(t, "%", ErrDanglingEscape, 0, 0)
		check(t, "%H:%M%", ErrDanglingEscape, 5, 0)
		check(t, "%%%", ErrDanglingEscape, 2, 0)
	})
	t.Run("incomplete date", func(t *testing.T) {
		for _, f := range []string{
			"%Y", "%y", "%m", "%d",
			"%Y-%m", "%m-%d", "%Y-%d", "%y%m",
			"%d %H:%M",
		} {
			check(t, f, ErrIncompleteDate, -1, 0)
		}
	})
	t.Run("complete date any order", func(t *testing.T) {
		for _, f := range []string{"%d%m%Y", "%m/%d/%y", "%H %d %Y %m"} {
			if _, err := Compile(f); err != nil {
				t.Errorf("%q: %s", f, err)
			}
		}
	})
}

func TestMustCompile_panics(t *testing.T) {
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("no panic")
		}
		if err, ok := p.(error); !ok || !errors.Is(err, ErrDanglingEscape) {
			t.Errorf("unexpected panic value %v", p)
		}
	}()
	MustCompile("%")
}

func TestKind(t *testing.T) {
	for k := KindYear; k <= KindPercent; k++ {
		back, ok := kindOf(rune(k.Verb()))
		if !ok || back != k {
			t.Errorf("%s: verb %c maps to %s", k, k.Verb(), back)
		}
	}
	if w := Kind(0).Width(); w != 0 {
		t.Errorf("invalid kind has width %d", w)
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("invalid kind string '%s'", s)
	}
}
