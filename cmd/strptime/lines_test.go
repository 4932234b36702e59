package main

import (
	"fmt"
	"strings"
	"testing"
)

func TestLineReader_crnl(t *testing.T) {
	lr := newLineReader(t.Name(), strings.NewReader("line1\r\nline2\r\n"), "")
	line := 0
	for lr.Next() {
		line++
		switch line {
		case 1:
			if txt := lr.Text(); txt != "line1" {
				t.Errorf("line %d: wrong text '%s'", line, txt)
			}
		case 2:
			if txt := lr.Text(); txt != "line2" {
				t.Errorf("line %d: wrong text '%s'", line, txt)
			}
		}
	}
	if line != 2 {
		t.Errorf("wrong number of lines: %d", line)
	}
}

func TestLineReader_skip(t *testing.T) {
	lr := newLineReader(t.Name(), strings.NewReader(`# header
2012-04-21

   
# comment
1999-12-31`), "#")
	var got []string
	for lr.Next() {
		got = append(got, fmt.Sprintf("%s@%d", lr.Text(), lr.Line()))
	}
	if err := lr.Err(); err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, " ") != "2012-04-21@2 1999-12-31@6" {
		t.Errorf("wrong lines %v", got)
	}
	t.Run("no comment prefix", func(t *testing.T) {
		lr := newLineReader(t.Name(), strings.NewReader("#1\n#2"), "")
		n := 0
		for lr.Next() {
			n++
		}
		if n != 2 {
			t.Errorf("read %d lines", n)
		}
	})
}
