package main

import (
	"bufio"
	"io"
	"strings"
)

// lineReader yields the non-blank input lines of one source and keeps
// track of line numbers. Lines starting with comment are skipped too if
// comment is not empty.
type lineReader struct {
	name    string
	comment string
	scn     *bufio.Scanner
	lno     int
	line    string
}

func newLineReader(name string, r io.Reader, comment string) *lineReader {
	return &lineReader{
		name:    name,
		comment: comment,
		scn:     bufio.NewScanner(r),
	}
}

func (lr *lineReader) Name() string { return lr.name }

// Line returns the 1-based number of the current line.
func (lr *lineReader) Line() int { return lr.lno }

func (lr *lineReader) Text() string { return lr.line }

func (lr *lineReader) Next() bool {
	for lr.scn.Scan() {
		lr.lno++
		l := strings.TrimRight(lr.scn.Text(), "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		if lr.comment != "" && strings.HasPrefix(l, lr.comment) {
			continue
		}
		lr.line = l
		return true
	}
	lr.line = ""
	return false
}

func (lr *lineReader) Err() error { return lr.scn.Err() }
