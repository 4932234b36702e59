// Package codec writes parse results of the strptime command as text,
// JSON or CBOR records.
package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/fractalqb/strptime"
	"github.com/fractalqb/strptime/internal/config"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2), equal records
// give equal bytes.
var encMode cbor.EncMode

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
}

type Date struct {
	Year  int `json:"year" cbor:"year"`
	Month int `json:"month" cbor:"month"`
	Day   int `json:"day" cbor:"day"`
}

type Time struct {
	Hour   int `json:"hour" cbor:"hour"`
	Minute int `json:"minute" cbor:"minute"`
	Second int `json:"second" cbor:"second"`
}

// Record is the outcome of parsing one input line.
type Record struct {
	Source string `json:"source" cbor:"source"`
	Line   int    `json:"line" cbor:"line"`
	Input  string `json:"input" cbor:"input"`
	Date   *Date  `json:"date,omitempty" cbor:"date,omitempty"`
	Time   *Time  `json:"time,omitempty" cbor:"time,omitempty"`
	Error  string `json:"error,omitempty" cbor:"error,omitempty"`
}

// NewRecord creates the record for a parse of input. If err is not nil
// the record only carries the error message.
func NewRecord(source string, line int, input string, dt strptime.DateTime, err error) Record {
	rec := Record{Source: source, Line: line, Input: input}
	if err != nil {
		rec.Error = err.Error()
		return rec
	}
	if d, ok := dt.Date(); ok {
		rec.Date = &Date{Year: d.Year(), Month: d.Month(), Day: d.Day()}
	}
	if t, ok := dt.Time(); ok {
		rec.Time = &Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
	}
	return rec
}

type Encoder interface {
	Encode(Record) error
}

// NewEncoder returns the encoder for one of the config.Output… names.
func NewEncoder(output string, w io.Writer) (Encoder, error) {
	switch output {
	case config.OutputText, "":
		return textEncoder{w}, nil
	case config.OutputJSON:
		return jsonEncoder{json.NewEncoder(w)}, nil
	case config.OutputCBOR:
		return cborEncoder{encMode.NewEncoder(w)}, nil
	}
	return nil, fmt.Errorf("unknown output encoding '%s'", output)
}

type jsonEncoder struct{ enc *json.Encoder }

func (e jsonEncoder) Encode(rec Record) error { return e.enc.Encode(rec) }

// cborEncoder writes a CBOR sequence (RFC 8742)
type cborEncoder struct{ enc *cbor.Encoder }

func (e cborEncoder) Encode(rec Record) error { return e.enc.Encode(rec) }

type textEncoder struct{ w io.Writer }

func (enc textEncoder) Encode(rec Record) (err error) {
	if _, err = fmt.Fprintf(enc.w, "%s:%d:", rec.Source, rec.Line); err != nil {
		return err
	}
	if rec.Error != "" {
		_, err = fmt.Fprintf(enc.w, " error: %s\n", rec.Error)
		return err
	}
	if d := rec.Date; d != nil {
		if _, err = fmt.Fprintf(enc.w, " year=%d month=%d day=%d", d.Year, d.Month, d.Day); err != nil {
			return err
		}
	}
	if t := rec.Time; t != nil {
		if _, err = fmt.Fprintf(enc.w, " hour=%d minute=%d second=%d", t.Hour, t.Minute, t.Second); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(enc.w)
	return err
}
