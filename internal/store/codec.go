package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"

	"chomp/internal/models"
)

// Encode writes rec as indented UTF-8 JSON. Non-ASCII and HTML characters,
// line and paragraph separators included, are written as is.
func Encode(rec models.Record) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(rec); err != nil {
		return nil, err
	}

	return unescapeSeparators(buf.Bytes()), nil
}

// unescapeSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into literal characters. Escaped backslashes are
// skipped as pairs so text like `\\u2028` is left alone.
func unescapeSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])

			continue
		}

		if rest := data[i+1:]; len(rest) >= 5 && rest[0] == 'u' &&
			(bytes.HasPrefix(rest[1:], []byte("2028")) || bytes.HasPrefix(rest[1:], []byte("2029"))) {
			r := '\u2028'
			if rest[4] == '9' {
				r = '\u2029'
			}

			out = utf8.AppendRune(out, r)
			i += 5

			continue
		}

		out = append(out, data[i], data[i+1])
		i++
	}

	return out
}

// Decode parses one record. Numbers stay json.Number so ids round-trip.
func Decode(data []byte) (models.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rec models.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}

	if rec == nil {
		return nil, errNotObject
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return rec, nil
}
