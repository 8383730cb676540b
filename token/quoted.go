package token

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether a scalar or key must be quoted to survive a
// round trip through the format.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if v[0] == '"' || v[0] == '=' {
		return true
	}
	if v[0] == ' ' || v[0] == '\t' {
		return true
	}
	last := v[len(v)-1]
	if last == ' ' || last == '\t' {
		return true
	}
	return strings.ContainsAny(v, ";=\n\r")
}

// Quote renders v as a quoted scalar using the escape grammar
// recognized by Unquote.
func Quote(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if unicode.IsControl(r) {
				b.WriteString(`\{`)
				b.WriteString(strconv.FormatInt(int64(r), 16))
				b.WriteByte('}')
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote decodes a complete quoted scalar token, including its
// surrounding quotes.
func Unquote(v string) (string, error) {
	if len(v) == 0 || v[0] != '"' {
		return "", ErrUnterminated
	}
	text, n, err := unquote(v, Pos{Line: 1, Col: 1})
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrTrailing
	}
	return text, nil
}

// unquote decodes a quoted scalar at the start of s, where s[0] is the
// opening quote. It returns the decoded text and the number of bytes
// consumed, including the closing quote. pos is the position of the
// opening quote, used for error reporting.
func unquote(s string, pos Pos) (string, int, error) {
	b := &strings.Builder{}
	i := 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			i++
			if i >= len(s) {
				return "", 0, NewScanError(ErrUnterminated, at(pos, i))
			}
			switch s[i] {
			case '\\', '"':
				b.WriteByte(s[i])
				i++
			case 't':
				b.WriteByte('\t')
				i++
			case 'n':
				b.WriteByte('\n')
				i++
			case 'r':
				b.WriteByte('\r')
				i++
			case '{':
				j := strings.IndexByte(s[i:], '}')
				if j < 0 {
					return "", 0, NewScanError(ErrBadUnicode, at(pos, i))
				}
				r, err := hexPoint(s[i+1 : i+j])
				if err != nil {
					return "", 0, NewScanError(err, at(pos, i))
				}
				b.WriteRune(r)
				i += j + 1
			default:
				return "", 0, NewScanError(ErrBadEscape, at(pos, i))
			}
		default:
			r, sz := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += sz
		}
	}
	return "", 0, NewScanError(ErrUnterminated, at(pos, i))
}

// hexPoint decodes the 1-6 hex digits of a \{...} escape.
func hexPoint(digits string) (rune, error) {
	if len(digits) == 0 || len(digits) > 6 {
		return 0, ErrBadUnicode
	}
	var r rune
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, ErrBadUnicode
		}
		r = r<<4 | d
	}
	if r > utf8.MaxRune || (r >= 0xd800 && r <= 0xdfff) {
		return 0, ErrBadUnicode
	}
	return r, nil
}

// at offsets pos by i columns within the same physical line.
func at(pos Pos, i int) Pos {
	return Pos{Line: pos.Line, Col: pos.Col + i}
}
