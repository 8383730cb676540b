package token

import (
	"strings"
)

// Lines scans d into its logical lines. The indentation unit (tab or
// space run) is inferred from the first indented line and enforced for
// the rest of the input; multiline scalar bodies are exempt and are
// folded into their opening line here.
func Lines(d []byte) ([]Line, error) {
	s := &scanner{raw: splitPhysical(string(d))}
	return s.run()
}

type scanner struct {
	raw  []string
	ln   int // index of the current physical line
	unit string
	out  []Line
}

func splitPhysical(s string) []string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

func splitIndent(s string) (ws, rest string) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i], s[i:]
}

func (s *scanner) run() ([]Line, error) {
	for s.ln < len(s.raw) {
		phys := s.raw[s.ln]
		lineNo := s.ln + 1
		ws, rest := splitIndent(phys)
		if rest == "" || rest[0] == ';' {
			s.ln++
			continue
		}
		depth, err := s.depth(ws, Pos{Line: lineNo, Col: 1})
		if err != nil {
			return nil, err
		}
		line, err := s.content(rest, depth, Pos{Line: lineNo, Col: len(ws) + 1}, ws)
		if err != nil {
			return nil, err
		}
		s.out = append(s.out, line)
		s.ln++
	}
	return s.out, nil
}

// depth converts a raw indentation prefix to a depth count against the
// inferred unit.
func (s *scanner) depth(ws string, pos Pos) (int, error) {
	if ws == "" {
		return 0, nil
	}
	c := ws[0]
	for i := 1; i < len(ws); i++ {
		if ws[i] != c {
			return 0, NewScanError(ErrMixedIndent, Pos{Line: pos.Line, Col: i + 1})
		}
	}
	if s.unit == "" {
		s.unit = ws
		return 1, nil
	}
	if c != s.unit[0] {
		return 0, NewScanError(ErrMixedIndent, pos)
	}
	if len(ws)%len(s.unit) != 0 {
		return 0, NewScanError(ErrIndentation, pos)
	}
	return len(ws) / len(s.unit), nil
}

func (s *scanner) content(c string, depth int, pos Pos, wsOpen string) (Line, error) {
	if c[0] == '=' {
		val, ok, err := s.value(c[1:], Pos{Line: pos.Line, Col: pos.Col + 1}, wsOpen)
		if err != nil {
			return Line{}, err
		}
		if !ok {
			return Line{Kind: LineListItem, Depth: depth, Pos: pos}, nil
		}
		return Line{Kind: LineListValue, Depth: depth, Pos: pos, Val: val}, nil
	}
	key, rest, restPos, err := s.key(c, pos)
	if err != nil {
		return Line{}, err
	}
	j := 0
	for j < len(rest) && (rest[j] == ' ' || rest[j] == '\t') {
		j++
	}
	rest, restPos.Col = rest[j:], restPos.Col+j
	if rest == "" || rest[0] == ';' {
		return Line{Kind: LineKeyOnly, Depth: depth, Pos: pos, Key: key}, nil
	}
	if rest[0] != '=' {
		return Line{}, NewScanError(ErrTrailing, restPos)
	}
	val, ok, err := s.value(rest[1:], Pos{Line: restPos.Line, Col: restPos.Col + 1}, wsOpen)
	if err != nil {
		return Line{}, err
	}
	if !ok {
		return Line{}, NewScanError(ErrMissingValue, restPos)
	}
	return Line{Kind: LineKeyValue, Depth: depth, Pos: pos, Key: key, Val: val}, nil
}

// key scans the key portion of a content line. Unquoted keys end at the
// first '=' or ';'; a key containing either must be quoted.
func (s *scanner) key(c string, pos Pos) (Scalar, string, Pos, error) {
	if c[0] == '"' {
		text, n, err := unquote(c, pos)
		if err != nil {
			return Scalar{}, "", pos, err
		}
		return Scalar{Text: text}, c[n:], Pos{Line: pos.Line, Col: pos.Col + n}, nil
	}
	i := strings.IndexAny(c, "=;")
	raw, rest := c, ""
	if i >= 0 {
		raw, rest = c[:i], c[i:]
	}
	key := strings.TrimRight(raw, " \t")
	if key == "" {
		return Scalar{}, "", pos, NewScanError(ErrEmptyKey, pos)
	}
	return Scalar{Text: key}, rest, Pos{Line: pos.Line, Col: pos.Col + len(c) - len(rest)}, nil
}

// value decodes the scalar after '=', if any. ok is false when nothing
// but whitespace or a comment follows.
func (s *scanner) value(raw string, pos Pos, wsOpen string) (Scalar, bool, error) {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t') {
		i++
	}
	v := raw[i:]
	vpos := Pos{Line: pos.Line, Col: pos.Col + i}
	if v == "" || v[0] == ';' {
		return Scalar{}, false, nil
	}
	if strings.HasPrefix(v, `"""`) {
		hint, err := hintToken(v[3:], Pos{Line: vpos.Line, Col: vpos.Col + 3})
		if err != nil {
			return Scalar{}, false, err
		}
		body, err := s.mlitBody(wsOpen)
		if err != nil {
			return Scalar{}, false, err
		}
		return Scalar{Text: body, Hint: hint}, true, nil
	}
	if v[0] == '"' {
		text, n, err := unquote(v, vpos)
		if err != nil {
			return Scalar{}, false, err
		}
		tail := strings.TrimLeft(v[n:], " \t")
		if tail != "" && tail[0] != ';' {
			return Scalar{}, false, NewScanError(ErrTrailing, Pos{Line: vpos.Line, Col: vpos.Col + n})
		}
		return Scalar{Text: text}, true, nil
	}
	if j := strings.IndexByte(v, ';'); j >= 0 {
		v = v[:j]
	}
	v = strings.TrimRight(v, " \t")
	if v == "" {
		return Scalar{}, false, nil
	}
	return Scalar{Text: v}, true, nil
}

// hintToken scans the hint immediately after `"""`: a single token with
// no whitespace, quotes or `;`. Only whitespace or a comment may follow
// it on the opening line.
func hintToken(raw string, pos Pos) (string, error) {
	i := 0
	for i < len(raw) && !strings.ContainsRune(" \t;\"", rune(raw[i])) {
		i++
	}
	hint, rest := raw[:i], raw[i:]
	j := 0
	for j < len(rest) && (rest[j] == ' ' || rest[j] == '\t') {
		j++
	}
	if rest = rest[j:]; rest != "" && rest[0] != ';' {
		return "", NewScanError(ErrBadHint, at(pos, i+j))
	}
	return hint, nil
}

// mlitBody consumes the indented body of a multiline scalar opened on
// the current physical line. The block ends at the first non-blank line
// indented at or below the opening line; a closing `"""` is never
// recognized. Body lines keep everything beyond the base indent
// verbatim, `;` included.
func (s *scanner) mlitBody(wsOpen string) (string, error) {
	var body []string
	base := ""
	last := -1
	i := s.ln + 1
	for i < len(s.raw) {
		phys := s.raw[i]
		ws, rest := splitIndent(phys)
		if rest == "" {
			body = append(body, "")
			i++
			continue
		}
		if len(ws) <= len(wsOpen) {
			break
		}
		// splitPhysical already stripped CRLF endings, so any \r
		// left is mid-line and cannot be re-encoded as a block
		if strings.ContainsRune(rest, '\r') {
			return "", NewScanError(ErrCarriageReturn, Pos{Line: i + 1, Col: 1})
		}
		if base == "" {
			base = ws
		}
		if !strings.HasPrefix(phys, base) {
			return "", NewScanError(ErrIndentation, Pos{Line: i + 1, Col: 1})
		}
		body = append(body, phys[len(base):])
		last = len(body) - 1
		i++
	}
	s.ln = i - 1
	body = body[:last+1]
	return strings.Join(body, "\n"), nil
}
