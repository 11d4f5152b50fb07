// Package lint finds power records in planner modules that carry an icon but
// no effect summary.
//
// The scanner understands the subset of JavaScript the data modules use:
// object and array literals, quoted or bare keys, string and template
// literals, and comments. Regular expression literals are not recognised.
package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Finding is one incomplete record.
type Finding struct {
	File string
	Line int
	Name string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s (line %d): '%s'", f.File, f.Line, f.Name)
}

// Record keys that decide whether an object is an incomplete power.
const (
	keyName    = "name"
	keyIcon    = "icon"
	keyPowers  = "powers"
	keyEffects = "effects"
)

type frame struct {
	object bool
	line   int

	expectKey  bool
	pendingKey string
	valueFor   string

	keys map[string]bool
	name string
}

func (f *frame) addKey(k string) {
	if f.keys == nil {
		f.keys = make(map[string]bool, 8)
	}
	f.keys[k] = true
}

func (f *frame) incomplete() bool {
	return f.object && f.keys[keyName] && f.keys[keyIcon] && !f.keys[keyPowers] && !f.keys[keyEffects]
}

type scanner struct {
	file     string
	src      []byte
	pos      int
	line     int
	stack    []*frame
	findings []Finding
}

// Scan reports every object literal in src that has name and icon keys but
// neither powers nor effects. Findings are ordered by where the object closes,
// so nested records come before their parents.
func Scan(file string, src []byte) []Finding {
	s := &scanner{file: file, src: src, line: 1}
	s.run()
	return s.findings
}

func (s *scanner) top() *frame {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

func (s *scanner) run() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.line++
			s.pos++

		case c == ' ' || c == '\t' || c == '\r':
			s.pos++

		case c == '/' && s.peek(1) == '/':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}

		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()

		case c == '"' || c == '\'' || c == '`':
			s.token(s.readString(c), true)

		case isIdentByte(c):
			start := s.pos
			for s.pos < len(s.src) && isIdentByte(s.src[s.pos]) {
				s.pos++
			}
			s.token(string(s.src[start:s.pos]), false)

		case c == '{':
			s.stack = append(s.stack, &frame{object: true, line: s.line, expectKey: true})
			s.pos++

		case c == '[' || c == '(':
			s.stack = append(s.stack, &frame{line: s.line})
			s.pos++

		case c == '}' || c == ']' || c == ')':
			s.pop()
			s.pos++

		case c == ':':
			if f := s.top(); f != nil && f.object && f.pendingKey != "" {
				f.addKey(f.pendingKey)
				f.valueFor = f.pendingKey
				f.pendingKey = ""
				f.expectKey = false
			}
			s.pos++

		case c == ',':
			if f := s.top(); f != nil && f.object {
				s.shorthand(f)
				f.expectKey = true
				f.valueFor = ""
			}
			s.pos++

		default:
			if f := s.top(); f != nil {
				f.pendingKey = ""
			}
			s.pos++
		}
	}
}

func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

func (s *scanner) skipBlockComment() {
	s.pos += 2
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			return
		}
		if s.src[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
}

// readString consumes a literal opened by quote and returns its body with
// escapes left as written.
func (s *scanner) readString(quote byte) string {
	s.pos++
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\\':
			s.pos += 2
			continue
		case c == quote:
			body := string(s.src[start:s.pos])
			s.pos++
			return body
		case c == '\n':
			s.line++
		}
		s.pos++
	}
	return string(s.src[start:])
}

func (s *scanner) token(tok string, quoted bool) {
	f := s.top()
	if f == nil || !f.object {
		return
	}
	if f.expectKey {
		f.pendingKey = tok
		return
	}
	if quoted && f.valueFor == keyName && f.name == "" {
		f.name = tok
	}
}

// shorthand records `{ name, icon }` style keys.
func (s *scanner) shorthand(f *frame) {
	if f.expectKey && f.pendingKey != "" {
		f.addKey(f.pendingKey)
		f.pendingKey = ""
	}
}

func (s *scanner) pop() {
	f := s.top()
	if f == nil {
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
	if !f.object {
		return
	}
	s.shorthand(f)
	if f.incomplete() {
		s.findings = append(s.findings, Finding{File: s.file, Line: f.line, Name: f.name})
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c == '.' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// ScanDir scans every .js file under root in lexical order. Finding files
// are relative to root with forward slashes.
func ScanDir(root string) ([]Finding, error) {
	var findings []Finding
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".js") {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		findings = append(findings, Scan(filepath.ToSlash(rel), src)...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return findings, nil
}
