// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"bytes"
	"unicode/utf8"
)

// An Entry is one key-value record of a Document.
type Entry struct {
	// Key and Value are the decoded (unescaped) key and value.
	Key   string
	Value string
	// Separator is the text between key and value as spelled in the file:
	// at most one of '=' or ':' plus any surrounding spaces. It is empty
	// for a key written without a value.
	Separator string
	// Line is the index of the entry's first line in the document, and
	// LineCount is the number of lines the entry spans. LineCount is
	// greater than one when the entry uses backslash continuations.
	Line      int
	LineCount int
}

// A Scanner iterates over the entries of a Document. Comments, blank
// lines, and unterminated trailing fragments are skipped. A Scanner reads
// the lines the Document had when Entries was called; create a fresh one
// after mutating the Document.
type Scanner struct {
	lines []string
	line  int
	st    scanState
	entry Entry
}

// Entries returns a Scanner positioned before the document's first entry.
func (d *Document) Entries() *Scanner {
	s := &Scanner{st: newScanState()}
	if d != nil {
		s.lines = d.lines
	}
	return s
}

// Scan advances to the next entry. It returns false when the document is
// exhausted.
func (s *Scanner) Scan() bool {
	for s.line < len(s.lines) {
		line := s.lines[s.line]
		for _, c := range line {
			s.st.next(c, s.line)
		}
		e, ok := s.st.next(eol, s.line)
		s.line++
		if ok {
			s.entry = e
			return true
		}
	}
	return false
}

// Entry returns the entry found by the most recent call to Scan.
func (s *Scanner) Entry() Entry {
	return s.entry
}

// eol is fed to the state machine after each line's characters. Treating
// the line break as an ordinary character keeps continuation handling
// uniform across lines.
const eol rune = -1

type state int

const (
	stateStart state = iota
	stateComment
	stateKey
	stateSeparator
	stateValue
)

// scanState holds exactly one in-flight entry. It is reset by wholesale
// reassignment so no buffer or flag leaks from one entry into the next.
type scanState struct {
	state state
	key   []byte
	sep   []byte
	value []byte
	// start is the line index the entry began on.
	start int
	// escaped records a pending backslash.
	escaped bool
	// skipSpace discards plain spaces: set at reset and re-armed after a
	// line continuation.
	skipSpace bool
}

func newScanState() scanState {
	return scanState{skipSpace: true}
}

// next feeds one character (or eol) at the given line index to the state
// machine, returning a completed entry when the character finishes one.
func (st *scanState) next(c rune, line int) (Entry, bool) {
	if st.skipSpace {
		if c == ' ' {
			return Entry{}, false
		}
		st.skipSpace = false
	}
	switch st.state {
	case stateStart:
		switch {
		case c == eol:
			*st = newScanState()
		case c == '#' || c == '!':
			st.state = stateComment
			st.start = line
		default:
			st.state = stateKey
			st.start = line
			return st.next(c, line)
		}
	case stateComment:
		if c == eol {
			*st = newScanState()
		}
	case stateKey:
		switch {
		case c == eol:
			if st.escaped {
				st.continueLine()
			} else {
				return st.emit(line), true
			}
		case !st.escaped && (c == ' ' || c == '=' || c == ':'):
			st.state = stateSeparator
			return st.next(c, line)
		default:
			st.key = appendChar(st.key, c, &st.escaped)
		}
	case stateSeparator:
		switch {
		case c == eol:
			return st.emit(line), true
		case c == ' ':
			st.sep = append(st.sep, ' ')
		case c == '=' || c == ':':
			if bytes.ContainsAny(st.sep, "=:") {
				// Only one '=' or ':' belongs to the separator; a second
				// one starts the value.
				st.state = stateValue
				return st.next(c, line)
			}
			st.sep = append(st.sep, byte(c))
		default:
			st.state = stateValue
			return st.next(c, line)
		}
	case stateValue:
		switch {
		case c == eol:
			if st.escaped {
				st.continueLine()
			} else {
				return st.emit(line), true
			}
		default:
			st.value = appendChar(st.value, c, &st.escaped)
		}
	}
	return Entry{}, false
}

// continueLine handles a backslash immediately before the line break: the
// entry resumes on the next line with its leading spaces skipped.
func (st *scanState) continueLine() {
	st.escaped = false
	st.skipSpace = true
}

func (st *scanState) emit(line int) Entry {
	e := Entry{
		Key:       string(st.key),
		Value:     string(st.value),
		Separator: string(st.sep),
		Line:      st.start,
		LineCount: line - st.start + 1,
	}
	*st = newScanState()
	return e
}

// appendChar appends c to buf under the backslash rules shared by the key
// and value states: a backslash flags the next character as escaped, a
// second backslash is a literal one, and an escaped character is decoded
// before being appended.
func appendChar(buf []byte, c rune, escaped *bool) []byte {
	if c == '\\' {
		if !*escaped {
			*escaped = true
			return buf
		}
		*escaped = false
		return append(buf, '\\')
	}
	if *escaped {
		*escaped = false
		return utf8.AppendRune(buf, unescapeRune(c))
	}
	return utf8.AppendRune(buf, c)
}

func unescapeRune(c rune) rune {
	switch c {
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return c
	}
}
