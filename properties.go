// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

// A Document is the contents of one properties file, stored as its lines.
// The zero value is an empty document. Documents can be read by multiple
// concurrent goroutines, but mutations require external synchronization.
type Document struct {
	lines []string
}

// Parse parses properties text into a Document. Parse never fails: every
// line is stored verbatim, and lines that do not spell a property are
// skipped during iteration rather than reported as errors.
func Parse(text string) *Document {
	return &Document{lines: splitLines(text)}
}

// splitLines splits text into lines terminated by "\n", "\r\n", or a bare
// "\r", mixed freely. A trailing terminator does not produce a final empty
// line.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// MarshalText implements encoding.TextMarshaler. It renders the document's
// lines joined by '\n', dropping empty leading lines and ending with a
// single newline unless the document is empty. The returned error is
// always nil.
func (d *Document) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	lines := d.lines
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	n := 0
	for _, line := range lines {
		n += len(line) + 1
	}
	buf := make([]byte, 0, n)
	for _, line := range lines {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	return buf, nil
}

// String renders the document as properties text, same as MarshalText.
func (d *Document) String() string {
	text, _ := d.MarshalText()
	return string(text)
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing the
// document's lines with the parsed data. The returned error is always nil.
func (d *Document) UnmarshalText(data []byte) error {
	*d = *Parse(string(data))
	return nil
}

// Get returns the value associated with the given key. If the document
// repeats the key, the last value wins. The second return value reports
// whether the key was present at all.
func (d *Document) Get(key string) (value string, ok bool) {
	for s := d.Entries(); s.Scan(); {
		if e := s.Entry(); e.Key == key {
			value, ok = e.Value, true
		}
	}
	return value, ok
}

// Map returns the document's keys and values. If the document repeats a
// key, the last value wins. Map returns nil for a nil document.
func (d *Document) Map() map[string]string {
	if d == nil {
		return nil
	}
	m := make(map[string]string, len(d.lines))
	for s := d.Entries(); s.Scan(); {
		e := s.Entry()
		m[e.Key] = e.Value
	}
	return m
}
