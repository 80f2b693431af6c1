// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

// SetOptions holds optional parameters for Document.Set.
type SetOptions struct {
	// Separator is the text written between key and value when Set appends
	// a line for a key the document does not have yet, e.g. " = " or ": ".
	// If empty, Set reuses the last separator spelled in the document,
	// falling back to "=". Separator has no effect when an existing entry
	// is rewritten; that entry keeps its own separator.
	Separator string
}

// Set sets the value for key, keeping the document's formatting. If the
// document already has the key, the lines spelling its first occurrence
// are replaced by a single line at the same position and every other line
// is left untouched, including later occurrences of the same key.
// Otherwise a new line is appended. Nil options are treated identically as
// passing the zero value.
//
// The key and value are written with EscapeKey and EscapeValue, so any
// string is safe to pass.
func (d *Document) Set(key, value string, opts *SetOptions) {
	e, lastSep, found := d.find(key)
	sep := ""
	if found {
		sep = e.Separator
	} else if opts != nil {
		sep = opts.Separator
	}
	if sep == "" {
		sep = lastSep
	}
	if sep == "" {
		sep = "="
	}
	line := EscapeKey(key, true) + sep + EscapeValue(value, true)
	if found {
		d.splice(e.Line, e.LineCount, line)
	} else {
		d.lines = append(d.lines, line)
	}
}

// Remove deletes the first occurrence of key from the document, including
// every line a continuation spreads it across. Removing an absent key is a
// no-op.
func (d *Document) Remove(key string) {
	if e, _, found := d.find(key); found {
		d.splice(e.Line, e.LineCount)
	}
}

// find locates the first entry for key. It also reports the separator most
// recently observed while scanning, which styles lines the mutators must
// invent. Note the contrast with Get: lookups are last-wins, edits rewrite
// the first occurrence.
func (d *Document) find(key string) (e Entry, lastSep string, found bool) {
	for s := d.Entries(); s.Scan(); {
		cur := s.Entry()
		if cur.Separator != "" {
			lastSep = cur.Separator
		}
		if cur.Key == key {
			return cur, lastSep, true
		}
	}
	return Entry{}, lastSep, false
}

// splice replaces the count lines starting at start with the given lines.
func (d *Document) splice(start, count int, lines ...string) {
	next := make([]string, 0, len(d.lines)-count+len(lines))
	next = append(next, d.lines[:start]...)
	next = append(next, lines...)
	next = append(next, d.lines[start+count:]...)
	d.lines = next
}
