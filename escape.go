// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unescape replaces each two-character backslash escape in s with the
// character it represents. Escapes other than \f, \n, \r, and \t decode to
// the escaped character itself, so unknown escapes degrade harmlessly and
// `\\` decodes to a backslash.
//
// Unescape does not decode \uXXXX sequences: the six characters \u0041
// decode to the five characters u0041, not to A. This mirrors how the
// scanner reads keys and values and is a documented limitation of the
// format's escape handling, not an oversight.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	sb := new(strings.Builder)
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// EscapeKey returns the escaped spelling of key for use in a properties
// line. Every space is escaped, since an unescaped space would end the key.
// If escapeUnicode is true, characters outside printable ASCII are written
// as \uXXXX escapes; otherwise they pass through and the caller is
// responsible for writing the file in an encoding that can hold them.
func EscapeKey(key string, escapeUnicode bool) string {
	return string(appendEscaped(nil, key, true, escapeUnicode))
}

// EscapeValue returns the escaped spelling of value for use in a
// properties line. Unlike EscapeKey, only a leading space needs escaping;
// interior spaces are left alone. escapeUnicode behaves as in EscapeKey.
func EscapeValue(value string, escapeUnicode bool) string {
	return string(appendEscaped(nil, value, false, escapeUnicode))
}

const hexDigits = "0123456789abcdef"

func appendEscaped(dst []byte, s string, escapeSpace, escapeUnicode bool) []byte {
	for i, c := range s {
		switch {
		case c == ' ':
			if escapeSpace || i == 0 {
				dst = append(dst, '\\')
			}
			dst = append(dst, ' ')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c == '=' || c == ':' || c == '#' || c == '!':
			dst = append(dst, '\\', byte(c))
		case (c < 0x20 || c > 0x7e) && escapeUnicode:
			if c > 0xffff {
				// Above the Basic Multilingual Plane, write the UTF-16
				// surrogate pair so every escape keeps four hex digits.
				hi, lo := utf16.EncodeRune(c)
				dst = appendUnicodeEscape(dst, hi)
				dst = appendUnicodeEscape(dst, lo)
			} else {
				dst = appendUnicodeEscape(dst, c)
			}
		default:
			dst = utf8.AppendRune(dst, c)
		}
	}
	return dst
}

func appendUnicodeEscape(dst []byte, c rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[c>>12&0xf],
		hexDigits[c>>8&0xf],
		hexDigits[c>>4&0xf],
		hexDigits[c&0xf])
}
