// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package properties provides a parser and serializer for the Java
.properties file format.

This package is specifically designed for read-modify-write scenarios: a
Document stores the file's original lines, so comments, blank lines,
separator spellings, and unrelated entries survive edits byte-for-byte.
Editing a value rewrites only the lines that spell it.

Syntax

A properties file is Unicode text. Lines may be terminated by a line feed,
a carriage return, or a carriage return followed by a line feed, mixed
freely within one file.

A property is a key and value separated by an equals sign ('='), a colon
(':'), or whitespace:

	key=value
	key2 : value2
	key3 value3

The separator may be surrounded by any amount of space, but contains at
most one '=' or ':'; a second one belongs to the value. Leading spaces on
a line are ignored. If the first non-space character is a hash ('#') or an
exclamation mark ('!'), the line is a comment. A line whose key has no
separator or value is a property with the empty string as its value.

A backslash escapes the character after it. This is how keys containing
spaces, separators, or comment markers are written:

	\t    U+0009 horizontal tab
	\n    U+000A line feed
	\f    U+000C form feed
	\r    U+000D carriage return
	\     (backslash space) U+0020 space
	\=    U+003D equals sign
	\uXXXX four-digit hexadecimal escape

A backslash before any other character yields that character, so '\\' is a
backslash and unknown escapes are harmless. A backslash at the end of a
line continues the property on the next line, skipping that line's leading
spaces:

	key = long \
	      value

Note that Unescape does not decode \uXXXX sequences even though EscapeKey
and EscapeValue produce them; see Unescape.

Malformed input does not exist as far as this package is concerned: Parse
never fails, and anything the scanner cannot assemble into a property (for
example a trailing continuation with no following line) is simply not
reported as an entry.

Repeated keys

Multiple properties may have the same key. When retrieving the property in
a single-value context (like using *Document.Get), only the last value will
be used. Mutations take the opposite view: *Document.Set rewrites the first
occurrence in place and leaves later ones alone. Both behaviors match the
format's common tooling and are intentional.
*/
package properties
