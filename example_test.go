// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties_test

import (
	"fmt"

	"github.com/yourbase/properties"
)

func ExampleParse() {
	doc := properties.Parse("# Database settings\n" +
		"db.host = example.com\n" +
		"db.port = 5432\n")
	host, _ := doc.Get("db.host")
	fmt.Println(host)

	// Output:
	// example.com
}

func ExampleDocument_Set() {
	doc := properties.Parse("# Database settings\n" +
		"db.host = example.com\n" +
		"db.port = 5432\n")

	// Edits preserve comments, ordering, and each line's separator style.
	doc.Set("db.port", "5433", nil)
	doc.Set("db.name", "inventory", nil)
	fmt.Print(doc)

	// Output:
	// # Database settings
	// db.host = example.com
	// db.port = 5433
	// db.name = inventory
}

func ExampleDocument_Entries() {
	doc := properties.Parse("a=1\n# comment lines produce no entries\nb : 2\n")
	for s := doc.Entries(); s.Scan(); {
		e := s.Entry()
		fmt.Printf("%s=%s\n", e.Key, e.Value)
	}

	// Output:
	// a=1
	// b=2
}

func ExampleDocument_Remove() {
	doc := properties.Parse("greeting=long \\\n   goodbye\nfarewell=ciao\n")

	// Removing an entry removes every line it spans.
	doc.Remove("greeting")
	fmt.Print(doc)

	// Output:
	// farewell=ciao
}

func ExampleEscapeValue() {
	fmt.Println(properties.EscapeValue(" spaced out = fun", true))

	// Output:
	// \ spaced out \= fun
}
