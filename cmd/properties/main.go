// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Command properties reads and edits Java .properties files. Edits keep
// the file's comments, ordering, and separator spellings intact.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yourbase/properties"
	"zombiezen.com/go/log"
)

func main() {
	log.SetDefault(&log.LevelFilter{
		Min:    log.Warn,
		Output: log.New(os.Stderr, "properties: ", 0, nil),
	})
	ctx := context.Background()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "properties",
		Short:         "Read and edit Java .properties files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(
		newGetCommand(),
		newSetCommand(),
		newDelCommand(),
		newListCommand(),
	)
	return root
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			value, ok := doc.Get(args[1])
			if !ok {
				return fmt.Errorf("get %s: key %q not found", args[0], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newSetCommand() *cobra.Command {
	opts := new(properties.SetOptions)
	c := &cobra.Command{
		Use:   "set FILE KEY VALUE",
		Short: "Set the value of a key, creating the file if needed",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editDocument(args[0], func(doc *properties.Document) {
				doc.Set(args[1], args[2], opts)
			})
		},
	}
	c.Flags().StringVar(&opts.Separator, "separator", "", `separator used when adding a new key (e.g. " = ")`)
	return c
}

func newDelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "del FILE KEY",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editDocument(args[0], func(doc *properties.Document) {
				doc.Remove(args[1])
			})
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE",
		Short: "Print every key and value, one key=value per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			for s := doc.Entries(); s.Scan(); {
				e := s.Entry()
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", e.Key, e.Value)
			}
			return nil
		},
	}
}

func readDocument(path string) (*properties.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return properties.Parse(string(data)), nil
}

// editDocument parses the file at path, applies edit, and writes the
// result back, keeping the file's permission bits. A missing file is
// treated as empty and created.
func editDocument(path string, edit func(*properties.Document)) error {
	mode := os.FileMode(0o644)
	doc := new(properties.Document)
	info, err := os.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
		if doc, err = readDocument(path); err != nil {
			return err
		}
	case !os.IsNotExist(err):
		return err
	}
	edit(doc)
	return os.WriteFile(path, []byte(doc.String()), mode)
}
