package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildDoc = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType  docType
	navOrder int
}

// metaMap maps the base Markdown file name to its position in the docs
var metaMap = map[string]meta{
	"seqsep":                       {root, 0},
	"seqsep_count":                 {child, 1},
	"seqsep_completion":            {childParent, 2},
	"seqsep_completion_bash":       {grandchild, 0},
	"seqsep_completion_fish":       {grandchild, 1},
	"seqsep_completion_powershell": {grandchild, 2},
	"seqsep_completion_zsh":        {grandchild, 3},
}

// newDocsCmd returns the hidden command that writes Markdown docs for every command
func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "docs [dir]",
		Short:  "Write Markdown documentation for seqsep's commands",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0777); err != nil {
				return fmt.Errorf("failed to make docs directory: %w", err)
			}
			return doc.GenMarkdownTreeCustom(cmd.Root(), args[0], filePrepender, linkHandler)
		},
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	base := docBase(filename)
	m, ok := metaMap[base]
	if !ok {
		// commands without an entry are listed after the known ones
		m = meta{child, len(metaMap)}
	}

	// seqsep_completion_bash -> [seqsep completion bash]
	parts := strings.Split(base, "_")
	title := parts[len(parts)-1]

	switch m.docType {
	case root:
		return fmt.Sprintf(rootDoc, title, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentDoc, title, parts[0], m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildDoc, title, parts[1], parts[0], m.navOrder)
	}
	return fmt.Sprintf(childDoc, title, parts[0], m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := docBase(filename)
	if base == "seqsep" {
		return "/"
	}
	return base
}

// docBase returns a doc file's name without its directory or extension
func docBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}
