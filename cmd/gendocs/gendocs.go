// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gardener/richcontent/pkg/osfakes/osshim"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

const (
	// Markdown generates one markdown file per command
	Markdown = "md"
	// ManPages generates one man page per command
	ManPages = "man"
)

var manHeader = doc.GenManHeader{
	Title:   "RICHCONTENT",
	Manual:  "Richcontent Command Reference",
	Section: "1",
}

type options struct {
	format      string
	destination string
}

// NewGenCmdDocs creates the command generating the reference documentation
// of the root command tree
func NewGenCmdDocs(sh osshim.Os) *cobra.Command {
	o := &options{}
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generate(cmd.Root(), sh, o); err != nil {
				klog.Error(err)
				return err
			}
			return nil
		},
	}
	command.Flags().StringVarP(&o.format, "format", "f", Markdown,
		"Specifies the generated documentation format. Must be one of: `md` (for markdown) or `man` (for man pages).")
	command.Flags().StringVarP(&o.destination, "destination", "d", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	_ = command.MarkFlagRequired("destination")
	return command
}

func generate(root *cobra.Command, sh osshim.Os, o *options) error {
	if o.format != Markdown && o.format != ManPages {
		return fmt.Errorf("unknown format '%s'. Must be one of %v", o.format, []string{Markdown, ManPages})
	}
	destination := filepath.Clean(o.destination)
	if err := sh.MkdirAll(destination, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create documentation directory %s: %w", destination, err)
	}
	root.DisableAutoGenTag = true
	if o.format == ManPages {
		header := manHeader
		return doc.GenManTree(root, &header, destination)
	}
	return doc.GenMarkdownTree(root, destination)
}
