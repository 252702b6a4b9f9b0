// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates DryRunWriters writing to the
	// same backend but for different roots
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	Writer io.Writer
	mux    sync.Mutex
	files  []*file
	t1     time.Time
}

type file struct {
	path  string
	stats []*Stat
}

type writer struct {
	root string
	d    *dryRunWriter
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root: root,
		d:    d,
	}
}

func (w *writer) Write(name, path string, _ []byte, stats []*Stat) error {
	p := strings.Join(nonEmpty(w.root, path, name), "/")
	w.d.mux.Lock()
	defer w.d.mux.Unlock()
	w.d.files = append(w.d.files, &file{
		path:  p,
		stats: stats,
	})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() error {
	var b bytes.Buffer
	d.mux.Lock()
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	d.mux.Unlock()
	b.WriteString(fmt.Sprintf("\nBatch finished in %f seconds\n", time.Since(d.t1).Seconds()))
	_, err := d.Writer.Write(b.Bytes())
	return err
}

func format(files []*file, b *bytes.Buffer) {
	all := map[string]bool{}
	for _, f := range files {
		dd := strings.Split(f.path, "/")
		for i, s := range dd {
			p := strings.Join(dd[:i+1], "/")
			if all[p] {
				continue
			}
			all[p] = true
			b.Write(bytes.Repeat([]byte("  "), i))
			b.WriteString(fmt.Sprintf("%s\n", s))
			if i < len(dd)-1 {
				continue
			}
			for _, st := range f.stats {
				b.Write(bytes.Repeat([]byte("  "), i+1))
				b.WriteString(fmt.Sprintf("%s stats: %s\n", st.Title, st.Figures))
				for _, detail := range st.Details {
					b.Write(bytes.Repeat([]byte("  "), i+2))
					b.WriteString(fmt.Sprintf("%s\n", detail))
				}
			}
		}
	}
}

func nonEmpty(parts ...string) []string {
	var s []string
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" && p != "." {
			s = append(s, p)
		}
	}
	return s
}
