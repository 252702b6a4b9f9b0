// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

// Stat is a named figure about a written file, e.g. the rewrites applied to it
type Stat struct {
	Title   string
	Figures string
	Details []string
}

// Writer writes blobs with name to a given path
type Writer interface {
	Write(name, path string, content []byte, stats []*Stat) error
}
