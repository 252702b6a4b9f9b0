// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package link

import (
	"net/url"

	"github.com/gardener/richcontent/pkg/internal/must"
)

// Build joins a base URL and path elements into a link
func Build(elem ...string) (string, error) {
	if len(elem) == 0 {
		return "", nil
	}
	return url.JoinPath(elem[0], elem[1:]...)
}

// MustBuild is Build that panics on error
func MustBuild(elem ...string) string {
	return must.Succeed(Build(elem...))
}
