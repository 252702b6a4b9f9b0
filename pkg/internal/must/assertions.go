// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package must turns programmer errors into panics. Use it only where an
// error means broken code, never for input errors.
package must

import "fmt"

// Succeed panics on error.
func Succeed[T any](obj T, err error) T {
	if err != nil {
		panic(fmt.Errorf("assertion broken: %w", err))
	}
	return obj
}
