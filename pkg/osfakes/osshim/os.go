// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package osshim

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../../license_prefix.txt

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Os is shim for methods from os package
//
//counterfeiter:generate . Os
type Os interface {
	ReadFile(name string) ([]byte, error)
	IsNotExist(err error) bool
	IsDir(path string) (bool, error)
	MkdirAll(path string, perm os.FileMode) error
	// WalkFiles calls fn for each regular file under root in lexical order
	WalkFiles(root string, fn func(path string) error) error
}

// OsShim is default Os implementation
type OsShim struct{}

// ReadFile see os.ReadFile
func (sh *OsShim) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// IsNotExist see os.IsNotExist
func (sh *OsShim) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

// IsDir checks if a given path is a dir
func (sh *OsShim) IsDir(path string) (bool, error) {
	lstat, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return lstat.IsDir(), nil
}

// MkdirAll see os.MkdirAll
func (sh *OsShim) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WalkFiles see filepath.WalkDir
func (sh *OsShim) WalkFiles(root string, fn func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return fn(path)
	})
}
