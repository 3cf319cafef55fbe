// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Full path resolution -- UNIX version
//
//go:build !windows
// +build !windows

package sysdep

import (
	"path/filepath"
)

//
// Resolve path into the full, absolute form. The file
// needs not to exist
//
func FullPath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	return filepath.Abs(path)
}
