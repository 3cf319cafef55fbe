// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Full path resolution -- Windows version

package sysdep

import (
	"golang.org/x/sys/windows"
)

//
// Resolve path into the full, absolute form, the same way
// as GetFullPathNameW does. The file needs not to exist
//
func FullPath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	return windows.FullPath(path)
}
