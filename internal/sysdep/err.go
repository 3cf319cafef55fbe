// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Errors

package sysdep

import (
	"errors"
)

var (
	ErrEmptyPath = errors.New("Empty path")
)
