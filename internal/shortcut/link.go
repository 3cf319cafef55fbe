// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Shell Link object interface

package shortcut

import (
	"github.com/alexpevzner/lnktools/internal/sysdep"
)

//
// Link is the platform Shell Link object. Getters return
// empty values for unset properties and error only if the
// platform call fails
//
type Link interface {
	Close()
	Load(path string) error
	Save(path string) error

	Path() (string, error)
	SetPath(path string) error
	Arguments() (string, error)
	SetArguments(args string) error
	Description() (string, error)
	SetDescription(desc string) error
	WorkingDirectory() (string, error)
	SetWorkingDirectory(dir string) error
	IconLocation() (string, int, error)
	SetIconLocation(path string, idx int) error
	ShowCmd() (int, error)
	SetShowCmd(cmd int) error
	Hotkey() (uint16, error)
	SetHotkey(hk uint16) error
	Flags() (uint32, error)
	SetFlags(flags uint32) error
}

//
// Opener opens a new Link session
//
type Opener func() (Link, error)

//
// Open the system Shell Link object
//
func OpenSystem() (Link, error) {
	sl, err := sysdep.NewShellLink()
	if err != nil {
		return nil, err
	}
	return sl, nil
}
