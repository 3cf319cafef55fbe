// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Shell Link platform object -- UNIX version
//
// There is no system Shell Link component here, so links are
// read and written by the portable encoder from internal/shllink
//
//go:build !windows
// +build !windows

package sysdep

import (
	"os"

	"github.com/alexpevzner/lnktools/internal/shllink"
)

//
// ShellLink is the in-memory Shell Link
//
type ShellLink struct {
	link shllink.Link
}

//
// Create new ShellLink
//
func NewShellLink() (*ShellLink, error) {
	sl := &ShellLink{
		link: shllink.Link{ShowCommand: shllink.SW_SHOWNORMAL},
	}
	return sl, nil
}

//
// Close the ShellLink. Nothing to release here
//
func (sl *ShellLink) Close() {
}

//
// Load link from file
//
func (sl *ShellLink) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer file.Close()

	link, err := shllink.Decode(file)
	if err != nil {
		return err
	}

	sl.link = *link
	return nil
}

//
// Save link to file
//
func (sl *ShellLink) Save(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	err = sl.link.Encode(file)
	err2 := file.Close()

	if err == nil {
		err = err2
	}

	if err != nil {
		os.Remove(path)
	}

	return err
}

//
// Get link target path. Empty string is returned,
// when target is not a filesystem object
//
func (sl *ShellLink) Path() (string, error) {
	return sl.link.LocalBasePath, nil
}

//
// Set link target path or ::{CLSID}
//
func (sl *ShellLink) SetPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	sl.link.SetTarget(path)
	return nil
}

//
// Get command line arguments
//
func (sl *ShellLink) Arguments() (string, error) {
	return sl.link.Arguments, nil
}

//
// Set command line arguments
//
func (sl *ShellLink) SetArguments(args string) error {
	sl.link.Arguments = args
	return nil
}

//
// Get description
//
func (sl *ShellLink) Description() (string, error) {
	return sl.link.Name, nil
}

//
// Set description
//
func (sl *ShellLink) SetDescription(desc string) error {
	sl.link.Name = desc
	return nil
}

//
// Get working directory
//
func (sl *ShellLink) WorkingDirectory() (string, error) {
	return sl.link.WorkingDir, nil
}

//
// Set working directory
//
func (sl *ShellLink) SetWorkingDirectory(dir string) error {
	sl.link.WorkingDir = dir
	return nil
}

//
// Get icon location and index
//
func (sl *ShellLink) IconLocation() (string, int, error) {
	return sl.link.IconLocation, sl.link.IconIndex, nil
}

//
// Set icon location and index
//
func (sl *ShellLink) SetIconLocation(path string, idx int) error {
	sl.link.IconLocation = path
	sl.link.IconIndex = idx
	return nil
}

//
// Get show command (SW_xxx)
//
func (sl *ShellLink) ShowCmd() (int, error) {
	return int(sl.link.ShowCommand), nil
}

//
// Set show command (SW_xxx)
//
func (sl *ShellLink) SetShowCmd(cmd int) error {
	sl.link.ShowCommand = uint32(cmd)
	return nil
}

//
// Get hotkey
//
func (sl *ShellLink) Hotkey() (uint16, error) {
	return sl.link.HotKey, nil
}

//
// Set hotkey
//
func (sl *ShellLink) SetHotkey(hk uint16) error {
	sl.link.HotKey = hk
	return nil
}

//
// Get SLDF_xxx flags
//
func (sl *ShellLink) Flags() (uint32, error) {
	return uint32(sl.link.Flags), nil
}

//
// Set SLDF_xxx flags
//
func (sl *ShellLink) SetFlags(flags uint32) error {
	sl.link.Flags = shllink.LinkFlags(flags)
	return nil
}
