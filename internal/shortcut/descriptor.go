// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Shortcut descriptor

package shortcut

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/alexpevzner/lnktools/internal/hotkey"
	"github.com/alexpevzner/lnktools/internal/shllink"
)

//
// ShowState is the initial window state of the link target
//
type ShowState int

const (
	ShowNormal      ShowState = shllink.SW_SHOWNORMAL
	ShowMaximized   ShowState = shllink.SW_SHOWMAXIMIZED
	ShowMinNoActive ShowState = shllink.SW_SHOWMINNOACTIVE
)

//
// Map anything but the three supported states into ShowNormal
//
func (s ShowState) Normalize() ShowState {
	switch s {
	case ShowNormal, ShowMaximized, ShowMinNoActive:
		return s
	}
	return ShowNormal
}

//
// Descriptor is the complete set of properties of
// the shortcut to be created
//
type Descriptor struct {
	Output      string        // Path to the .lnk file
	Target      string        // Target path or ::{CLSID}
	Arguments   string        // Command line arguments
	IconPath    string        // Path to file containing icon
	IconIndex   int           // Icon index within IconPath
	Description string        // Description (for tooltip)
	WorkingDir  string        // Working directory
	ShowState   ShowState     // Initial window state
	Hotkey      hotkey.Hotkey // Hotkey, 0 if not set
	RunAsAdmin  bool          // Set the "run as administrator" flag

	TargetFullPath bool // Resolve Target to the full path
	IconFullPath   bool // Resolve IconPath to the full path
}

//
// Create new Descriptor with default values
//
func NewDescriptor() Descriptor {
	return Descriptor{ShowState: ShowNormal}
}

//
// Validate the Descriptor. Returns ErrMissingOutput or
// ErrMissingTarget for missed mandatory fields
//
func (d *Descriptor) Validate() error {
	err := validation.ValidateStruct(d,
		validation.Field(&d.Output, validation.Required),
		validation.Field(&d.Target, validation.Required),
		validation.Field(&d.ShowState,
			validation.In(ShowNormal, ShowMaximized, ShowMinNoActive)),
	)

	if errs, ok := err.(validation.Errors); ok {
		switch {
		case errs["Output"] != nil:
			return ErrMissingOutput
		case errs["Target"] != nil:
			return ErrMissingTarget
		}
	}

	return err
}

//
// Check that Output ends on .lnk
//
func (d *Descriptor) HasLinkExt() bool {
	return strings.EqualFold(filepath.Ext(d.Output), ".lnk")
}

//
// Resolve Target and IconPath to full paths, if requested.
// The fullpath function does the actual resolution
//
func (d *Descriptor) ResolvePaths(fullpath func(string) (string, error)) error {
	if d.TargetFullPath {
		path, err := fullpath(d.Target)
		if err != nil {
			return &OptionError{Arg: d.Target, Err: ErrPathResolution}
		}
		d.Target = path
	}

	if d.IconFullPath && d.IconPath != "" {
		path, err := fullpath(d.IconPath)
		if err != nil {
			return &OptionError{Arg: d.IconPath, Err: ErrPathResolution}
		}
		d.IconPath = path
	}

	return nil
}
