// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Shell Link creation

package shortcut

import (
	"github.com/alexpevzner/lnktools/internal/log"
	"github.com/alexpevzner/lnktools/internal/shllink"
)

var createLog = log.NewLogger("create")

//
// Create the shortcut, described by d
//
// Properties are set in the fixed order: target path, arguments,
// icon, description, working directory, show command and hotkey.
// Empty optional properties are not set at all. The link session
// is closed on return, regardless of result. Unknown show
// state is replaced with ShowNormal
//
func Create(d *Descriptor, open Opener) error {
	desc := *d
	desc.ShowState = desc.ShowState.Normalize()
	d = &desc

	err := d.Validate()
	if err != nil {
		return err
	}

	link, err := open()
	if err != nil {
		return &StepError{Step: "Open", Kind: ErrSession, Err: err}
	}

	defer link.Close()

	steps := []struct {
		name string
		skip bool
		set  func() error
	}{
		{"SetPath", false, func() error {
			return link.SetPath(d.Target)
		}},
		{"SetArguments", d.Arguments == "", func() error {
			return link.SetArguments(d.Arguments)
		}},
		{"SetIconLocation", d.IconPath == "", func() error {
			return link.SetIconLocation(d.IconPath, d.IconIndex)
		}},
		{"SetDescription", d.Description == "", func() error {
			return link.SetDescription(d.Description)
		}},
		{"SetWorkingDirectory", d.WorkingDir == "", func() error {
			return link.SetWorkingDirectory(d.WorkingDir)
		}},
		{"SetShowCmd", false, func() error {
			return link.SetShowCmd(int(d.ShowState))
		}},
		{"SetHotkey", d.Hotkey == 0, func() error {
			return link.SetHotkey(uint16(d.Hotkey))
		}},
	}

	for _, step := range steps {
		if step.skip {
			continue
		}

		createLog.Trace("%s", step.name)
		err = step.set()
		if err != nil {
			return &StepError{Step: step.name, Kind: ErrLinkProperty, Err: err}
		}
	}

	if d.RunAsAdmin {
		flags, err := link.Flags()
		if err != nil {
			return &StepError{Step: "GetFlags", Kind: ErrElevationFlag, Err: err}
		}

		createLog.Trace("SetFlags: 0x%x", flags|shllink.SLDF_RUNAS_USER)
		err = link.SetFlags(flags | shllink.SLDF_RUNAS_USER)
		if err != nil {
			return &StepError{Step: "SetFlags", Kind: ErrElevationFlag, Err: err}
		}
	}

	createLog.Debug("save %q", d.Output)
	err = link.Save(d.Output)
	if err != nil {
		return &StepError{Step: "Save", Kind: ErrPersistence, Err: err}
	}

	return nil
}
