// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Shell Link inspection

package shortcut

import (
	"fmt"
	"io"

	"github.com/alexpevzner/lnktools/internal/hotkey"
	"github.com/alexpevzner/lnktools/internal/log"
	"github.com/alexpevzner/lnktools/internal/shllink"
)

var inspectLog = log.NewLogger("inspect")

//
// Names of supported show commands
//
var showCmdNames = map[int]string{
	shllink.SW_SHOWNORMAL:      "SW_SHOWNORMAL",
	shllink.SW_SHOWMINIMIZED:   "SW_SHOWMINIMIZED",
	shllink.SW_SHOWMAXIMIZED:   "SW_SHOWMAXIMIZED",
	shllink.SW_SHOWMINNOACTIVE: "SW_SHOWMINNOACTIVE",
}

//
// Load the Shell Link file and print its properties into out,
// one line per property. Unset properties are not printed.
//
// If target is not a filesystem path, the CLSID target is
// recovered from the raw file bytes
//
func Inspect(path string, open Opener, out io.Writer) error {
	link, err := open()
	if err != nil {
		return &StepError{Step: "Open", Kind: ErrSession, Err: err}
	}

	defer link.Close()

	err = link.Load(path)
	if err != nil {
		return &StepError{Step: "Load", Kind: ErrLoad, Err: err}
	}

	// Target
	target, err := link.Path()
	switch {
	case err == nil && target != "":
		fmt.Fprintf(out, "Target path: %s\n", target)
	default:
		if err != nil {
			inspectLog.Debug("Path: %s", err)
		}

		if clsid, ok := shllink.ExtractCLSIDFile(path); ok {
			fmt.Fprintf(out, "CLSID: %s\n", clsid)
		}
	}

	// Simple strings
	for _, prop := range []struct {
		name string
		get  func() (string, error)
	}{
		{"Arguments", link.Arguments},
		{"Description", link.Description},
	} {
		if s := inspectString(prop.name, prop.get); s != "" {
			fmt.Fprintf(out, "%s: %s\n", prop.name, s)
		}
	}

	// Icon
	icon, idx, err := link.IconLocation()
	if err != nil {
		inspectLog.Debug("IconLocation: %s", err)
	} else if icon != "" {
		fmt.Fprintf(out, "Icon location: %s\nIcon index: %d\n", icon, idx)
	}

	if s := inspectString("WorkingDirectory", link.WorkingDirectory); s != "" {
		fmt.Fprintf(out, "Working directory: %s\n", s)
	}

	// Show command
	cmd, err := link.ShowCmd()
	if err != nil {
		inspectLog.Debug("ShowCmd: %s", err)
	} else if name, ok := showCmdNames[cmd]; ok {
		fmt.Fprintf(out, "Show command: %s\n", name)
	} else {
		fmt.Fprintf(out, "Show command: 0x%x (not supported)\n", cmd)
	}

	// Hotkey
	hk, err := link.Hotkey()
	if err != nil {
		inspectLog.Debug("Hotkey: %s", err)
	} else if hk != 0 {
		fmt.Fprintf(out, "Hotkey: %s\n", hotkey.Hotkey(hk))
	}

	// Flags
	flags, err := link.Flags()
	if err != nil {
		inspectLog.Debug("Flags: %s", err)
	} else {
		admin := "no"
		if flags&shllink.SLDF_RUNAS_USER != 0 {
			admin = "yes"
		}
		fmt.Fprintf(out, "Run as Administrator: %s\n", admin)
	}

	return nil
}

//
// Get string property. Errors are logged and reported
// as empty string
//
func inspectString(name string, get func() (string, error)) string {
	s, err := get()
	if err != nil {
		inspectLog.Debug("%s: %s", name, err)
		return ""
	}
	return s
}
