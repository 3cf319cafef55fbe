// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Command-line options handling

package shortcut

import (
	"strconv"
	"strings"

	"github.com/alexpevzner/lnktools/internal/hotkey"
)

//
// Parsed options
//
type Options struct {
	Desc Descriptor // Resulting descriptor
}

//
// Bare switches, that take no value
//
var optSwitches = []struct {
	name string
	set  func(d *Descriptor)
}{
	{"max", func(d *Descriptor) { d.ShowState = ShowMaximized }},
	{"min", func(d *Descriptor) { d.ShowState = ShowMinNoActive }},
	{"tfull", func(d *Descriptor) { d.TargetFullPath = true }},
	{"ifull", func(d *Descriptor) { d.IconFullPath = true }},
	{"admin", func(d *Descriptor) { d.RunAsAdmin = true }},
}

//
// Parse options
//
// Options start with '/' or '-' and are case-insensitive. Valued
// options look like /x:value or /x=value. Returns ErrHelp, if help
// was requested, or *OptionError for the offending argument.
// opt.Desc is modified only on success
//
func (opt *Options) Parse(args []string) error {
	d := NewDescriptor()
	hkArg := ""

	for _, arg := range args {
		if len(arg) < 2 || (arg[0] != '/' && arg[0] != '-') {
			return &OptionError{Arg: arg, Err: ErrInvalidOption}
		}

		name := arg[1:]
		if name == "?" || strings.EqualFold(name, "h") ||
			strings.EqualFold(name, "help") {
			return ErrHelp
		}

		if optSwitch(&d, name) {
			continue
		}

		// From here on argument should be /x:value
		if len(arg) < 4 || (arg[2] != ':' && arg[2] != '=') {
			return &OptionError{Arg: arg, Err: ErrInvalidOption}
		}

		value := arg[3:]

		switch strings.ToLower(arg[1:2]) {
		case "o":
			d.Output = value
		case "t":
			d.Target = value
		case "a":
			d.Arguments = value
		case "i":
			d.IconPath = value
		case "n":
			n, err := strconv.Atoi(value)
			if err != nil {
				return &OptionError{Arg: arg, Err: ErrInvalidOption}
			}
			d.IconIndex = n
		case "d":
			d.Description = value
		case "w":
			d.WorkingDir = value
		case "k":
			hkArg = arg
		default:
			return &OptionError{Arg: arg, Err: ErrInvalidOption}
		}
	}

	if d.Output == "" {
		return ErrMissingOutput
	}

	if d.Target == "" {
		return ErrMissingTarget
	}

	if hkArg != "" {
		hk, err := hotkey.Parse(hkArg[3:])
		if err != nil {
			return &OptionError{Arg: hkArg, Err: ErrInvalidHotkey}
		}
		d.Hotkey = hk
	}

	d.ShowState = d.ShowState.Normalize()
	opt.Desc = d

	return nil
}

//
// Apply bare switch, if name is one of them
//
func optSwitch(d *Descriptor, name string) bool {
	for _, sw := range optSwitches {
		if strings.EqualFold(name, sw.name) {
			sw.set(d)
			return true
		}
	}
	return false
}
