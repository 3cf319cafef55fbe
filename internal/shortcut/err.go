// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Errors

package shortcut

import (
	"errors"
	"fmt"

	"github.com/alexpevzner/lnktools/internal/hotkey"
)

// ----- Option errors -----
var (
	ErrHelp           = errors.New("help requested")
	ErrInvalidOption  = errors.New("invalid option")
	ErrMissingOutput  = errors.New("no output given")
	ErrMissingTarget  = errors.New("no target given")
	ErrInvalidHotkey  = hotkey.ErrInvalid
	ErrPathResolution = errors.New("failed to resolve path")
)

// ----- Shell Link errors -----
var (
	ErrSession       = errors.New("can't open Shell Link session")
	ErrLinkProperty  = errors.New("link property rejected")
	ErrElevationFlag = errors.New("can't set run as administrator flag")
	ErrPersistence   = errors.New("can't save link")
	ErrLoad          = errors.New("can't load link")
)

//
// OptionError reports the command-line argument, that caused
// the problem
//
type OptionError struct {
	Arg string // Offending argument
	Err error  // One of ErrXXX above
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s -- '%s'", e.Err, e.Arg)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

//
// StepError reports the failed step of the Shell Link session
//
type StepError struct {
	Step string // Failed step, i.e. "SetPath"
	Kind error  // ErrLinkProperty, ErrElevationFlag etc
	Err  error  // Underlying platform error
}

func (e *StepError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Step, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Step, e.Kind, e.Err)
}

//
// StepError matches both its kind and the underlying error
//
func (e *StepError) Is(target error) bool {
	return target == e.Kind
}

func (e *StepError) Unwrap() error {
	return e.Err
}
