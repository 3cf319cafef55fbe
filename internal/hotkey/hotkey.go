// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Shell Link hotkeys: the ca/cs/sa + key mini-grammar

package hotkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalid = errors.New("invalid hotkey")
)

//
// Hotkey is the 16-bit value, stored in the Shell Link:
// high byte is a set of HOTKEYF_xxx modifiers, low byte is
// a virtual key code. Zero means "not set"
//
type Hotkey uint16

//
// Modifier flags (high byte)
//
type Modifiers uint8

const (
	HOTKEYF_SHIFT   Modifiers = 0x01
	HOTKEYF_CONTROL Modifiers = 0x02
	HOTKEYF_ALT     Modifiers = 0x04
	HOTKEYF_EXT     Modifiers = 0x08

	CtrlAlt   = HOTKEYF_CONTROL | HOTKEYF_ALT
	CtrlShift = HOTKEYF_CONTROL | HOTKEYF_SHIFT
	ShiftAlt  = HOTKEYF_SHIFT | HOTKEYF_ALT
)

//
// Virtual key codes, supported in hotkeys
// (besides 0-9 and A-Z, which match their ASCII codes)
//
const (
	VK_F1      = 0x70
	VK_F24     = 0x87
	VK_NUMLOCK = 0x90
	VK_SCROLL  = 0x91
)

//
// Modifier pairs, as written on a command line
//
var modifierPairs = []struct {
	name string
	mod  Modifiers
}{
	{"ca", CtrlAlt},
	{"cs", CtrlShift},
	{"sa", ShiftAlt},
}

//
// Combo is a parsed, not yet encoded hotkey
//
type Combo struct {
	Modifiers Modifiers // One of CtrlAlt, CtrlShift, ShiftAlt
	Key       uint8     // Virtual key code
}

//
// Encode combo into the Hotkey value
//
func (c Combo) Encode() Hotkey {
	return Hotkey(uint16(c.Modifiers)<<8 | uint16(c.Key))
}

//
// Parse hotkey text into Combo
//
// The syntax is <modifier><key>, where modifier is ca, cs or sa
// (case-insensitive) and key is one of A-Z, 0-9, numlock, scroll
// or F1-F24 (no leading zeros)
//
func ParseCombo(text string) (Combo, error) {
	if len(text) < 3 {
		return Combo{}, ErrInvalid
	}

	var combo Combo
	for _, pair := range modifierPairs {
		if strings.EqualFold(text[:2], pair.name) {
			combo.Modifiers = pair.mod
			break
		}
	}

	if combo.Modifiers == 0 {
		return Combo{}, ErrInvalid
	}

	key, ok := parseKey(text[2:])
	if !ok {
		return Combo{}, ErrInvalid
	}

	combo.Key = key
	return combo, nil
}

//
// Parse hotkey text and encode it
//
func Parse(text string) (Hotkey, error) {
	combo, err := ParseCombo(text)
	if err != nil {
		return 0, err
	}
	return combo.Encode(), nil
}

//
// Parse the key part of hotkey text
//
func parseKey(s string) (uint8, bool) {
	if len(s) == 1 {
		c := s[0]
		switch {
		case 'a' <= c && c <= 'z':
			return c - 'a' + 'A', true
		case 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			return c, true
		}
		return 0, false
	}

	switch {
	case strings.EqualFold(s, "numlock"):
		return VK_NUMLOCK, true
	case strings.EqualFold(s, "scroll"):
		return VK_SCROLL, true
	case s[0] == 'f' || s[0] == 'F':
		n, err := strconv.Atoi(s[1:])
		if err == nil && s[1] >= '1' && s[1] <= '9' && n >= 1 && n <= 24 {
			return uint8(VK_F1 + n - 1), true
		}
	}

	return 0, false
}

//
// Get modifiers part
//
func (hk Hotkey) Modifiers() Modifiers {
	return Modifiers(hk >> 8)
}

//
// Get virtual key part
//
func (hk Hotkey) Key() uint8 {
	return uint8(hk)
}

//
// Format hotkey as a list of bracketed names, followed by
// the raw value, i.e. "[CTRL] [ALT] [S] (0x653)"
//
func (hk Hotkey) String() string {
	var names []string

	mod := hk.Modifiers()
	for _, m := range []struct {
		bit  Modifiers
		name string
	}{
		{HOTKEYF_CONTROL, "CTRL"},
		{HOTKEYF_SHIFT, "SHIFT"},
		{HOTKEYF_ALT, "ALT"},
		{HOTKEYF_EXT, "EXT"},
	} {
		if mod&m.bit != 0 {
			names = append(names, "["+m.name+"]")
		}
	}

	names = append(names, "["+keyName(hk.Key())+"]")

	return fmt.Sprintf("%s (0x%X)", strings.Join(names, " "), uint16(hk))
}

//
// Get printable name of the virtual key
//
func keyName(key uint8) string {
	switch {
	case 'A' <= key && key <= 'Z', '0' <= key && key <= '9':
		return string(rune(key))
	case VK_F1 <= key && key <= VK_F24:
		return fmt.Sprintf("F%d", key-VK_F1+1)
	case key == VK_NUMLOCK:
		return "NUMLOCK"
	case key == VK_SCROLL:
		return "SCROLL"
	case key == 0:
		return "0x00 (not set)"
	}

	return fmt.Sprintf("0x%2.2X (not supported)", key)
}
