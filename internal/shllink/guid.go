// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// GUIDs and CLSID targets

package shllink

import (
	"strings"

	"github.com/google/uuid"
)

//
// GUID, as stored on disk: Data1, Data2 and Data3 are
// little-endian, Data4 is stored byte by byte
//
type GUID [16]byte

//
// Separator between CLSIDs of a two-level namespace target
//
const clsidSeparator = `\0\`

//
// Convert between on-disk and RFC 4122 byte order.
// The conversion is symmetric
//
func (g GUID) swap() [16]byte {
	return [16]byte{
		g[3], g[2], g[1], g[0],
		g[5], g[4],
		g[7], g[6],
		g[8], g[9],
		g[10], g[11], g[12], g[13], g[14], g[15],
	}
}

//
// Format GUID in the registry form, upper-case, with braces
//
func (g GUID) String() string {
	return "{" + strings.ToUpper(uuid.UUID(g.swap()).String()) + "}"
}

//
// Format GUID as a namespace target: ::{...}
//
func (g GUID) CLSID() string {
	return "::" + g.String()
}

//
// Parse GUID, with or without braces
//
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, err
	}
	return GUID(GUID(u).swap()), nil
}

//
// Check if link target refers to the shell namespace
//
func IsCLSIDTarget(target string) bool {
	return strings.HasPrefix(target, "::{")
}

//
// Parse a namespace target into the list of GUIDs.
//
// Accepted forms are ::{GUID}, ::{GUID1}\0\::{GUID2}
// (as printed by shortcutinfo) and ::{GUID1}\::{GUID2}
//
func ParseCLSIDTarget(target string) ([]GUID, bool) {
	if !IsCLSIDTarget(target) {
		return nil, false
	}

	parts := strings.Split(target, clsidSeparator)
	if len(parts) == 1 {
		parts = strings.Split(target, `\`)
	}

	if len(parts) > 2 {
		return nil, false
	}

	guids := make([]GUID, 0, len(parts))
	for _, part := range parts {
		if !strings.HasPrefix(part, "::{") {
			return nil, false
		}

		g, err := ParseGUID(part[2:])
		if err != nil {
			return nil, false
		}

		guids = append(guids, g)
	}

	return guids, true
}

//
// Format list of GUIDs as a namespace target
//
func FormatCLSIDTarget(guids []GUID) string {
	s := make([]string, len(guids))
	for i, g := range guids {
		s[i] = g.CLSID()
	}
	return strings.Join(s, clsidSeparator)
}
