// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// String encodings used by the Shell Link format

package shllink

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	ansi    = charmap.Windows1252
)

//
// Encode string as UTF-16LE, without terminator
//
func encodeUnicode(s string) ([]byte, error) {
	return utf16le.NewEncoder().Bytes([]byte(s))
}

//
// Decode UTF-16LE string
//
func decodeUnicode(b []byte) (string, error) {
	out, err := utf16le.NewDecoder().Bytes(b)
	return string(out), err
}

//
// Encode string in the ANSI code page. Characters, that
// can't be represented, are replaced
//
func encodeANSI(s string) []byte {
	out, err := encoding.ReplaceUnsupported(ansi.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return out
}

//
// Decode ANSI string
//
func decodeANSI(b []byte) string {
	out, err := ansi.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

//
// Cut NUL-terminated ANSI string from the buffer
//
func cutCString(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

//
// Cut NUL-terminated UTF-16LE string from the buffer
//
func cutWString(b []byte) []byte {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i]
		}
	}
	return b[:len(b)&^1]
}
