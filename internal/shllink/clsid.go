// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Raw CLSID extraction from Shell Link files

package shllink

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/alexpevzner/lnktools/internal/log"
)

//
// Layout of the file prefix, examined by ExtractCLSID
//
// The LinkTargetIDList starts right after the header, at offset 76,
// with its 2-byte size. The low byte of this size tells two
// known shapes apart: 64 means two namespace items (a virtual
// folder inside another), anything else means a single item.
//
// Offsets of GUIDs are counted from the byte that follows the
// size byte
//
const (
	clsidSizeOffset   = HeaderSize     // IDList size byte
	clsidDataOffset   = HeaderSize + 1 // Start of the data region
	clsidDoubleSize   = 64             // IDList size of the double shape
	clsidFirstOffset  = 5              // First GUID within the data region
	clsidSecondOffset = 47             // Second GUID within the data region

	clsidSinglePrefix = clsidDataOffset + clsidFirstOffset + 16  // 98 bytes
	clsidDoublePrefix = clsidDataOffset + clsidSecondOffset + 16 // 140 bytes
)

var clsidLog = log.NewLogger("clsid")

//
// Extract CLSID target from the raw Shell Link bytes.
//
// It is the fallback for links, whose target is a shell namespace
// item rather than a file: the platform link object doesn't
// return such targets as a path. Only the two shapes, described
// above, are recognized. Returns false, if nothing was found;
// the failure is never reported as an error
//
func ExtractCLSID(r io.ReaderAt) (string, bool) {
	buf := make([]byte, clsidDoublePrefix)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		clsidLog.Debug("read: %s", err)
		return "", false
	}

	buf = buf[:n]
	clsidLog.Dump(log.TRACE, buf)

	if n < clsidSinglePrefix || !HasMagic(buf) {
		clsidLog.Debug("no Shell Link header")
		return "", false
	}

	flags := LinkFlags(binary.LittleEndian.Uint32(buf[20:]))
	if !flags.Test(HasLinkTargetIDList) {
		clsidLog.Debug("no LinkTargetIDList")
		return "", false
	}

	data := buf[clsidDataOffset:]
	first := guidAt(data, clsidFirstOffset)

	if buf[clsidSizeOffset] != clsidDoubleSize {
		return first.CLSID(), true
	}

	if n < clsidDoublePrefix {
		clsidLog.Debug("double CLSID truncated")
		return "", false
	}

	second := guidAt(data, clsidSecondOffset)
	return FormatCLSIDTarget([]GUID{first, second}), true
}

//
// Extract CLSID target from the Shell Link file
//
func ExtractCLSIDFile(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		clsidLog.Debug("%s", err)
		return "", false
	}

	defer f.Close()
	return ExtractCLSID(f)
}

//
// Get GUID at the given offset
//
func guidAt(data []byte, off int) GUID {
	var g GUID
	copy(g[:], data[off:off+16])
	return g
}
