// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Shell Link binary format: constants and the fixed header

// Package shllink implements the parts of the Shell Link (.lnk)
// binary format, used by lnktools: the fixed header, the raw
// CLSID extraction and a portable encoder/decoder
package shllink

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

var (
	ErrBadHeader = errors.New("not a Shell Link file")
	ErrTruncated = errors.New("Shell Link file truncated")
	ErrTooLong   = errors.New("string too long for Shell Link")
)

//
// Header size and LinkCLSID. Together they form the 20-byte magic
// every Shell Link file starts with
//
const HeaderSize = 0x4C

var LinkCLSID = [16]byte{
	0x01, 0x14, 0x02, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x46,
}

//
// LinkFlags. The same bits are returned by
// IShellLinkDataList::GetFlags as SLDF_xxx
//
type LinkFlags uint32

const (
	HasLinkTargetIDList LinkFlags = 1 << iota
	HasLinkInfo
	HasName
	HasRelativePath
	HasWorkingDir
	HasArguments
	HasIconLocation
	IsUnicode
	ForceNoLinkInfo
	HasExpString
	RunInSeparateProcess
	_
	HasDarwinID
	RunAsUser

	// Bits, that describe the file structure rather than
	// link behavior
	structureFlags = HasLinkTargetIDList | HasLinkInfo | HasName |
		HasRelativePath | HasWorkingDir | HasArguments |
		HasIconLocation | IsUnicode
)

const SLDF_RUNAS_USER = uint32(RunAsUser)

//
// Test if some of particular flags are set
//
func (flags LinkFlags) Test(mask LinkFlags) bool {
	return flags&mask != 0
}

//
// ShowCommand values
//
const (
	SW_SHOWNORMAL      = 1
	SW_SHOWMINIMIZED   = 2
	SW_SHOWMAXIMIZED   = 3
	SW_SHOWMINNOACTIVE = 7
)

//
// Header is the fixed 76-byte prefix of a Shell Link file
//
type Header struct {
	HeaderSize     uint32
	LinkCLSID      [16]byte
	LinkFlags      LinkFlags
	FileAttributes uint32
	CreationTime   uint64
	AccessTime     uint64
	WriteTime      uint64
	FileSize       uint32
	IconIndex      int32
	ShowCommand    uint32
	HotKey         uint16
	Reserved1      uint16
	Reserved2      uint32
	Reserved3      uint32
}

//
// Create a new header with the magic filled in
//
func NewHeader() Header {
	return Header{
		HeaderSize:  HeaderSize,
		LinkCLSID:   LinkCLSID,
		ShowCommand: SW_SHOWNORMAL,
	}
}

//
// Check that data starts with the Shell Link magic
//
func HasMagic(data []byte) bool {
	if len(data) < 20 {
		return false
	}
	return binary.LittleEndian.Uint32(data) == HeaderSize &&
		bytes.Equal(data[4:20], LinkCLSID[:])
}

//
// Read and validate the header
//
func ReadHeader(r io.Reader) (Header, error) {
	var hdr Header

	err := binary.Read(r, binary.LittleEndian, &hdr)
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return hdr, ErrTruncated
	case err != nil:
		return hdr, err
	}

	if hdr.HeaderSize != HeaderSize || hdr.LinkCLSID != LinkCLSID {
		return hdr, ErrBadHeader
	}

	return hdr, nil
}

//
// Write the header
//
func (hdr *Header) Write(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, hdr)
}
