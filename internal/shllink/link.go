// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Portable Shell Link encoder and decoder

package shllink

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"
)

//
// Shell item layout, used for namespace targets
//
const (
	rootItemSize       = 0x14 // Root folder item: size, type, sort index, GUID
	rootItemType       = 0x1F
	rootItemSortIndex  = 0x50
	rootItemGUIDOffset = 4

	childItemSize       = 0x2A // Second-level namespace item
	childItemType       = 0x71
	childItemGUIDOffset = 26
)

//
// LinkInfo layout
//
const (
	linkInfoHeaderSizeANSI   = 0x1C
	linkInfoHeaderSize       = 0x24 // With Unicode offsets
	volumeIDAndLocalBasePath = 0x01
	volumeIDSize             = 0x11
	driveFixed               = 3
)

//
// Link is the decoded content of a Shell Link file
//
type Link struct {
	Flags          LinkFlags // Behavior flags, i.e. RunAsUser
	FileAttributes uint32    // Target file attributes
	IconIndex      int       // Icon index
	ShowCommand    uint32    // SW_xxx
	HotKey         uint16    // Hotkey, high byte is modifiers
	CLSIDs         []GUID    // Namespace target, if any
	LocalBasePath  string    // Filesystem target, if any
	Name           string    // Description
	RelativePath   string    // Relative path to target
	WorkingDir     string    // Working directory
	Arguments      string    // Command line arguments
	IconLocation   string    // Path to file with icon
}

//
// Set link target. Namespace targets (::{GUID}) are stored
// as LinkTargetIDList, everything else as LocalBasePath
//
func (l *Link) SetTarget(target string) {
	if guids, ok := ParseCLSIDTarget(target); ok {
		l.CLSIDs = guids
		l.LocalBasePath = ""
	} else {
		l.CLSIDs = nil
		l.LocalBasePath = target
	}
}

//
// Get link target as text
//
func (l *Link) Target() string {
	if l.LocalBasePath != "" {
		return l.LocalBasePath
	}
	return FormatCLSIDTarget(l.CLSIDs)
}

//----- Encoder -----
//
// Write the link
//
func (l *Link) Encode(w io.Writer) error {
	hdr := NewHeader()
	hdr.LinkFlags = l.Flags&^structureFlags | IsUnicode
	hdr.FileAttributes = l.FileAttributes
	hdr.IconIndex = int32(l.IconIndex)
	hdr.ShowCommand = l.ShowCommand
	hdr.HotKey = l.HotKey

	if len(l.CLSIDs) != 0 {
		hdr.LinkFlags |= HasLinkTargetIDList
	}

	if l.LocalBasePath != "" {
		hdr.LinkFlags |= HasLinkInfo
	}

	strs := []struct {
		flag LinkFlags
		s    string
	}{
		{HasName, l.Name},
		{HasRelativePath, l.RelativePath},
		{HasWorkingDir, l.WorkingDir},
		{HasArguments, l.Arguments},
		{HasIconLocation, l.IconLocation},
	}

	for _, str := range strs {
		if str.s != "" {
			hdr.LinkFlags |= str.flag
		}
	}

	buf := new(bytes.Buffer)
	hdr.Write(buf)

	if hdr.LinkFlags.Test(HasLinkTargetIDList) {
		l.encodeIDList(buf)
	}

	if hdr.LinkFlags.Test(HasLinkInfo) {
		err := l.encodeLinkInfo(buf)
		if err != nil {
			return err
		}
	}

	for _, str := range strs {
		if str.s == "" {
			continue
		}

		data, err := encodeUnicode(str.s)
		if err != nil {
			return err
		}

		if len(data)/2 > 0xffff {
			return ErrTooLong
		}

		binary.Write(buf, binary.LittleEndian, uint16(len(data)/2))
		buf.Write(data)
	}

	// Terminal ExtraData block
	binary.Write(buf, binary.LittleEndian, uint32(0))

	_, err := w.Write(buf.Bytes())
	return err
}

//
// Write LinkTargetIDList with namespace items
//
func (l *Link) encodeIDList(buf *bytes.Buffer) {
	items := new(bytes.Buffer)

	for i, g := range l.CLSIDs {
		var item []byte
		if i == 0 {
			item = make([]byte, rootItemSize)
			item[2] = rootItemType
			item[3] = rootItemSortIndex
			copy(item[rootItemGUIDOffset:], g[:])
		} else {
			item = make([]byte, childItemSize)
			item[2] = childItemType
			copy(item[childItemGUIDOffset:], g[:])
		}

		binary.LittleEndian.PutUint16(item, uint16(len(item)))
		items.Write(item)
	}

	// Terminal item
	items.Write([]byte{0, 0})

	binary.Write(buf, binary.LittleEndian, uint16(items.Len()))
	buf.Write(items.Bytes())
}

//
// Write LinkInfo with VolumeID and LocalBasePath
//
func (l *Link) encodeLinkInfo(buf *bytes.Buffer) error {
	pathANSI := append(encodeANSI(l.LocalBasePath), 0)
	pathUnicode, err := encodeUnicode(l.LocalBasePath)
	if err != nil {
		return err
	}
	pathUnicode = append(pathUnicode, 0, 0)

	volumeOff := uint32(linkInfoHeaderSize)
	baseOff := volumeOff + volumeIDSize
	suffixOff := baseOff + uint32(len(pathANSI))
	baseOffUnicode := suffixOff + 1
	suffixOffUnicode := baseOffUnicode + uint32(len(pathUnicode))
	size := suffixOffUnicode + 2

	for _, v := range []uint32{
		size,
		linkInfoHeaderSize,
		volumeIDAndLocalBasePath,
		volumeOff,
		baseOff,
		0, // CommonNetworkRelativeLinkOffset
		suffixOff,
		baseOffUnicode,
		suffixOffUnicode,
	} {
		binary.Write(buf, binary.LittleEndian, v)
	}

	// VolumeID with empty label
	for _, v := range []uint32{volumeIDSize, driveFixed, 0, 0x10} {
		binary.Write(buf, binary.LittleEndian, v)
	}
	buf.WriteByte(0)

	buf.Write(pathANSI)
	buf.WriteByte(0)
	buf.Write(pathUnicode)
	buf.Write([]byte{0, 0})

	return nil
}

//----- Decoder -----
//
// Binary reader over in-memory file content
//
type reader struct {
	data []byte
	pos  int
}

//
// Read fixed-size little-endian value
//
func (r *reader) read(v interface{}) error {
	size := binary.Size(v)
	if size < 0 || r.pos+size > len(r.data) {
		return ErrTruncated
	}
	err := binary.Read(bytes.NewReader(r.data[r.pos:r.pos+size]), binary.LittleEndian, v)
	r.pos += size
	return err
}

//
// Read n bytes
//
func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, ErrTruncated
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

//
// Read the link
//
func Decode(r io.Reader) (*Link, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	hdr, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	l := &Link{
		Flags:          hdr.LinkFlags,
		FileAttributes: hdr.FileAttributes,
		IconIndex:      int(hdr.IconIndex),
		ShowCommand:    hdr.ShowCommand,
		HotKey:         hdr.HotKey,
	}

	rd := &reader{data: data, pos: HeaderSize}

	if hdr.LinkFlags.Test(HasLinkTargetIDList) {
		err = l.decodeIDList(rd)
		if err != nil {
			return nil, err
		}
	}

	if hdr.LinkFlags.Test(HasLinkInfo) {
		err = l.decodeLinkInfo(rd)
		if err != nil {
			return nil, err
		}
	}

	strs := []struct {
		flag LinkFlags
		s    *string
	}{
		{HasName, &l.Name},
		{HasRelativePath, &l.RelativePath},
		{HasWorkingDir, &l.WorkingDir},
		{HasArguments, &l.Arguments},
		{HasIconLocation, &l.IconLocation},
	}

	unicode := hdr.LinkFlags.Test(IsUnicode)
	for _, str := range strs {
		if !hdr.LinkFlags.Test(str.flag) {
			continue
		}

		var count uint16
		err = rd.read(&count)
		if err != nil {
			return nil, err
		}

		if unicode {
			b, err := rd.readBytes(int(count) * 2)
			if err != nil {
				return nil, err
			}
			*str.s, err = decodeUnicode(b)
			if err != nil {
				return nil, err
			}
		} else {
			b, err := rd.readBytes(int(count))
			if err != nil {
				return nil, err
			}
			*str.s = decodeANSI(b)
		}
	}

	// ExtraData blocks are not interpreted
	return l, nil
}

//
// Read LinkTargetIDList. Only namespace items, written
// by Encode, are recognized; other items are skipped
//
func (l *Link) decodeIDList(rd *reader) error {
	var size uint16
	err := rd.read(&size)
	if err != nil {
		return err
	}

	list, err := rd.readBytes(int(size))
	if err != nil {
		return err
	}

	var guids []GUID
	for len(list) >= 2 {
		itemSize := int(binary.LittleEndian.Uint16(list))
		if itemSize == 0 {
			break
		}

		if itemSize < 2 || itemSize > len(list) {
			return ErrTruncated
		}

		item := list[:itemSize]
		list = list[itemSize:]

		var g GUID
		switch {
		case len(guids) == 0 && itemSize == rootItemSize && item[2] == rootItemType:
			copy(g[:], item[rootItemGUIDOffset:])
		case len(guids) == 1 && itemSize == childItemSize:
			copy(g[:], item[childItemGUIDOffset:])
		default:
			return nil
		}

		guids = append(guids, g)
	}

	l.CLSIDs = guids
	return nil
}

//
// Read LinkInfo
//
func (l *Link) decodeLinkInfo(rd *reader) error {
	start := rd.pos

	var hdr struct {
		Size             uint32
		HeaderSize       uint32
		Flags            uint32
		VolumeIDOffset   uint32
		LocalBasePathOff uint32
		NetworkOff       uint32
		SuffixOff        uint32
	}

	err := rd.read(&hdr)
	if err != nil {
		return err
	}

	end := start + int(hdr.Size)
	if hdr.HeaderSize < linkInfoHeaderSizeANSI ||
		int(hdr.Size) < binary.Size(&hdr) || end > len(rd.data) {
		return ErrTruncated
	}

	info := rd.data[start:end]
	rd.pos = end

	if hdr.Flags&volumeIDAndLocalBasePath == 0 {
		return nil
	}

	str := func(off uint32, wide bool) string {
		if off == 0 || int(off) >= len(info) {
			return ""
		}
		if wide {
			s, _ := decodeUnicode(cutWString(info[off:]))
			return s
		}
		return decodeANSI(cutCString(info[off:]))
	}

	if hdr.HeaderSize >= linkInfoHeaderSize && len(info) >= linkInfoHeaderSize {
		baseOff := binary.LittleEndian.Uint32(info[0x1C:])
		suffixOff := binary.LittleEndian.Uint32(info[0x20:])
		l.LocalBasePath = str(baseOff, true) + str(suffixOff, true)
	}

	if l.LocalBasePath == "" {
		l.LocalBasePath = str(hdr.LocalBasePathOff, false) + str(hdr.SuffixOff, false)
	}

	return nil
}
