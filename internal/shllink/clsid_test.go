//
// Raw CLSID extraction test
//

package shllink

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

var (
	// {26EE0668-A00A-44D7-9371-BEB064C98683}, as stored on disk
	testGUID1 = GUID{
		0x68, 0x06, 0xEE, 0x26, 0x0A, 0xA0, 0xD7, 0x44,
		0x93, 0x71, 0xBE, 0xB0, 0x64, 0xC9, 0x86, 0x83,
	}

	// {7B81BE6A-CE2B-4676-A29E-EB907A5126C5}, as stored on disk
	testGUID2 = GUID{
		0x6A, 0xBE, 0x81, 0x7B, 0x2B, 0xCE, 0x76, 0x46,
		0xA2, 0x9E, 0xEB, 0x90, 0x7A, 0x51, 0x26, 0xC5,
	}
)

const (
	testCLSID1 = "::{26EE0668-A00A-44D7-9371-BEB064C98683}"
	testCLSID2 = "::{7B81BE6A-CE2B-4676-A29E-EB907A5126C5}"
)

//
// Build raw link prefix by hand, with GUIDs placed
// at absolute file offsets
//
func rawLink(idListSize byte, guids ...GUID) []byte {
	data := make([]byte, 160)
	binary.LittleEndian.PutUint32(data, HeaderSize)
	copy(data[4:], LinkCLSID[:])
	binary.LittleEndian.PutUint32(data[20:], uint32(HasLinkTargetIDList|IsUnicode))

	data[76] = idListSize
	data[78] = 0x14
	data[80] = 0x1F
	data[81] = 0x50
	copy(data[82:], guids[0][:])

	if len(guids) > 1 {
		data[98] = 0x2A
		copy(data[124:], guids[1][:])
	}

	return data
}

func TestGUIDString(tst *testing.T) {
	if s := testGUID1.CLSID(); s != testCLSID1 {
		tst.Fatalf("expected %q, present %q", testCLSID1, s)
	}

	g, err := ParseGUID(testCLSID2[2:])
	if err != nil {
		tst.Fatalf("ParseGUID: %s", err)
	}

	if g != testGUID2 {
		tst.Fatalf("ParseGUID: byte order mismatch: % x", g[:])
	}
}

func TestParseCLSIDTarget(tst *testing.T) {
	tests := []struct {
		target string
		guids  []GUID
	}{
		{testCLSID1, []GUID{testGUID1}},
		{testCLSID1 + `\0\` + testCLSID2, []GUID{testGUID1, testGUID2}},
		{testCLSID1 + `\` + testCLSID2, []GUID{testGUID1, testGUID2}},
		{`C:\Windows\notepad.exe`, nil},
		{"::{not-a-guid}", nil},
		{testCLSID1 + `\0\` + testCLSID2 + `\0\` + testCLSID1, nil},
	}

	for _, test := range tests {
		guids, ok := ParseCLSIDTarget(test.target)
		if ok != (test.guids != nil) {
			tst.Fatalf("%q: unexpected status %v", test.target, ok)
		}

		if len(guids) != len(test.guids) {
			tst.Fatalf("%q: expected %d GUIDs, present %d",
				test.target, len(test.guids), len(guids))
		}

		for i := range guids {
			if guids[i] != test.guids[i] {
				tst.Fatalf("%q: GUID %d mismatch", test.target, i)
			}
		}
	}
}

func TestExtractCLSID(tst *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		clsid  string
		status bool
	}{
		{
			name:   "single",
			data:   rawLink(0x16, testGUID1),
			clsid:  testCLSID1,
			status: true,
		},
		{
			name:   "double",
			data:   rawLink(64, testGUID1, testGUID2),
			clsid:  testCLSID1 + `\0\` + testCLSID2,
			status: true,
		},
		{
			name: "bad magic",
			data: func() []byte {
				data := rawLink(0x16, testGUID1)
				data[4] = 0
				return data
			}(),
		},
		{
			name: "no IDList",
			data: func() []byte {
				data := rawLink(0x16, testGUID1)
				data[20] = 0
				return data
			}(),
		},
		{
			name: "short",
			data: rawLink(0x16, testGUID1)[:97],
		},
		{
			name: "double truncated",
			data: rawLink(64, testGUID1, testGUID2)[:139],
		},
		{
			name:   "single exact",
			data:   rawLink(0x16, testGUID1)[:98],
			clsid:  testCLSID1,
			status: true,
		},
		{
			name: "empty",
		},
	}

	for _, test := range tests {
		clsid, ok := ExtractCLSID(bytes.NewReader(test.data))
		if ok != test.status {
			tst.Fatalf("%s: expected status %v, present %v", test.name, test.status, ok)
		}

		if clsid != test.clsid {
			tst.Fatalf("%s: expected %q, present %q", test.name, test.clsid, clsid)
		}
	}
}

func TestExtractCLSIDFile(tst *testing.T) {
	dir := tst.TempDir()

	// Missing file is not an error
	if clsid, ok := ExtractCLSIDFile(filepath.Join(dir, "missing.lnk")); ok || clsid != "" {
		tst.Fatalf("missing file: unexpected result %q", clsid)
	}

	// Links, written by the encoder, must be recognized
	for _, target := range []string{testCLSID1, testCLSID1 + `\0\` + testCLSID2} {
		var buf bytes.Buffer
		l := &Link{ShowCommand: SW_SHOWNORMAL, Name: "namespace"}
		l.SetTarget(target)

		err := l.Encode(&buf)
		if err != nil {
			tst.Fatalf("%q: Encode: %s", target, err)
		}

		path := filepath.Join(dir, "ns.lnk")
		err = os.WriteFile(path, buf.Bytes(), 0644)
		if err != nil {
			tst.Fatalf("%s", err)
		}

		clsid, ok := ExtractCLSIDFile(path)
		if !ok || clsid != target {
			tst.Fatalf("%q: extracted %q (%v)", target, clsid, ok)
		}
	}
}

//
// First 112 bytes of the "shortcut to a file" sample of the
// [MS-SHLLINK] document, written by Windows. Its IDList starts
// with the root folder item of My Computer
//
var windowsLinkPrefix = []byte{
	0x4C, 0x00, 0x00, 0x00, 0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x46, 0x9B, 0x00, 0x08, 0x00, 0x20, 0x00, 0x00, 0x00, 0xD0, 0xE9, 0xEE, 0xF2,
	0x15, 0x15, 0xC9, 0x01, 0xD0, 0xE9, 0xEE, 0xF2, 0x15, 0x15, 0xC9, 0x01, 0xD0, 0xE9, 0xEE, 0xF2,
	0x15, 0x15, 0xC9, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xBD, 0x00, 0x14, 0x00,
	0x1F, 0x50, 0xE0, 0x4F, 0xD0, 0x20, 0xEA, 0x3A, 0x69, 0x10, 0xA2, 0xD8, 0x08, 0x00, 0x2B, 0x30,
	0x30, 0x9D, 0x19, 0x00, 0x2F, 0x43, 0x3A, 0x5C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

func TestExtractCLSIDWindowsLink(tst *testing.T) {
	const myComputer = "::{20D04FE0-3AEA-1069-A2D8-08002B30309D}"

	hdr, err := ReadHeader(bytes.NewReader(windowsLinkPrefix))
	if err != nil {
		tst.Fatalf("ReadHeader: %s", err)
	}

	if hdr.ShowCommand != SW_SHOWNORMAL || !hdr.LinkFlags.Test(HasLinkTargetIDList) {
		tst.Fatalf("unexpected header: %+v", hdr)
	}

	clsid, ok := ExtractCLSID(bytes.NewReader(windowsLinkPrefix))
	if !ok || clsid != myComputer {
		tst.Fatalf("expected %q, present %q (%v)", myComputer, clsid, ok)
	}

	// IDList size byte 64 selects the double shape, that needs
	// 140 bytes; the sample is shorter
	data := append([]byte(nil), windowsLinkPrefix...)
	data[clsidSizeOffset] = clsidDoubleSize
	if clsid, ok := ExtractCLSID(bytes.NewReader(data)); ok {
		tst.Fatalf("truncated double shape accepted: %q", clsid)
	}
}
