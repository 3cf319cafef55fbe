//
// Hotkey grammar test
//

package hotkey

import (
	"errors"
	"testing"
)

func TestParse(tst *testing.T) {
	tests := []struct {
		text string
		hk   Hotkey
		str  string
	}{
		{"cas", 0x0653, "[CTRL] [ALT] [S] (0x653)"},
		{"CAS", 0x0653, "[CTRL] [ALT] [S] (0x653)"},
		{"csa", 0x0341, "[CTRL] [SHIFT] [A] (0x341)"},
		{"sa0", 0x0530, "[SHIFT] [ALT] [0] (0x530)"},
		{"Sa9", 0x0539, "[SHIFT] [ALT] [9] (0x539)"},
		{"canumlock", 0x0690, "[CTRL] [ALT] [NUMLOCK] (0x690)"},
		{"csSCROLL", 0x0391, "[CTRL] [SHIFT] [SCROLL] (0x391)"},
		{"caf1", 0x0670, "[CTRL] [ALT] [F1] (0x670)"},
		{"saF12", 0x057B, "[SHIFT] [ALT] [F12] (0x57B)"},
		{"caf24", 0x0687, "[CTRL] [ALT] [F24] (0x687)"},
		{"caf", 0x0646, "[CTRL] [ALT] [F] (0x646)"},
	}

	for _, test := range tests {
		hk, err := Parse(test.text)
		if err != nil {
			tst.Fatalf("Parse(%q): %s", test.text, err)
		}

		if hk != test.hk {
			tst.Fatalf("Parse(%q): expected 0x%X, present 0x%X",
				test.text, uint16(test.hk), uint16(hk))
		}

		if s := hk.String(); s != test.str {
			tst.Fatalf("Parse(%q).String(): expected %q, present %q",
				test.text, test.str, s)
		}
	}
}

func TestParseInvalid(tst *testing.T) {
	tests := []string{
		"",
		"ca",
		"xz9",
		"caf0",
		"caf25",
		"caf-1",
		"caf+1",
		"caf01",
		"caf00",
		"caf012",
		"ca!",
		"acs",
		"cab1",
		"canum",
		"ca12",
		"cs scroll",
	}

	for _, text := range tests {
		hk, err := Parse(text)
		if !errors.Is(err, ErrInvalid) {
			tst.Fatalf("Parse(%q): expected ErrInvalid, present %v", text, err)
		}
		if hk != 0 {
			tst.Fatalf("Parse(%q): expected zero hotkey, present 0x%X", text, uint16(hk))
		}
	}
}

func TestRoundTrip(tst *testing.T) {
	mods := map[string]Modifiers{"ca": CtrlAlt, "cs": CtrlShift, "sa": ShiftAlt}
	keys := []string{"a", "z", "0", "9", "numlock", "scroll", "f1", "f13", "f24"}

	for name, mod := range mods {
		for _, key := range keys {
			combo, err := ParseCombo(name + key)
			if err != nil {
				tst.Fatalf("ParseCombo(%q): %s", name+key, err)
			}

			hk := combo.Encode()
			if hk.Modifiers() != mod {
				tst.Fatalf("%q: modifiers mismatch: 0x%x", name+key, hk.Modifiers())
			}

			if hk.Key() != combo.Key {
				tst.Fatalf("%q: key mismatch: 0x%x", name+key, hk.Key())
			}
		}
	}
}

func TestStringUnsupported(tst *testing.T) {
	hk := Hotkey(uint16(HOTKEYF_EXT|HOTKEYF_SHIFT)<<8 | 0x20)
	expected := "[SHIFT] [EXT] [0x20 (not supported)] (0x920)"
	if s := hk.String(); s != expected {
		tst.Fatalf("expected %q, present %q", expected, s)
	}

	hk = Hotkey(uint16(HOTKEYF_CONTROL) << 8)
	expected = "[CTRL] [0x00 (not set)] (0x200)"
	if s := hk.String(); s != expected {
		tst.Fatalf("expected %q, present %q", expected, s)
	}
}
