//
// Fake Shell Link for tests
//

package shortcut

import (
	"errors"
	"fmt"
)

var errFake = errors.New("fake failure")

//
// fakeLink records calls and fails on request
//
type fakeLink struct {
	calls  []string          // Recorded calls
	fail   string            // Call to fail
	closed bool              // Close was called
	props  map[string]string // String properties
	icon   int
	cmd    int
	hk     uint16
	flags  uint32
}

func newFakeLink() *fakeLink {
	return &fakeLink{props: make(map[string]string)}
}

func (fl *fakeLink) opener() Opener {
	return func() (Link, error) { return fl, nil }
}

func (fl *fakeLink) call(name string, args ...interface{}) error {
	if len(args) != 0 {
		name += fmt.Sprint(args)
	}
	fl.calls = append(fl.calls, name)
	if fl.fail != "" && len(name) >= len(fl.fail) && name[:len(fl.fail)] == fl.fail {
		return errFake
	}
	return nil
}

func (fl *fakeLink) Close()                 { fl.closed = true }
func (fl *fakeLink) Load(path string) error { return fl.call("Load") }
func (fl *fakeLink) Save(path string) error { return fl.call("Save", path) }

func (fl *fakeLink) get(name string) (string, error) {
	if err := fl.call(name); err != nil {
		return "", err
	}
	return fl.props[name], nil
}

func (fl *fakeLink) set(name, value string) error {
	fl.props[name] = value
	return fl.call("Set"+name, value)
}

func (fl *fakeLink) Path() (string, error)             { return fl.get("Path") }
func (fl *fakeLink) SetPath(s string) error            { return fl.set("Path", s) }
func (fl *fakeLink) Arguments() (string, error)        { return fl.get("Arguments") }
func (fl *fakeLink) SetArguments(s string) error       { return fl.set("Arguments", s) }
func (fl *fakeLink) Description() (string, error)      { return fl.get("Description") }
func (fl *fakeLink) SetDescription(s string) error     { return fl.set("Description", s) }
func (fl *fakeLink) WorkingDirectory() (string, error) { return fl.get("WorkingDirectory") }
func (fl *fakeLink) SetWorkingDirectory(s string) error {
	return fl.set("WorkingDirectory", s)
}

func (fl *fakeLink) IconLocation() (string, int, error) {
	s, err := fl.get("IconLocation")
	return s, fl.icon, err
}

func (fl *fakeLink) SetIconLocation(path string, idx int) error {
	fl.props["IconLocation"] = path
	fl.icon = idx
	return fl.call("SetIconLocation", path, idx)
}

func (fl *fakeLink) ShowCmd() (int, error) {
	return fl.cmd, fl.call("ShowCmd")
}

func (fl *fakeLink) SetShowCmd(cmd int) error {
	fl.cmd = cmd
	return fl.call("SetShowCmd", cmd)
}

func (fl *fakeLink) Hotkey() (uint16, error) {
	return fl.hk, fl.call("Hotkey")
}

func (fl *fakeLink) SetHotkey(hk uint16) error {
	fl.hk = hk
	return fl.call("SetHotkey", hk)
}

func (fl *fakeLink) Flags() (uint32, error) {
	return fl.flags, fl.call("Flags")
}

func (fl *fakeLink) SetFlags(flags uint32) error {
	fl.flags = flags
	return fl.call("SetFlags", flags)
}
