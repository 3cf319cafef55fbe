// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Shell Link platform object -- Windows version

package sysdep

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"github.com/alexpevzner/lnktools/internal/log"
)

var (
	clsidShellLink        = ole.NewGUID("{00021401-0000-0000-C000-000000000046}")
	iidIShellLinkW        = ole.NewGUID("{000214F9-0000-0000-C000-000000000046}")
	iidIPersistFile       = ole.NewGUID("{0000010B-0000-0000-C000-000000000046}")
	iidIShellLinkDataList = ole.NewGUID("{45E2B4AE-B1C3-11D0-B92F-00A0C90312E1}")
)

const (
	coInitFlags = ole.COINIT_APARTMENTTHREADED |
		ole.COINIT_DISABLE_OLE1DDE |
		ole.COINIT_SPEED_OVER_MEMORY

	sFalse    = 1    // S_FALSE: COM already initialized on this thread
	stgmRead  = 0    // STGM_READ
	infoChars = 4096 // Buffer size for string properties, in characters
)

var comLog = log.NewLogger("com")

//----- COM interfaces -----
//
// IShellLinkW
//
type iShellLinkW struct {
	ole.IUnknown
}

type iShellLinkWVtbl struct {
	ole.IUnknownVtbl
	GetPath             uintptr
	GetIDList           uintptr
	SetIDList           uintptr
	GetDescription      uintptr
	SetDescription      uintptr
	GetWorkingDirectory uintptr
	SetWorkingDirectory uintptr
	GetArguments        uintptr
	SetArguments        uintptr
	GetHotkey           uintptr
	SetHotkey           uintptr
	GetShowCmd          uintptr
	SetShowCmd          uintptr
	GetIconLocation     uintptr
	SetIconLocation     uintptr
	SetRelativePath     uintptr
	Resolve             uintptr
	SetPath             uintptr
}

func (v *iShellLinkW) vtable() *iShellLinkWVtbl {
	return (*iShellLinkWVtbl)(unsafe.Pointer(v.RawVTable))
}

//
// IPersistFile
//
type iPersistFile struct {
	ole.IUnknown
}

type iPersistFileVtbl struct {
	ole.IUnknownVtbl
	GetClassID    uintptr
	IsDirty       uintptr
	Load          uintptr
	Save          uintptr
	SaveCompleted uintptr
	GetCurFile    uintptr
}

func (v *iPersistFile) vtable() *iPersistFileVtbl {
	return (*iPersistFileVtbl)(unsafe.Pointer(v.RawVTable))
}

//
// IShellLinkDataList
//
type iShellLinkDataList struct {
	ole.IUnknown
}

type iShellLinkDataListVtbl struct {
	ole.IUnknownVtbl
	AddDataBlock    uintptr
	CopyDataBlock   uintptr
	RemoveDataBlock uintptr
	GetFlags        uintptr
	SetFlags        uintptr
}

func (v *iShellLinkDataList) vtable() *iShellLinkDataListVtbl {
	return (*iShellLinkDataListVtbl)(unsafe.Pointer(v.RawVTable))
}

//
// Convert HRESULT into error. Only failure codes are errors
//
func hresult(hr uintptr) error {
	if int32(hr) < 0 {
		return ole.NewError(hr)
	}
	return nil
}

//----- ShellLink -----
//
// ShellLink is the COM ShellLink object session.
//
// It owns the COM library initialization on the calling
// OS thread, the IShellLinkW object and its IPersistFile
// and IShellLinkDataList views. Close releases them in
// reverse order
//
type ShellLink struct {
	initialized bool                // CoInitializeEx succeeded
	link        *iShellLinkW        // The link object
	pfile       *iPersistFile       // Its IPersistFile view
	dlist       *iShellLinkDataList // Its IShellLinkDataList view, lazy
}

//
// Create new ShellLink
//
func NewShellLink() (*ShellLink, error) {
	// Lock OS thread. Otherwise OLE will get crazy
	runtime.LockOSThread()

	sl := &ShellLink{}

	err := ole.CoInitializeEx(0, coInitFlags)
	if err != nil {
		oleerr, ok := err.(*ole.OleError)
		if !ok || oleerr.Code() != sFalse {
			runtime.UnlockOSThread()
			return nil, err
		}
	}

	sl.initialized = true
	comLog.Trace("CoInitializeEx: OK")

	unk, err := ole.CreateInstance(clsidShellLink, iidIShellLinkW)
	if err != nil {
		sl.Close()
		return nil, err
	}

	sl.link = (*iShellLinkW)(unsafe.Pointer(unk))
	comLog.Trace("CoCreateInstance(ShellLink): OK")

	disp, err := sl.link.QueryInterface(iidIPersistFile)
	if err != nil {
		sl.Close()
		return nil, err
	}

	sl.pfile = (*iPersistFile)(unsafe.Pointer(disp))
	comLog.Trace("QueryInterface(IPersistFile): OK")

	return sl, nil
}

//
// Release all COM objects and uninitialize COM library.
// Safe to call more than once
//
func (sl *ShellLink) Close() {
	if sl.dlist != nil {
		sl.dlist.Release()
		sl.dlist = nil
	}

	if sl.pfile != nil {
		sl.pfile.Release()
		sl.pfile = nil
	}

	if sl.link != nil {
		sl.link.Release()
		sl.link = nil
	}

	if sl.initialized {
		ole.CoUninitialize()
		sl.initialized = false
		runtime.UnlockOSThread()
		comLog.Trace("CoUninitialize: OK")
	}
}

//
// Load link from file
//
func (sl *ShellLink) Load(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	hr, _, _ := syscall.SyscallN(sl.pfile.vtable().Load,
		uintptr(unsafe.Pointer(sl.pfile)),
		uintptr(unsafe.Pointer(p)),
		stgmRead)

	return hresult(hr)
}

//
// Save link to file
//
func (sl *ShellLink) Save(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	vt := sl.pfile.vtable()
	hr, _, _ := syscall.SyscallN(vt.Save,
		uintptr(unsafe.Pointer(sl.pfile)),
		uintptr(unsafe.Pointer(p)),
		1)

	err = hresult(hr)
	if err == nil {
		hr, _, _ = syscall.SyscallN(vt.SaveCompleted,
			uintptr(unsafe.Pointer(sl.pfile)),
			uintptr(unsafe.Pointer(p)))
		err = hresult(hr)
	}

	return err
}

//
// Call IShellLinkW method, that takes a single string
//
func (sl *ShellLink) setString(method uintptr, s string) error {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return err
	}

	hr, _, _ := syscall.SyscallN(method,
		uintptr(unsafe.Pointer(sl.link)),
		uintptr(unsafe.Pointer(p)))

	return hresult(hr)
}

//
// Call IShellLinkW method, that fills a string buffer
//
func (sl *ShellLink) getString(method uintptr) (string, error) {
	buf := make([]uint16, infoChars)

	hr, _, _ := syscall.SyscallN(method,
		uintptr(unsafe.Pointer(sl.link)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)))

	err := hresult(hr)
	if err != nil {
		return "", err
	}

	return windows.UTF16ToString(buf), nil
}

//
// Get link target path. Empty string is returned,
// when target is not a filesystem object
//
func (sl *ShellLink) Path() (string, error) {
	buf := make([]uint16, infoChars)

	hr, _, _ := syscall.SyscallN(sl.link.vtable().GetPath,
		uintptr(unsafe.Pointer(sl.link)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0, 0)

	err := hresult(hr)
	if err != nil {
		return "", err
	}

	return windows.UTF16ToString(buf), nil
}

//
// Set link target path or ::{CLSID}
//
func (sl *ShellLink) SetPath(path string) error {
	return sl.setString(sl.link.vtable().SetPath, path)
}

//
// Get command line arguments
//
func (sl *ShellLink) Arguments() (string, error) {
	return sl.getString(sl.link.vtable().GetArguments)
}

//
// Set command line arguments
//
func (sl *ShellLink) SetArguments(args string) error {
	return sl.setString(sl.link.vtable().SetArguments, args)
}

//
// Get description
//
func (sl *ShellLink) Description() (string, error) {
	return sl.getString(sl.link.vtable().GetDescription)
}

//
// Set description
//
func (sl *ShellLink) SetDescription(desc string) error {
	return sl.setString(sl.link.vtable().SetDescription, desc)
}

//
// Get working directory
//
func (sl *ShellLink) WorkingDirectory() (string, error) {
	return sl.getString(sl.link.vtable().GetWorkingDirectory)
}

//
// Set working directory
//
func (sl *ShellLink) SetWorkingDirectory(dir string) error {
	return sl.setString(sl.link.vtable().SetWorkingDirectory, dir)
}

//
// Get icon location and index
//
func (sl *ShellLink) IconLocation() (string, int, error) {
	buf := make([]uint16, infoChars)
	var idx int32

	hr, _, _ := syscall.SyscallN(sl.link.vtable().GetIconLocation,
		uintptr(unsafe.Pointer(sl.link)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&idx)))

	err := hresult(hr)
	if err != nil {
		return "", 0, err
	}

	return windows.UTF16ToString(buf), int(idx), nil
}

//
// Set icon location and index
//
func (sl *ShellLink) SetIconLocation(path string, idx int) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	hr, _, _ := syscall.SyscallN(sl.link.vtable().SetIconLocation,
		uintptr(unsafe.Pointer(sl.link)),
		uintptr(unsafe.Pointer(p)),
		uintptr(int32(idx)))

	return hresult(hr)
}

//
// Get show command (SW_xxx)
//
func (sl *ShellLink) ShowCmd() (int, error) {
	var cmd int32

	hr, _, _ := syscall.SyscallN(sl.link.vtable().GetShowCmd,
		uintptr(unsafe.Pointer(sl.link)),
		uintptr(unsafe.Pointer(&cmd)))

	return int(cmd), hresult(hr)
}

//
// Set show command (SW_xxx)
//
func (sl *ShellLink) SetShowCmd(cmd int) error {
	hr, _, _ := syscall.SyscallN(sl.link.vtable().SetShowCmd,
		uintptr(unsafe.Pointer(sl.link)),
		uintptr(int32(cmd)))

	return hresult(hr)
}

//
// Get hotkey
//
func (sl *ShellLink) Hotkey() (uint16, error) {
	var hk uint16

	hr, _, _ := syscall.SyscallN(sl.link.vtable().GetHotkey,
		uintptr(unsafe.Pointer(sl.link)),
		uintptr(unsafe.Pointer(&hk)))

	return hk, hresult(hr)
}

//
// Set hotkey
//
func (sl *ShellLink) SetHotkey(hk uint16) error {
	hr, _, _ := syscall.SyscallN(sl.link.vtable().SetHotkey,
		uintptr(unsafe.Pointer(sl.link)),
		uintptr(hk))

	return hresult(hr)
}

//
// Get IShellLinkDataList view, querying it on first use
//
func (sl *ShellLink) dataList() (*iShellLinkDataList, error) {
	if sl.dlist == nil {
		disp, err := sl.link.QueryInterface(iidIShellLinkDataList)
		if err != nil {
			return nil, err
		}

		sl.dlist = (*iShellLinkDataList)(unsafe.Pointer(disp))
		comLog.Trace("QueryInterface(IShellLinkDataList): OK")
	}

	return sl.dlist, nil
}

//
// Get SLDF_xxx flags
//
func (sl *ShellLink) Flags() (uint32, error) {
	dlist, err := sl.dataList()
	if err != nil {
		return 0, err
	}

	var flags uint32
	hr, _, _ := syscall.SyscallN(dlist.vtable().GetFlags,
		uintptr(unsafe.Pointer(dlist)),
		uintptr(unsafe.Pointer(&flags)))

	return flags, hresult(hr)
}

//
// Set SLDF_xxx flags
//
func (sl *ShellLink) SetFlags(flags uint32) error {
	dlist, err := sl.dataList()
	if err != nil {
		return err
	}

	hr, _, _ := syscall.SyscallN(dlist.vtable().SetFlags,
		uintptr(unsafe.Pointer(dlist)),
		uintptr(flags))

	return hresult(hr)
}
