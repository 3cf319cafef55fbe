// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Usage and error messages

package main

import (
	"fmt"
	"io"
	"os"
)

//
// Print usage
//
func Usage(out io.Writer) {
	const usage = `Create a Shell Link a.k.a. Shortcut

Usage: ${prog} [options]

  Options can begin with '/' or '-' and are case-insensitive;
  values follow ':' or '='

Options:
  /? or /h or /help   Print this text

  /o:<output>         Path to shell link (shortcut); should end on ${ext} [mandatory]
  /t:<target>         Path to shortcut target or ::{CLSID} [mandatory]
  /a:<arguments>      Command line arguments to use on launch
  /i:<icon>           Path to file containing icon (.ico, .icl, .exe, .dll)
  /n:<index>          Icon index number
  /d:<description>    Description (for tooltip)
  /w:<directory>      Working directory to run command
  /k:<hotkey>         Set hotkey: ca<key>, cs<key> or sa<key> for
                      Ctrl+Alt, Ctrl+Shift or Shift+Alt; key is one
                      of A-Z, 0-9, F1-F24, numlock, scroll
  /max                Start with maximized window
  /min                Start with minimized window
  /tfull              Resolve path to shortcut target to a full path
  /ifull              Resolve path to icon file to a full path
  /admin              Run target as Administrator

Environment:
  ${env}        Log level: trace, debug, info, warn or error,
                      optionally followed by +time or +clock
`

	text := os.Expand(usage, func(name string) string {
		switch name {
		case "prog":
			return PROGRAM_NAME
		case "ext":
			return LINK_EXT
		case "env":
			return LOG_ENV
		}
		return ""
	})

	fmt.Fprint(out, text)
}

//
// Print option error
//
func OptError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s: %s\n", PROGRAM_NAME, err)
	fmt.Fprintf(out, "Try '%s /?' for more information.\n", PROGRAM_NAME)
}
