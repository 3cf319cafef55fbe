// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// The main module of mkshortcut

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexpevzner/lnktools/internal/log"
	"github.com/alexpevzner/lnktools/internal/shortcut"
	"github.com/alexpevzner/lnktools/internal/sysdep"
)

//
// Run mkshortcut with the given arguments. Returns exit code
//
func run(args []string, out io.Writer) int {
	err := log.LevelFromEnv(LOG_ENV)
	if err != nil {
		log.Warn("%s", err)
	}

	if len(args) == 0 {
		Usage(out)
		return 1
	}

	// Parse options
	var opt shortcut.Options
	err = opt.Parse(args)

	switch {
	case err == shortcut.ErrHelp:
		Usage(out)
		return 0

	case err != nil:
		OptError(out, err)
		return 1
	}

	desc := &opt.Desc
	log.Debug("options: %+v", *desc)

	if !desc.HasLinkExt() {
		fmt.Fprintf(out, "Warning: output link name doesn't end on '%s'!\n\n",
			LINK_EXT)
	}

	err = desc.ResolvePaths(sysdep.FullPath)
	if err != nil {
		fmt.Fprintf(out, "%s: %s\n", PROGRAM_NAME, err)
		return 1
	}

	// Create the shortcut
	err = shortcut.Create(desc, shortcut.OpenSystem)
	if err != nil {
		fmt.Fprintf(out, "%s: %s\n", PROGRAM_NAME, err)
		return 1
	}

	path, err := sysdep.FullPath(desc.Output)
	if err != nil {
		path = desc.Output
	}

	fmt.Fprintf(out, "Shortcut created:\n%s\n", path)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
