// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// The main module of shortcutinfo

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexpevzner/lnktools/internal/log"
	"github.com/alexpevzner/lnktools/internal/shortcut"
)

//
// Print usage
//
func Usage(out io.Writer) {
	fmt.Fprintf(out, "Shows information about Shell Links\n")
	fmt.Fprintf(out, "usage: %s FILENAME\n", PROGRAM_NAME)
}

//
// Run shortcutinfo with the given arguments. Returns exit code
//
func run(args []string, out io.Writer) int {
	err := log.LevelFromEnv(LOG_ENV)
	if err != nil {
		log.Warn("%s", err)
	}

	if len(args) == 0 {
		Usage(out)
		return 0
	}

	err = shortcut.Inspect(args[0], shortcut.OpenSystem, out)
	if err != nil {
		fmt.Fprintf(out, "%s: %s: %s\n", PROGRAM_NAME, args[0], err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
