// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Default configuration

package main

const (
	// ----- Program parameters -----
	//
	// Name of this program
	//
	PROGRAM_NAME = "mkshortcut"

	//
	// Environment variable, that sets the log level
	// and flags, i.e. debug+time
	//
	LOG_ENV = "LNKTOOLS_LOG"

	//
	// Expected extension of the output file
	//
	LINK_EXT = ".lnk"
)
