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
	PROGRAM_NAME = "shortcutinfo"

	//
	// Environment variable, that sets the log level
	//
	LOG_ENV = "LNKTOOLS_LOG"
)
