// Paletto - A colour palette toolkit
//
// Paletto inspects colours, generates colour harmonies and keeps a library
// of saved colours and palettes, from the command line or over HTTP.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/paletto/internal/cli"
)

func main() {
	cli.Execute()
}
