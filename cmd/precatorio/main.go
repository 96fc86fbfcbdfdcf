// Command precatorio calculates precatório updates from the command line.
//
//	precatorio calculate --principal 100000 --base 2021-05-10 --issuance 2022-03-20 --final 2026-01-29
//	precatorio calculate --input case.yaml --format csv
//	precatorio regime 2022-03-20
package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}
