// Command vectorctl builds, proves, and verifies authenticated append-only
// vectors from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/forestrie/go-vectorproof/vectorlog"
)

func main() {
	log := vectorlog.New(os.Getenv("VECTORCTL_LOG_LEVEL"), "vectorctl")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "build":
		err = runBuild(args)
	case "prove":
		err = runProve(args)
	case "verify":
		err = runVerify(args)
	case "append":
		err = runAppend(args)
	case "combine":
		err = runCombine(args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error("command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: vectorctl <build|prove|verify|append|combine> [flags]")
}
