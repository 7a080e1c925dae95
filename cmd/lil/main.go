package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lil-lang/lil/internal/lsp"
)

var debug = flag.Bool("debug", false, "verify the arena of every unit before checking it")

func main() {
	log.SetFlags(0)
	log.SetPrefix("lil: ")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lil [options] [command]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  repl                  Read declarations interactively (default)\n")
		fmt.Fprintf(os.Stderr, "  check <file>          Parse and check every line of a file\n")
		fmt.Fprintf(os.Stderr, "  fmt [-check] <file>   Print every line of a file canonically\n")
		fmt.Fprintf(os.Stderr, "  lsp                   Serve the language server protocol on stdin/stdout\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	command := "repl"
	var args []string
	if flag.NArg() > 0 {
		command = flag.Arg(0)
		args = flag.Args()[1:]
	}

	switch command {
	case "repl":
		os.Exit(runREPL())
	case "check":
		os.Exit(runCheck(args))
	case "fmt":
		os.Exit(runFmt(args))
	case "lsp":
		os.Exit(runLSP())
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(2)
	}
}

func runLSP() int {
	if err := lsp.NewServer(os.Stdin, os.Stdout).Run(context.Background()); err != nil {
		log.Printf("language server: %v", err)
		return 1
	}
	return 0
}
