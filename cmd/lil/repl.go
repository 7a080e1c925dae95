package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/lil-lang/lil/internal/lexer"
	"github.com/lil-lang/lil/internal/unit"
)

const (
	historyFile = ".lil_history"
	prompt      = "> "
)

const banner = "lil REPL\nEnter one declaration per line. Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit."

func runREPL() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(completeKeyword)

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Printf("reading history: %v", err)
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				log.Printf("writing history: %v", err)
				return
			}
			defer f.Close()
			if _, err := ln.WriteHistory(f); err != nil {
				log.Printf("writing history: %v", err)
			}
		}()
	}

	fmt.Println(banner)

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return 0
			}
			log.Printf("reading input: %v", err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(line)
		if trimmed == ":quit" {
			return 0
		}

		evalLine(os.Stdout, os.Stderr, line)
	}
}

// evalLine runs one REPL line and reports the outcome. It returns whether
// the line was accepted.
func evalLine(stdout, stderr io.Writer, line string) bool {
	u, err := unit.Compile(line, *debug)
	if err != nil {
		u.Report(stderr, err)
		return false
	}
	fmt.Fprintf(stdout, "decl: %s\n", u.Render())
	return true
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// completeKeyword offers the reserved words that extend the identifier
// under the cursor. pos counts runes.
func completeKeyword(line string, pos int) (head string, completions []string, tail string) {
	runes := []rune(line)
	if pos > len(runes) {
		pos = len(runes)
	}
	start := pos
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	prefix := string(runes[start:pos])
	if prefix == "" {
		return string(runes[:pos]), nil, string(runes[pos:])
	}

	for _, kw := range lexer.Keywords() {
		if strings.HasPrefix(kw, prefix) {
			completions = append(completions, kw)
		}
	}
	return string(runes[:start]), completions, string(runes[pos:])
}

func isWordRune(r rune) bool {
	return r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
