// Command fermi runs Fermi estimation models.
//
// With a file argument it executes the model and prints each line followed
// by its result. Without arguments it starts an interactive session.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	fermi "github.com/fmartelg/FermiApp"
)

const (
	appName     = "fermi"
	historyFile = ".fermi_history"
	prompt      = "fermi> "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	log.SetFlags(0)
	var (
		samples int
		seed    int64
	)
	flag.IntVar(&samples, "samples", fermi.DefaultSampleCount, "Monte Carlo samples per uncertainty range")
	flag.Int64Var(&seed, "seed", 0, "random seed for reproducible draws (0 means time-based)")
	flag.Usage = usage
	flag.Parse()
	if samples <= 0 {
		log.Fatalf("%s: -samples (%d) must be positive", appName, samples)
	}

	opts := []fermi.EngineOption{fermi.SampleCount(samples)}
	if seed != 0 {
		opts = append(opts, fermi.Seed(seed))
	}
	eng := fermi.NewEngine(opts...)

	switch args := flag.Args(); {
	case len(args) == 0, len(args) == 1 && args[0] == "repl":
		os.Exit(repl(eng))
	case len(args) == 1:
		os.Exit(run(eng, args[0]))
	case len(args) == 2 && args[0] == "run":
		os.Exit(run(eng, args[1]))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  %[1]s [flags] <file>       Run a model file.
  %[1]s [flags] [repl]       Start an interactive session.

Flags:
`, appName)
	flag.PrintDefaults()
}

// run executes a model file and prints each input line followed by a "=>"
// result line. The exit code is 1 if any line failed.
func run(eng *fermi.Engine, name string) int {
	src, err := os.ReadFile(name)
	if err != nil {
		log.Printf("%s: %v", appName, err)
		return 1
	}
	text := strings.TrimSuffix(string(src), "\n")
	lines := strings.Split(text, "\n")
	failed := false
	for i, r := range eng.ExecuteModel(text) {
		fmt.Println(lines[i])
		switch r.Kind {
		case fermi.LineAssign:
			fmt.Printf("=> %s\n", fermi.FormatValue(r.Value))
		case fermi.LineError:
			fmt.Printf("=> ERROR: %v\n", r.Err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

func repl(eng *fermi.Engine) int {
	fmt.Println("Fermi calculator. Ctrl+D exits; :clear resets variables.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			log.Printf("%s: %v", appName, err)
			return 1
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			switch strings.TrimSpace(strings.ToLower(code)) {
			case ":quit":
				return 0
			case ":clear":
				eng.Clear()
				fmt.Println("variables cleared")
			case ":vars":
				for _, name := range eng.Names() {
					v, _ := eng.Lookup(name)
					fmt.Printf("%s = %s\n", name, fermi.FormatValue(v))
				}
			default:
				fmt.Println("commands are :vars, :clear, and :quit")
			}
			continue
		}

		r := eng.ExecuteLine(code)
		switch r.Kind {
		case fermi.LineAssign:
			fmt.Println(blue("=> " + fermi.FormatValue(r.Value)))
		case fermi.LineError:
			fmt.Println(red("=> ERROR: " + r.Err.Error()))
		}
		if strings.TrimSpace(code) != "" {
			ln.AppendHistory(code)
		}
	}
}
