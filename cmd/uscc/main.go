// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/uscc/cpu"
	"github.com/ezrec/uscc/emulator"
)

// snapshot is the register dump printed by -dump.
type snapshot struct {
	Name    string
	Ticks   int
	Numbers []int
	History []int
}

func main() {
	var name string
	var input string
	var output string
	var verbose bool
	var dump bool

	flag.StringVar(&name, "n", "John", "Calculator owner name")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Display output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "dump", false, "Dump registers when done")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var inf io.Reader = os.Stdin
	if input != "-" {
		file, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer file.Close()
		inf = file
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	emu := emulator.NewEmulator(name)
	emu.Program = prog
	emu.Verbose = verbose
	emu.Display = ouf

	_, err = io.WriteString(ouf, emu.Greeting()+"\n")
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	emu.Reset()
	for _, done, err := emu.Tick(); !done; _, done, err = emu.Tick() {
		if err != nil {
			log.Fatal(err)
		}
	}

	if dump {
		pp.Fprintln(os.Stderr, snapshot{
			Name:    emu.Name,
			Ticks:   emu.Cpu.Ticks,
			Numbers: emu.Numbers(),
			History: emu.History(),
		})
	}
}
