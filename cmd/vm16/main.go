// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/ezrec/vm16/emulator"
	"github.com/ezrec/vm16/translate"
)

// addrFlag parses a 16-bit address in any Go integer syntax.
func addrFlag(addr *uint16, set *bool) func(string) error {
	return func(text string) error {
		value, err := strconv.ParseUint(text, 0, 16)
		if err != nil {
			return err
		}
		*addr = uint16(value)
		if set != nil {
			*set = true
		}
		return nil
	}
}

func main() {
	var image string
	var origin uint16
	var start uint16
	var startSet bool
	var ticks int
	var lang string
	var verbose bool

	flag.StringVar(&image, "i", "-", "Raw little-endian program image")
	flag.Func("l", "Load address of the image (default 0)", addrFlag(&origin, nil))
	flag.Func("s", "Start address (default is the load address)", addrFlag(&start, &startSet))
	flag.IntVar(&ticks, "n", 0, "Stop after this many instructions (0 is no limit)")
	flag.StringVar(&lang, "lang", "", "Language of trap output (default from the host locale)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxTicks = ticks
	emu.Console.Output = os.Stdout
	if len(lang) != 0 {
		emu.Console.Printer = translate.NewPrinter(lang)
	}

	inf := os.Stdin
	if image != "-" {
		var err error
		inf, err = os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()
	}

	err := emu.LoadImage(inf, origin)
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}
	if startSet {
		emu.Start = start
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Print(emu.Cpu.String())
		log.Fatal(err)
	}
}
