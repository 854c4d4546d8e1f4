package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/pkg/profile"

	"github.com/bitwidth/m6502/internal/cpu"
	"github.com/bitwidth/m6502/internal/machine"
)

func main() {
	profileMode := flag.Bool("profile", false, "write a CPU profile for the run")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: m6502 [-profile] <image file>\n")
	}

	if *profileMode {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	img, err := machine.ReadImageFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("couldn't load image: %s\n", err)
	}

	m := machine.New()
	if err := m.LoadImage(img); err != nil {
		log.Fatalf("couldn't load image: %s\n", err)
	}
	m.Reset()

	err = m.Run()
	if errors.Is(err, cpu.ErrUnknownOpcode) {
		disasm := m.CPU().Disassemble()
		log.Printf("aborted: %s\n", err)
		log.Fatalf("at %s\n", disasm[m.CPU().PC()-1])
	}
	if err != nil {
		log.Fatalf("run failed: %s\n", err)
	}

	info := m.DebugInfo()
	fmt.Printf("A: $%02X [%03d]  X: $%02X [%03d]  Y: $%02X [%03d]\n",
		info.A, info.A, info.X, info.X, info.Y, info.Y)
	fmt.Printf("PC: $%04X  STATUS: %s\n", info.PC, info.StatusString())
}
