package machine

import (
	"fmt"

	"github.com/bitwidth/m6502/internal/cpu"
	"github.com/bitwidth/m6502/internal/memory"
)

// Machine wires a CPU to its memory and owns both for the lifetime
// of one emulated run.
type Machine struct {
	cpu *cpu.CPU
	mem *memory.Memory
}

func New() *Machine {
	m := &Machine{}
	m.mem = memory.New()
	m.cpu = cpu.New(m.mem)
	return m
}

func (m *Machine) CPU() *cpu.CPU { return m.cpu }
func (m *Machine) Mem() *memory.Memory { return m.mem }

// LoadProgram copies prog to the program base address and points the
// reset vector at it. Registers and the program counter are untouched.
func (m *Machine) LoadProgram(prog []byte) error {
	if err := m.mem.LoadProgram(prog, memory.ProgramBase); err != nil {
		return fmt.Errorf("couldn't load the program: %w", err)
	}
	m.mem.SetResetVector(memory.ProgramBase)
	return nil
}

// LoadAt loads prog at an explicit base address and points the reset
// vector at it.
func (m *Machine) LoadAt(prog []byte, base uint16) error {
	if err := m.mem.LoadProgram(prog, base); err != nil {
		return fmt.Errorf("couldn't load the program: %w", err)
	}
	m.mem.SetResetVector(base)
	return nil
}

func (m *Machine) Reset() {
	m.cpu.Reset()
}

func (m *Machine) Run() error {
	return m.cpu.Run()
}

// LoadAndRun is the full lifecycle over one program image.
func (m *Machine) LoadAndRun(prog []byte) error {
	if err := m.LoadProgram(prog); err != nil {
		return err
	}
	m.Reset()
	return m.Run()
}

// DebugInfo is a readable snapshot of the CPU state.
type DebugInfo struct {
	A      uint8
	X      uint8
	Y      uint8
	Status uint8
	PC     uint16
}

func (m *Machine) DebugInfo() DebugInfo {
	return DebugInfo{
		A:      m.cpu.A(),
		X:      m.cpu.X(),
		Y:      m.cpu.Y(),
		Status: m.cpu.Status(),
		PC:     m.cpu.PC(),
	}
}

// StatusString renders the status register as NV-BDIZC,
// with dots for cleared flags.
func (i DebugInfo) StatusString() string {
	letters := "NV-BDIZC"
	out := make([]byte, 8)
	for n := 0; n < 8; n++ {
		if i.Status&(1<<(7-n)) > 0 {
			out[n] = letters[n]
		} else {
			out[n] = '.'
		}
	}
	return string(out)
}
