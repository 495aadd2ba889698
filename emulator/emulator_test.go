package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm16/cpu"
)

func image(codes ...cpu.Code) *bytes.Reader {
	prog := &cpu.Program{Codes: codes}
	return bytes.NewReader(prog.Binary())
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Equal(cpu.Channel(&emu.Console), emu.Cpu.GetChannel())
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	out := &bytes.Buffer{}
	emu.Console.Output = out

	err := emu.LoadImage(image(
		cpu.MakeCodeLoadImm(cpu.REG_R0, 5),
		cpu.MakeCodeLoadImm(cpu.REG_R1, 6),
		cpu.MakeCodeAluReg(cpu.OP_ADD, cpu.REG_R0, cpu.REG_R1),
		cpu.MakeCodeLoadReg(cpu.REG_R2, cpu.REG_R0),
		cpu.MakeCodeTrap(false, cpu.TRAP_DUMP),
		cpu.MakeCodeTrap(false, cpu.TRAP_HALT),
	), 0x400)
	assert.NoError(err)
	assert.Equal(uint16(0x400), emu.Start)

	assert.NoError(emu.Reset())
	assert.Equal(0x400, emu.Pc())
	assert.Equal(cpu.MakeCodeLoadImm(cpu.REG_R0, 5), emu.Code())

	assert.NoError(emu.Run())
	assert.Equal(5, emu.Ticks())

	text := out.String()
	assert.Contains(text, "Register 0 contains 0x000b\n")
	assert.Contains(text, "Register 1 contains 0x0006\n")
	assert.Contains(text, "Register 2 contains 0x000b\n")
	assert.True(strings.HasSuffix(text, "Halting program...\n"))
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.LoadImage(image(
		cpu.MakeCodeLoadImm(cpu.REG_R3, 33),
		cpu.MakeCodeTrap(true, 9),
		cpu.MakeCodeTrap(false, cpu.TRAP_HALT),
	), 0))
	assert.NoError(emu.Reset())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint16(33), emu.Cpu.Register[3])

	done, err = emu.Tick()
	assert.NoError(err)
	assert.False(done)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(4, emu.Pc())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.LoadImage(image(
		cpu.MakeCodeAluImm(cpu.OP_ADD, cpu.REG_R0, 1),
		cpu.MakeCodeTrap(false, cpu.TRAP_HALT),
	), 0x20))

	for range 3 {
		assert.NoError(emu.Reset())
		assert.NoError(emu.Run())
		assert.Equal(uint16(1), emu.Cpu.Register[0])
	}
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.LoadImage(image(
		cpu.MakeCodeLoadImm(cpu.REG_R0, 1),
		cpu.MakeCodePop(0x01),
	), 0x10))
	assert.NoError(emu.Reset())

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrStackUnderflow)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(0x12, runtime.Pc)
	}

	var fault *cpu.ErrFault
	if assert.True(errors.As(err, &fault)) {
		assert.Equal(uint16(0x12), fault.Pc)
	}
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.MaxTicks = 100
	assert.NoError(emu.LoadImage(image(
		cpu.MakeCodeBranch(cpu.COND_JMP, 0),
	), 0))
	assert.NoError(emu.Reset())

	err := emu.Run()
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(100, emu.Ticks())
}

type brokenWriter struct{}

var errBrokenWriter = errors.New("broken writer")

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errBrokenWriter
}

func TestEmulatorHaltOutputError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Console.Output = brokenWriter{}
	assert.NoError(emu.LoadImage(image(
		cpu.MakeCodeTrap(false, cpu.TRAP_HALT),
	), 0))
	assert.NoError(emu.Reset())

	done, err := emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, errBrokenWriter)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(0, runtime.Pc)
	}

	assert.NoError(emu.Reset())
	assert.ErrorIs(emu.Run(), errBrokenWriter)
}
