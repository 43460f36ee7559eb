package ui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/mos6502/internal/machine"
)

// P - pause
// R - one step and stop
// T - switch between zero page and stack page

type UI struct {
	machine *machine.Machine
	disasm  map[uint16]string

	// instructions executed per frame while running
	ticsPerFrame int
	showStack    bool
}

func New(m *machine.Machine, ticsPerFrame int) *UI {
	return &UI{
		machine:      m,
		disasm:       m.Disassemble(),
		ticsPerFrame: max(1, ticsPerFrame),
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.machine.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.machine.OneStepAndStop()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		ui.showStack = !ui.showStack
	}

	for i := 0; i < ui.ticsPerFrame && !ui.machine.Halted(); i++ {
		if err := ui.machine.Tic(); err != nil {
			if errors.Is(err, machine.ErrHalted) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	info := ui.machine.DebugInfo()

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " STATE: %s\n", info.State())
	fmt.Fprintf(&infoStr, " STATUS: %s\n", info.StatusString())
	fmt.Fprintf(&infoStr, " PC: %04X\n", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", info.A, info.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", info.X, info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", info.Y, info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)
	fmt.Fprintf(&infoStr, " CYC: %d STEPS: %d\n\n", info.Cycles, info.Steps)

	// the map only holds instruction starts
	for i := max(0, int(info.PC)-disasmWindow); i < int(info.PC); i++ {
		if line, ok := ui.disasm[uint16(i)]; ok {
			infoStr.WriteString(" " + line + "\n")
		}
	}
	if line, ok := ui.disasm[info.PC]; ok {
		infoStr.WriteString("*" + line + "\n")
	} else {
		fmt.Fprintf(&infoStr, "*$%04X: ???\n", info.PC)
	}
	for i := int(info.PC) + 1; i < min(0xFFFF, int(info.PC)+disasmWindow); i++ {
		if line, ok := ui.disasm[uint16(i)]; ok {
			infoStr.WriteString(" " + line + "\n")
		}
	}

	vector.DrawFilledRect(screen, 0, 0, debugScreenWidth, screenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), 0, 0)

	page := uint16(0x0000)
	title := " ZERO PAGE"
	if ui.showStack {
		page = 0x0100
		title = " STACK"
	}
	vector.DrawFilledRect(screen, debugScreenWidth, 0, memScreenWidth, screenHeight, color.RGBA{30, 30, 30, 255}, false)
	ebitenutil.DebugPrintAt(screen, ui.dumpPage(title, page), debugScreenWidth, 0)
}

func (ui *UI) dumpPage(title string, page uint16) string {
	var sb strings.Builder
	sb.WriteString(title + "\n")
	for row := uint16(0); row < 0x100; row += 0x10 {
		fmt.Fprintf(&sb, " %04X:", page+row)
		for col := uint16(0); col < 0x10; col++ {
			fmt.Fprintf(&sb, " %02X", ui.machine.ReadByte(page+row+col))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

const (
	disasmWindow = 20

	debugScreenWidth = 286
	memScreenWidth   = 340
	screenHeight     = 480
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return debugScreenWidth + memScreenWidth, screenHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize((debugScreenWidth+memScreenWidth)*2, screenHeight*2)
	ebiten.SetWindowTitle("mos6502")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
