package model

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/lectern/internal/infrastructure/config"
)

// AutoplayFireMsg carries an autoplay tick into the Update loop so the
// navigator is only ever driven from the program goroutine.
type AutoplayFireMsg struct {
	Fire func()
}

// PrintedMsg reports a finished export.
type PrintedMsg struct {
	Path string
	Err  error
}

// ConfigReloadedMsg carries a freshly reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ProgramBridge forwards messages from background goroutines into a
// running tea.Program. Messages sent before Bind are dropped.
type ProgramBridge struct {
	program atomic.Pointer[tea.Program]
}

// NewProgramBridge creates an unbound bridge.
func NewProgramBridge() *ProgramBridge {
	return &ProgramBridge{}
}

// Bind attaches p. Call it before p.Run.
func (b *ProgramBridge) Bind(p *tea.Program) {
	b.program.Store(p)
}

// Unbind detaches the program; later sends are dropped.
func (b *ProgramBridge) Unbind() {
	b.program.Store(nil)
}

// Send delivers msg to the bound program.
func (b *ProgramBridge) Send(msg tea.Msg) {
	if p := b.program.Load(); p != nil {
		p.Send(msg)
	}
}

// Relay is a usecase.AutoplayRelay that routes fires through the program.
func (b *ProgramBridge) Relay(fire func()) {
	b.Send(AutoplayFireMsg{Fire: fire})
}

// Printed is a presenter OnPrinted callback.
func (b *ProgramBridge) Printed(path string, err error) {
	b.Send(PrintedMsg{Path: path, Err: err})
}

// ConfigChanged is a config.Manager change callback.
func (b *ProgramBridge) ConfigChanged(cfg *config.Config) {
	b.Send(ConfigReloadedMsg{Config: cfg})
}
