package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"metaseek/internal/api"
)

// openResultCmd renders the focused result's full record and shows it in
// the ov pager. The pager takes over the terminal, so the program releases
// it first and restores it once the pager exits.
func (m *Model) openResultCmd(res api.Result) tea.Cmd {
	detail := m.renderer.Results().RenderDetail(res, m.dispatcher.Answers.Data())
	program := m.program

	return func() tea.Msg {
		return pagerClosedMsg{err: showInPager(program, detail)}
	}
}

func showInPager(program *tea.Program, content string) error {
	if program == nil {
		return fmt.Errorf("program not set")
	}

	if err := program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to fully tear down before taking the terminal back.
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Keep ov from writing its buffer over our screen on exit.
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
