// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputForm holds the focus bookkeeping shared by the exporter forms.
type inputForm struct {
	inputs    []textinput.Model
	focus     int
	submitted bool
	quit      bool
	errMsg    string
}

func newInputForm(inputs ...textinput.Model) inputForm {
	f := inputForm{inputs: inputs}
	f.inputs[0].Focus()
	return f
}

func (f *inputForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) onLastInput() bool {
	return f.focus == len(f.inputs)-1
}

// handleKey processes navigation keys. It reports whether enter was pressed
// on the last input; all other keys go to the focused input.
func (f *inputForm) handleKey(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			f.quit = true
			return false, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			f.focusNext()
			return false, nil
		case key.Matches(keyMsg, keys.backtab):
			f.focusPrev()
			return false, nil
		case key.Matches(keyMsg, keys.enter):
			if f.onLastInput() {
				return true, nil
			}
			f.focusNext()
			return false, nil
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, cmd
}
