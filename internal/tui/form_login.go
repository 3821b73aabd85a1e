// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-fit-exporter/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginForm asks for the account email and password. The password input uses
// masked echo. Values already known from the configuration are prefilled.
type LoginForm struct {
	inputForm
}

func NewLoginForm(preset models.Credentials) LoginForm {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.SetValue(preset.Email)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.SetValue(preset.Password)

	form := LoginForm{inputForm: newInputForm(emailInput, passwordInput)}
	if preset.Email != "" {
		form.focusNext()
	}
	return form
}

func (m LoginForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	submit, cmd := m.handleKey(msg)
	if !submit {
		return m, cmd
	}

	creds := m.Credentials()
	if creds.Email == "" || creds.Password == "" {
		m.errMsg = "email and password are required"
		return m, nil
	}

	m.errMsg = ""
	m.submitted = true
	return m, tea.Quit
}

func (m LoginForm) View() string {
	if m.submitted {
		return ""
	}

	return renderForm(
		"Login",
		[]string{
			"Email:    " + m.inputs[0].View(),
			"Password: " + m.inputs[1].View(),
		},
		m.errMsg,
		"tab: next field | enter: confirm | esc: cancel",
	)
}

// Credentials returns the entered values; the email is trimmed.
func (m LoginForm) Credentials() models.Credentials {
	return models.Credentials{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}
