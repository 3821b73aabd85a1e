// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fit-exporter/internal/validators"
	"github.com/MKhiriev/go-fit-exporter/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	startDatePrompt = "Start Date (YYYY-MM-DD): "
	endDatePrompt   = "End Date (YYYY-MM-DD): "
)

// DateRangeForm asks for the start and end date of the export. The range is
// validated on submit and the form stays open until it is valid.
type DateRangeForm struct {
	inputForm
	ctx       context.Context
	validator validators.Validator
	dateRange models.DateRange
}

func NewDateRangeForm(ctx context.Context, validator validators.Validator) DateRangeForm {
	newDateInput := func() textinput.Model {
		in := textinput.New()
		in.Placeholder = "YYYY-MM-DD"
		in.CharLimit = len(models.DateLayout)
		in.Width = len(models.DateLayout) + 1
		in.Prompt = ""
		return in
	}

	return DateRangeForm{
		inputForm: newInputForm(newDateInput(), newDateInput()),
		ctx:       ctx,
		validator: validator,
	}
}

func (m DateRangeForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m DateRangeForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	submit, cmd := m.handleKey(msg)
	if !submit {
		return m, cmd
	}

	dateRange, err := validators.ParseDateRange(
		m.ctx,
		m.validator,
		strings.TrimSpace(m.inputs[0].Value()),
		strings.TrimSpace(m.inputs[1].Value()),
	)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.dateRange = dateRange
	m.submitted = true
	return m, tea.Quit
}

func (m DateRangeForm) View() string {
	if m.submitted {
		return ""
	}

	return renderForm(
		"",
		[]string{
			startDatePrompt + m.inputs[0].View(),
			endDatePrompt + m.inputs[1].View(),
		},
		m.errMsg,
		"enter: next field / confirm | esc: cancel",
	)
}

// DateRange returns the validated range once the form was submitted.
func (m DateRangeForm) DateRange() (models.DateRange, bool) {
	return m.dateRange, m.submitted
}
