package view

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/money"
	"github.com/sungheeyun-bit/tracker/internal/settings"
)

type SettingsModel struct {
	CommonModel
	settingsService *settings.Service
	userID          uuid.UUID

	form    *huh.Form
	current string

	loading bool
	err     error
	status  string

	formCurrency string
}

func NewSettingsModel(settingsSvc *settings.Service, userID uuid.UUID) SettingsModel {
	return SettingsModel{
		settingsService: settingsSvc,
		userID:          userID,
		loading:         true,
	}
}

func (m SettingsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.current = msg.currency
		m.formCurrency = msg.currency
		m.form = m.newForm()

		return m, m.form.Init()

	case settingsSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.current = m.formCurrency
			m.status = "Currency updated."
		}

		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m SettingsModel) newForm() *huh.Form {
	options := make([]huh.Option[string], 0, len(money.Supported()))
	for _, code := range money.Supported() {
		options = append(options, huh.NewOption(code, code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("currency").
				Title("Currency").
				Options(options...).
				Value(&m.formCurrency),
		),
	).WithWidth(30).WithShowHelp(false)
}

func (m SettingsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading settings...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := fmt.Sprintf("Settings\n\nCurrent currency: %s\n\n%s\n\n%s",
		activeStyle(m.current),
		m.form.View(),
		lipgloss.NewStyle().Faint(true).Render("Enter: save | Esc: back"),
	)

	if m.status != "" {
		content += "\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type settingsLoadMsg struct {
	currency string
	err      error
}

func (m SettingsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.settingsService.Get(ctx, m.userID)
		if errors.Is(err, settings.ErrNotFound) {
			// First run: the save below creates the row.
			return settingsLoadMsg{currency: "USD"}
		}

		if err != nil {
			return settingsLoadMsg{err: err}
		}

		return settingsLoadMsg{currency: s.Currency}
	}
}

type settingsSavedMsg struct {
	err error
}

func (m SettingsModel) saveCmd() tea.Cmd {
	currency := m.formCurrency

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.settingsService.Update(ctx, m.userID, currency)

		return settingsSavedMsg{err: err}
	}
}
