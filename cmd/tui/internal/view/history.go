package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/stats"
)

const historyBarWidth = 40

type HistoryModel struct {
	CommonModel
	statsService *stats.Service
	userID       uuid.UUID

	picker PeriodPicker
	points []stats.HistoryPoint

	loading bool
	err     error
}

func NewHistoryModel(statsSvc *stats.Service, userID uuid.UUID) HistoryModel {
	return HistoryModel{
		statsService: statsSvc,
		userID:       userID,
		picker:       NewPeriodPicker(),
		loading:      true,
	}
}

func (m HistoryModel) Init() tea.Cmd {
	return tea.Batch(m.loadPeriodsCmd(), m.loadCmd())
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.points = msg.points
		m.err = nil

		return m, nil

	case periodsLoadMsg:
		if msg.err == nil {
			m.picker.SetYears(msg.years)
		}

		return m, nil

	case PeriodChangedMsg:
		m.loading = true
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	return m, cmd
}

func (m HistoryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading history...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var maxVal int64 = 1

	for _, p := range m.points {
		if p.Income > maxVal {
			maxVal = p.Income
		}

		if p.Expense > maxVal {
			maxVal = p.Expense
		}
	}

	var b strings.Builder

	b.WriteString(m.picker.View() + "\n\n")

	for _, p := range m.points {
		label := p.Month.String()[:3]
		if p.Day != 0 {
			label = fmt.Sprintf("%02d", p.Day)
		}

		income := int(p.Income * historyBarWidth / maxVal)
		expense := int(p.Expense * historyBarWidth / maxVal)

		fmt.Fprintf(&b, "%s %s%s\n",
			label,
			incomeStyle.Render(strings.Repeat("▇", income)),
			expenseStyle.Render(strings.Repeat("▇", expense)),
		)
	}

	b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render("green: income, red: expense | r: refresh | Esc: back"))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

type historyLoadMsg struct {
	points []stats.HistoryPoint
	err    error
}

func (m HistoryModel) loadCmd() tea.Cmd {
	picker := m.picker

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		points, err := m.statsService.History(ctx, m.userID, picker.Timeframe(), picker.Period())

		return historyLoadMsg{points: points, err: err}
	}
}

func (m HistoryModel) loadPeriodsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		years, err := m.statsService.Periods(ctx, m.userID)

		return periodsLoadMsg{years: years, err: err}
	}
}
