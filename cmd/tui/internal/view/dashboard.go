package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/money"
	"github.com/sungheeyun-bit/tracker/internal/settings"
	"github.com/sungheeyun-bit/tracker/internal/stats"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type DashboardModel struct {
	CommonModel
	statsService    *stats.Service
	settingsService *settings.Service
	userID          uuid.UUID

	picker PeriodPicker

	balance    stats.BalanceStats
	categories []stats.CategoryStat
	formatter  *money.Formatter

	loading bool
	err     error
}

func NewDashboardModel(statsSvc *stats.Service, settingsSvc *settings.Service, userID uuid.UUID) DashboardModel {
	return DashboardModel{
		statsService:    statsSvc,
		settingsService: settingsSvc,
		userID:          userID,
		picker:          NewPeriodPicker(),
		loading:         true,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadPeriodsCmd(), m.loadCmd())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.balance = msg.balance
		m.categories = msg.categories
		m.formatter = msg.formatter
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

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(fmt.Sprintf("Income\n%s", incomeStyle.Render(FormatAmount(m.formatter, m.balance.Income)))),
		cardStyle.Render(fmt.Sprintf("Expense\n%s", expenseStyle.Render(FormatAmount(m.formatter, m.balance.Expense)))),
		cardStyle.Render(fmt.Sprintf("Balance\n%s", FormatAmount(m.formatter, m.balance.Income-m.balance.Expense))),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.picker.View(),
		cards,
		m.breakdown(transaction.TypeIncome, "Income by category"),
		m.breakdown(transaction.TypeExpense, "Expense by category"),
		lipgloss.NewStyle().Faint(true).Render("r: refresh | Esc: back"),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// breakdown renders the per-category share bars for one transaction type.
func (m DashboardModel) breakdown(typ transaction.Type, title string) string {
	var typeTotal int64

	for _, c := range m.categories {
		if c.Type == typ {
			typeTotal += c.Total
		}
	}

	var b strings.Builder

	b.WriteString("\n" + title + "\n")

	found := false

	for _, c := range m.categories {
		if c.Type != typ {
			continue
		}

		found = true
		pct := stats.Percentage(c.Total, typeTotal)
		bar := strings.Repeat("█", int(pct/5))

		fmt.Fprintf(&b, "%s %-16s %6.1f%% %s %s\n",
			c.CategoryIcon, c.Category, pct, bar, FormatAmount(m.formatter, c.Total))
	}

	if !found {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("no transactions") + "\n")
	}

	return b.String()
}

type dashboardLoadMsg struct {
	balance    stats.BalanceStats
	categories []stats.CategoryStat
	formatter  *money.Formatter
	err        error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	picker := m.picker

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		from, to := picker.Range()

		balance, err := m.statsService.Balance(ctx, m.userID, from, to)
		if err != nil {
			return dashboardLoadMsg{err: err}
		}

		categories, err := m.statsService.Categories(ctx, m.userID, from, to)
		if err != nil {
			return dashboardLoadMsg{err: err}
		}

		formatter, err := m.settingsService.FormatterFor(ctx, m.userID)
		if err != nil && !errors.Is(err, settings.ErrNotFound) {
			return dashboardLoadMsg{err: err}
		}

		return dashboardLoadMsg{balance: balance, categories: categories, formatter: formatter}
	}
}

type periodsLoadMsg struct {
	years []int
	err   error
}

func (m DashboardModel) loadPeriodsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		years, err := m.statsService.Periods(ctx, m.userID)

		return periodsLoadMsg{years: years, err: err}
	}
}
