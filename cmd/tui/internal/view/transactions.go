package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/money"
	"github.com/sungheeyun-bit/tracker/internal/settings"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateCreate
)

type TransactionsModel struct {
	CommonModel
	txService       *transaction.Service
	settingsService *settings.Service
	userID          uuid.UUID

	state txState
	table table.Model
	txs   []*transaction.Transaction
	form  *huh.Form

	typeFilterIdx int
	dateFilterIdx int

	filter    transaction.ListFilter
	formatter *money.Formatter
	loading   bool
	err       error
	status    string

	// Form bindings
	formAmount   string
	formDesc     string
	formDate     string
	formCategory string
	formType     transaction.Type
}

func NewTransactionsModel(txSvc *transaction.Service, settingsSvc *settings.Service, userID uuid.UUID) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 18},
		{Title: "Amount", Width: 14},
		{Title: "Description", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TransactionsModel{
		txService:       txSvc,
		settingsService: settingsSvc,
		userID:          userID,
		table:           t,
		filter:          transaction.ListFilter{},
	}
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.formatter = msg.formatter
		m.err = nil
		m.refreshTable()

		return m, nil

	case txSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = "Saved."
		}

		m.state = txStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadTxsCmd()

	case txDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		} else {
			m.status = "Deleted."
		}

		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case txStateBrowse:
		return m.updateBrowse(msg)
	case txStateCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "n":
			return m.enterCreateMode()
		case "x":
			return m, m.deleteCmd()
		case "f":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % 3
			m.applyFilter()

			return m, m.loadTxsCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			m.applyFilter()

			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.formAmount = ""
	m.formDesc = ""
	m.formDate = FormatDate(time.Now().UTC())
	m.formCategory = ""
	m.formType = transaction.TypeExpense

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[transaction.Type]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", transaction.TypeExpense),
					huh.NewOption("Income", transaction.TypeIncome),
				).
				Value(&m.formType),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					_, err := transaction.ValidateCreate(transaction.CreateInput{
						Amount:   transaction.Number(s),
						Date:     "2000-01-01",
						Category: "placeholder",
						Type:     transaction.TypeExpense,
					})
					if errors.Is(err, transaction.ErrInvalidAmount) {
						return fmt.Errorf("enter a positive whole amount")
					}

					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate),

			huh.NewInput().
				Key("category").
				Title("Category").
				Value(&m.formCategory).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("category is required")
					}

					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = txStateCreate
	m.table.Blur()

	return m, m.form.Init()
}

func (m TransactionsModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
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

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	typeLabels := []string{"All", "Income", "Expense"}
	dateLabels := []string{"All Time", "This Month", "Last Month"}

	header := fmt.Sprintf(
		"Filter: [f] Type: %s | [d] Date: %s",
		activeStyle(typeLabels[m.typeFilterIdx]),
		activeStyle(dateLabels[m.dateFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Faint(true).Render("n: new | x: delete | r: refresh | Esc: back"),
	)

	if m.state == txStateCreate && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Transaction\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *TransactionsModel) applyFilter() {
	switch m.typeFilterIdx {
	case 1:
		typ := transaction.TypeIncome
		m.filter.Type = &typ
	case 2:
		typ := transaction.TypeExpense
		m.filter.Type = &typ
	default:
		m.filter.Type = nil
	}

	now := time.Now().UTC()

	switch m.dateFilterIdx {
	case 1:
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		e := s.AddDate(0, 1, -1)
		m.filter.From = &s
		m.filter.To = &e
	case 2:
		s := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		e := s.AddDate(0, 1, -1)
		m.filter.From = &s
		m.filter.To = &e
	default:
		m.filter.From = nil
		m.filter.To = nil
	}
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			fmt.Sprintf("%s %s", tx.CategoryIcon, tx.Category),
			FormatAmount(m.formatter, tx.Amount),
			tx.Description,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadTxsMsg struct {
	txs       []*transaction.Transaction
	formatter *money.Formatter
	err       error
}

func (m TransactionsModel) loadTxsCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, m.userID, filter)
		if err != nil {
			return loadTxsMsg{err: err}
		}

		formatter, err := m.settingsService.FormatterFor(ctx, m.userID)
		if err != nil && !errors.Is(err, settings.ErrNotFound) {
			return loadTxsMsg{err: err}
		}

		return loadTxsMsg{txs: txs, formatter: formatter}
	}
}

type txSavedMsg struct {
	err error
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	in := transaction.CreateInput{
		Amount:      transaction.Number(m.formAmount),
		Description: m.formDesc,
		Date:        m.formDate,
		Category:    m.formCategory,
		Type:        m.formType,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.txService.Create(ctx, m.userID, in)

		return txSavedMsg{err: err}
	}
}

type txDeletedMsg struct {
	err error
}

func (m TransactionsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	id := m.txs[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return txDeletedMsg{err: m.txService.Delete(ctx, m.userID, id)}
	}
}
