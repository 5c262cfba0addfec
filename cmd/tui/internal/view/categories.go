package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/category"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

type categoriesState int

const (
	categoriesStateBrowse categoriesState = iota
	categoriesStateCreate
)

type CategoriesModel struct {
	CommonModel
	catService *category.Service
	userID     uuid.UUID

	state categoriesState
	table table.Model
	cats  []*category.Category
	form  *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formName string
	formIcon string
	formType transaction.Type
}

func NewCategoriesModel(catSvc *category.Service, userID uuid.UUID) CategoriesModel {
	columns := []table.Column{
		{Title: "Icon", Width: 6},
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 10},
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

	return CategoriesModel{
		catService: catSvc,
		userID:     userID,
		table:      t,
	}
}

func (m CategoriesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CategoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCategoriesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.cats = msg.cats
		m.err = nil
		m.refreshTable()

		return m, nil

	case categorySavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = "Saved."
		}

		m.state = categoriesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case categoryDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		} else {
			m.status = "Deleted. Existing transactions keep their snapshot."
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case categoriesStateBrowse:
		return m.updateBrowse(msg)
	case categoriesStateCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

func (m CategoriesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterCreateMode()
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CategoriesModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formIcon = ""
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
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}

					return nil
				}),

			huh.NewInput().
				Key("icon").
				Title("Icon").
				Placeholder("🛒").
				Value(&m.formIcon),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = categoriesStateCreate
	m.table.Blur()

	return m, m.form.Init()
}

func (m CategoriesModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = categoriesStateBrowse
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

func (m CategoriesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading categories...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		tableView,
		lipgloss.NewStyle().Faint(true).Render("n: new | x: delete | r: refresh | Esc: back"),
	)

	if m.state == categoriesStateCreate && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Category\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CategoriesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.cats))
	for _, c := range m.cats {
		rows = append(rows, table.Row{c.Icon, c.Name, string(c.Type)})
	}

	m.table.SetRows(rows)
}

// Messages

type loadCategoriesMsg struct {
	cats []*category.Category
	err  error
}

func (m CategoriesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cats, err := m.catService.List(ctx, m.userID, nil)

		return loadCategoriesMsg{cats: cats, err: err}
	}
}

type categorySavedMsg struct {
	err error
}

func (m CategoriesModel) saveCmd() tea.Cmd {
	params := category.CreateParams{
		Name: m.formName,
		Type: m.formType,
		Icon: m.formIcon,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.catService.Create(ctx, m.userID, params)

		return categorySavedMsg{err: err}
	}
}

type categoryDeletedMsg struct {
	err error
}

func (m CategoriesModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.cats) {
		return nil
	}

	c := m.cats[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return categoryDeletedMsg{err: m.catService.Delete(ctx, m.userID, c.Name, c.Type)}
	}
}
