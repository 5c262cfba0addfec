package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/sungheeyun-bit/tracker/cmd/tui/internal/view"
	"github.com/sungheeyun-bit/tracker/internal/category"
	categoryStore "github.com/sungheeyun-bit/tracker/internal/category/store"
	"github.com/sungheeyun-bit/tracker/internal/config"
	"github.com/sungheeyun-bit/tracker/internal/database"
	"github.com/sungheeyun-bit/tracker/internal/money"
	"github.com/sungheeyun-bit/tracker/internal/settings"
	settingsStore "github.com/sungheeyun-bit/tracker/internal/settings/store"
	"github.com/sungheeyun-bit/tracker/internal/stats"
	statsStore "github.com/sungheeyun-bit/tracker/internal/stats/store"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
	txStore "github.com/sungheeyun-bit/tracker/internal/transaction/store"
)

type model struct {
	txService       *transaction.Service
	categoryService *category.Service
	statsService    *stats.Service
	settingsService *settings.Service
	userID          uuid.UUID

	currentView View

	dashboardView    view.DashboardModel
	historyView      view.HistoryModel
	transactionsView view.TransactionsModel
	categoriesView   view.CategoriesModel
	settingsView     view.SettingsModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewHistory      View = 2
	ViewTransactions View = 3
	ViewCategories   View = 4
	ViewSettings     View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	userID, err := uuid.Parse(cfg.TUI.UserID)
	if err != nil {
		slog.Error("TUI_USER_ID must be a user UUID", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	catSvc := category.NewService(categoryStore.New(db))
	txSvc := transaction.NewService(txStore.New(db), catSvc)
	statsSvc := stats.NewService(statsStore.New(db))
	settingsSvc := settings.NewService(settingsStore.New(db), money.NewCache())

	return model{
		txService:        txSvc,
		categoryService:  catSvc,
		statsService:     statsSvc,
		settingsService:  settingsSvc,
		userID:           userID,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(statsSvc, settingsSvc, userID),
		historyView:      view.NewHistoryModel(statsSvc, userID),
		transactionsView: view.NewTransactionsModel(txSvc, settingsSvc, userID),
		categoriesView:   view.NewCategoriesModel(catSvc, userID),
		settingsView:     view.NewSettingsModel(settingsSvc, userID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.statsService, m.settingsService, m.userID)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.statsService, m.userID)

				return m, m.historyView.Init()
			case "3":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService, m.settingsService, m.userID)

				return m, m.transactionsView.Init()
			case "4":
				m.currentView = ViewCategories
				m.categoriesView = view.NewCategoriesModel(m.categoryService, m.userID)

				return m, m.categoriesView.Init()
			case "5":
				m.currentView = ViewSettings
				m.settingsView = view.NewSettingsModel(m.settingsService, m.userID)

				return m, m.settingsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewCategories:
		var newModel tea.Model
		newModel, cmd = m.categoriesView.Update(msg)
		m.categoriesView = newModel.(view.CategoriesModel)
	case ViewSettings:
		var newModel tea.Model
		newModel, cmd = m.settingsView.Update(msg)
		m.settingsView = newModel.(view.SettingsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Tracker TUI\n\n" +
				"1. Dashboard\n" +
				"2. History\n" +
				"3. Transactions\n" +
				"4. Categories\n" +
				"5. Settings\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewCategories:
		return m.categoriesView.View()
	case ViewSettings:
		return m.settingsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
