package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/shopfwd/shopfwd/cmd/tui/internal/view"
	"github.com/shopfwd/shopfwd/internal/config"
	"github.com/shopfwd/shopfwd/internal/database"
	"github.com/shopfwd/shopfwd/internal/evidence"
	evidenceStore "github.com/shopfwd/shopfwd/internal/evidence/store"
	"github.com/shopfwd/shopfwd/internal/importer"
	"github.com/shopfwd/shopfwd/internal/invalidate"
	"github.com/shopfwd/shopfwd/internal/notify"
	"github.com/shopfwd/shopfwd/internal/verification"
	verificationStore "github.com/shopfwd/shopfwd/internal/verification/store"
)

type model struct {
	evidenceService     *evidence.Service
	verificationService *verification.Service
	importService       *importer.Service
	operator            string

	currentView View

	reviewView view.ReviewModel
	queueView  view.QueueModel
	batchView  view.BatchModel
	importView view.ImportModel
}

type View int

const (
	ViewMenu   View = 0
	ViewReview View = 1
	ViewQueue  View = 2
	ViewBatch  View = 3
	ViewImport View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	evStore := evidenceStore.New(db)
	notifier := notify.NewDispatcher(cfg.Notify.BaseURL, cfg.Notify.Token)

	evSvc := evidence.NewService(evStore)
	verSvc := verification.NewService(verificationStore.New(db), notifier, invalidate.NewBus())
	impSvc := importer.NewService(evStore)

	operator := cfg.TUI.Operator

	return model{
		evidenceService:     evSvc,
		verificationService: verSvc,
		importService:       impSvc,
		operator:            operator,
		currentView:         ViewMenu,
		reviewView:          view.NewReviewModel(evSvc, verSvc, operator),
		queueView:           view.NewQueueModel(evSvc, verSvc, operator),
		batchView:           view.NewBatchModel(evSvc, verSvc, operator),
		importView:          view.NewImportModel(impSvc),
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
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.evidenceService, m.verificationService, m.operator)

				return m, m.reviewView.Init()
			case "2":
				m.currentView = ViewQueue
				m.queueView = view.NewQueueModel(m.evidenceService, m.verificationService, m.operator)

				return m, m.queueView.Init()
			case "3":
				m.currentView = ViewBatch
				m.batchView = view.NewBatchModel(m.evidenceService, m.verificationService, m.operator)

				return m, m.batchView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewQueue:
		var newModel tea.Model
		newModel, cmd = m.queueView.Update(msg)
		m.queueView = newModel.(view.QueueModel)
	case ViewBatch:
		var newModel tea.Model
		newModel, cmd = m.batchView.Update(msg)
		m.batchView = newModel.(view.BatchModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"ShopFwd Payments Console\n\n" +
				"1. Review Pending Proofs\n" +
				"2. Evidence Queue\n" +
				"3. Batch Decide\n" +
				"4. Import Settlement Export\n\n" +
				"q. Quit",
		)
	case ViewReview:
		return m.reviewView.View()
	case ViewQueue:
		return m.queueView.View()
	case ViewBatch:
		return m.batchView.View()
	case ViewImport:
		return m.importView.View()
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
