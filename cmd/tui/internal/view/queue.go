package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/verification"
)

type queueState int

const (
	queueStateBrowse queueState = iota
	queueStateDecide
)

// QueueModel renders the merged evidence queue: manual proofs and gateway
// transactions in one table, with the same filters the web console has.
type QueueModel struct {
	CommonModel
	evidenceService     *evidence.Service
	verificationService *verification.Service
	operator            string

	state queueState
	table table.Model
	items []evidence.Evidence
	stats *evidence.Stats
	form  *huh.Form

	// Filter cycling
	statusFilterIdx int
	dateFilterIdx   int

	params  evidence.QueryParams
	loading bool
	err     error
	status  string

	// Form bindings
	formDecision string
	formNote     string
}

func NewQueueModel(evSvc *evidence.Service, verSvc *verification.Service, operator string) QueueModel {
	columns := []table.Column{
		{Title: "Submitted", Width: 12},
		{Title: "Kind", Width: 10},
		{Title: "Order", Width: 12},
		{Title: "Customer", Width: 22},
		{Title: "Method", Width: 14},
		{Title: "Amount", Width: 10},
		{Title: "Status", Width: 10},
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

	return QueueModel{
		evidenceService:     evSvc,
		verificationService: verSvc,
		operator:            operator,
		table:               t,
		params:              evidence.QueryParams{PageSize: 200},
	}
}

func (m QueueModel) Title() string { return "Evidence Queue" }

func (m QueueModel) ShortHelp() string {
	if m.state == queueStateDecide {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | e: decide | s: status filter | d: date filter | r: refresh"
}

func (m QueueModel) Init() tea.Cmd {
	return m.loadQueueCmd()
}

func (m QueueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadQueuePageMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.items = msg.items
		m.stats = msg.stats
		m.status = ""
		m.refreshTable()

		return m, nil

	case queueDecideMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deciding: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Decision applied: %s", msg.decision)
		}

		m.state = queueStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadQueueCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case queueStateBrowse:
		return m.updateBrowse(msg)
	case queueStateDecide:
		return m.updateDecide(msg)
	}

	return m, nil
}

func (m QueueModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadQueueCmd()
		case "e":
			return m.enterDecideMode()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()

			return m, m.loadQueueCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			m.applyFilter()

			return m, m.loadQueueCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m QueueModel) enterDecideMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return m, nil
	}

	item := m.items[idx]
	if item.Kind != evidence.KindManualProof {
		m.status = "Gateway transactions carry their own status; nothing to decide."
		return m, nil
	}

	if item.Status != evidence.StatusPending {
		m.status = "Already decided."
		return m, nil
	}

	m.formDecision = string(verification.DecisionVerify)
	m.formNote = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("decision").
				Title("Decision").
				Options(
					huh.NewOption("Verify", string(verification.DecisionVerify)),
					huh.NewOption("Reject", string(verification.DecisionReject)),
				).
				Value(&m.formDecision),

			huh.NewInput().
				Key("note").
				Title("Note").
				Placeholder("Visible to the customer").
				Value(&m.formNote).
				Validate(func(s string) error {
					if m.formDecision == string(verification.DecisionReject) && strings.TrimSpace(s) == "" {
						return fmt.Errorf("a rejection needs a note")
					}

					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = queueStateDecide
	m.table.Blur()

	return m, m.form.Init()
}

func (m QueueModel) updateDecide(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = queueStateBrowse
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

	return m, m.decideCmd()
}

func (m QueueModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading evidence queue...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"All", "Pending", "Verified", "Rejected"}
	dateLabels := []string{"All Time", "This Month", "Last Month"}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [d] Date: %s",
		activeStyle.Render(statusLabels[m.statusFilterIdx]),
		activeStyle.Render(dateLabels[m.dateFilterIdx]),
	)

	if m.stats != nil {
		header += fmt.Sprintf(
			"\nQueue: %d total | %d pending | %d verified | %d rejected",
			m.stats.Total, m.stats.Pending, m.stats.Verified, m.stats.Rejected,
		)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == queueStateDecide && m.form != nil {
		idx := m.table.Cursor()

		orderLabel := ""
		if idx >= 0 && idx < len(m.items) {
			orderLabel = m.items[idx].OrderDisplayID
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(
				fmt.Sprintf("Decide Proof\n\nOrder: %s\n\n%s", orderLabel, m.form.View()),
			)

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *QueueModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.params.Status = new(evidence.StatusPending)
	case 2:
		m.params.Status = new(evidence.StatusVerified)
	case 3:
		m.params.Status = new(evidence.StatusRejected)
	default:
		m.params.Status = nil
	}

	now := time.Now()

	switch m.dateFilterIdx {
	case 1:
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.params.StartDate = &s
		m.params.EndDate = &e
	case 2:
		s := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.params.StartDate = &s
		m.params.EndDate = &e
	default:
		m.params.StartDate = nil
		m.params.EndDate = nil
	}
}

func (m *QueueModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))

	for _, ev := range m.items {
		amount := ev.ClaimedCents
		if ev.VerifiedCents != nil {
			amount = *ev.VerifiedCents
		}

		rows = append(rows, table.Row{
			FormatDate(ev.SubmittedAt),
			string(ev.Kind),
			ev.OrderDisplayID,
			ev.CustomerName,
			ev.Method,
			FormatAmount(amount),
			string(ev.Status),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadQueuePageMsg struct {
	items []evidence.Evidence
	stats *evidence.Stats
	err   error
}

func (m QueueModel) loadQueueCmd() tea.Cmd {
	params := m.params

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		page, err := m.evidenceService.Query(ctx, params)
		if err != nil {
			return loadQueuePageMsg{err: err}
		}

		stats, err := m.evidenceService.Stats(ctx)
		if err != nil {
			return loadQueuePageMsg{err: err}
		}

		return loadQueuePageMsg{items: page.Items, stats: stats}
	}
}

type queueDecideMsg struct {
	decision verification.Decision
	err      error
}

func (m QueueModel) decideCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}

	evidenceID := m.items[idx].ID
	decision := verification.Decision(m.formDecision)
	note := m.formNote

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.verificationService.Decide(ctx, verification.DecideParams{
			EvidenceID: evidenceID,
			Decision:   decision,
			Note:       note,
			DecidedBy:  m.operator,
		})

		return queueDecideMsg{decision: decision, err: err}
	}
}
