package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/verification"
)

// ReviewModel steps an operator through the pending manual proofs one at a
// time. Gateway transactions never enter the queue here: their status is not
// an operator decision.
type ReviewModel struct {
	CommonModel
	evidenceService     *evidence.Service
	verificationService *verification.Service
	operator            string

	state ReviewState

	picker TimeframePicker

	queue      []evidence.Evidence
	current    *evidence.Evidence
	totalCount int

	noteInput textinput.Model

	status  string
	loading bool
}

type ReviewState int

const (
	StateSelectTimeframe ReviewState = iota
	StateReviewing
)

func NewReviewModel(evSvc *evidence.Service, verSvc *verification.Service, operator string) ReviewModel {
	ti := textinput.New()
	ti.Placeholder = "Note to customer (optional)"
	ti.Width = 50

	return ReviewModel{
		evidenceService:     evSvc,
		verificationService: verSvc,
		operator:            operator,
		picker:              NewTimeframePicker(),
		noteInput:           ti,
		state:               StateSelectTimeframe,
		status:              "Select timeframe to review",
	}
}

func (m ReviewModel) Init() tea.Cmd {
	return nil
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		if msg.Type == tea.KeyEsc && m.state == StateSelectTimeframe && m.picker.IsSelecting() {
			return m, Back
		}

		if m.state == StateReviewing && m.current != nil {
			switch msg.String() {
			case "esc":
				return m, Back
			case "ctrl+y":
				return m, m.decideCmd(verification.DecisionVerify)
			case "ctrl+x":
				return m, m.decideCmd(verification.DecisionReject)
			case "ctrl+s":
				m.nextProof()
				return m, textinput.Blink
			}
		} else if m.state == StateReviewing {
			if msg.Type == tea.KeyEsc {
				return m, Back
			}
		}

	case TimeframeSelectedMsg:
		m.state = StateReviewing
		m.loading = true

		return m, m.loadQueueCmd(msg)

	case loadQueueMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading queue: %v", msg.err)
			break
		}

		m.queue = msg.proofs
		m.totalCount = len(m.queue)

		if len(m.queue) > 0 {
			m.nextProof()
			return m, textinput.Blink
		}

		m.status = "No pending proofs found."

	case decideResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deciding: %v", msg.err)
			break
		}

		if len(m.queue) > 0 {
			m.nextProof()
			return m, textinput.Blink
		}

		m.current = nil
		m.status = "All done!"
		m.noteInput.SetValue("")
	}

	if m.state == StateSelectTimeframe {
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	if m.state == StateReviewing {
		m.noteInput, cmd = m.noteInput.Update(msg)
	}

	return m, cmd
}

func (m ReviewModel) View() string {
	if m.state == StateSelectTimeframe {
		return lipgloss.NewStyle().Padding(2).Render(m.picker.View())
	}

	content := ""

	switch {
	case m.loading:
		content = "Loading pending proofs..."
	case m.current != nil:
		orderLine := m.current.OrderDisplayID
		if m.current.Orphaned {
			orderLine += "  (orphaned: verify unavailable)"
		}

		info := fmt.Sprintf(
			"Order:    %s\nCustomer: %s <%s>\nMethod:   %s\nClaimed:  %s\nSubmitted: %s\n",
			orderLine,
			m.current.CustomerName,
			m.current.CustomerEmail,
			m.current.Method,
			FormatAmount(m.current.ClaimedCents),
			FormatDate(m.current.SubmittedAt),
		)
		content = fmt.Sprintf(
			"%s\n%s\nNote:\n%s\n\n(Ctrl+Y verify, Ctrl+X reject, Ctrl+S skip, Esc to quit)",
			m.status, info, m.noteInput.View(),
		)
	default:
		content = m.status + "\n\n(Esc to back)"
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}

type loadQueueMsg struct {
	proofs []evidence.Evidence
	err    error
}

func (m ReviewModel) loadQueueCmd(tf TimeframeSelectedMsg) tea.Cmd {
	return func() tea.Msg {
		params := evidence.QueryParams{
			Status:   new(evidence.StatusPending),
			PageSize: 200,
		}

		if !tf.All {
			start, end := tf.Start, tf.End
			params.StartDate = &start
			params.EndDate = &end
		}

		ctx, cancel := DbCtx()
		defer cancel()

		page, err := m.evidenceService.Query(ctx, params)
		if err != nil {
			return loadQueueMsg{err: err}
		}

		var proofs []evidence.Evidence

		for _, ev := range page.Items {
			if ev.Kind == evidence.KindManualProof {
				proofs = append(proofs, ev)
			}
		}

		return loadQueueMsg{proofs: proofs}
	}
}

func (m *ReviewModel) nextProof() {
	if len(m.queue) == 0 {
		m.current = nil
		m.status = "All done! No more pending proofs."
		m.noteInput.Blur()

		return
	}

	next := m.queue[0]
	m.queue = m.queue[1:]
	m.current = &next

	currentIdx := m.totalCount - len(m.queue)
	m.status = fmt.Sprintf("Reviewing %d/%d", currentIdx, m.totalCount)
	m.noteInput.SetValue("")
	m.noteInput.Focus()
}

type decideResultMsg struct {
	err error
}

func (m ReviewModel) decideCmd(decision verification.Decision) tea.Cmd {
	evidenceID := m.current.ID
	note := m.noteInput.Value()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.verificationService.Decide(ctx, verification.DecideParams{
			EvidenceID: evidenceID,
			Decision:   decision,
			Note:       note,
			DecidedBy:  m.operator,
		})

		return decideResultMsg{err: err}
	}
}
