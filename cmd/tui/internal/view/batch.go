package view

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/verification"
)

const batchTimeout = 2 * time.Minute

type batchState int

const (
	batchStateLoading batchState = iota
	batchStateSelect
	batchStateForm
	batchStateApplying
	batchStateResult
)

// BatchModel applies one decision to many pending proofs at once: multi-select
// over the pending queue, one shared note, then the per-item summary. Items
// that fail keep their reason; the rest still land.
type BatchModel struct {
	CommonModel
	evidenceService     *evidence.Service
	verificationService *verification.Service
	operator            string

	state     batchState
	proofs    []evidence.Evidence
	proofList list.Model
	selected  map[int]bool

	form         *huh.Form
	formDecision string
	formNote     string

	summary *verification.BatchSummary
	status  string
	err     error
}

func NewBatchModel(evSvc *evidence.Service, verSvc *verification.Service, operator string) BatchModel {
	return BatchModel{
		evidenceService:     evSvc,
		verificationService: verSvc,
		operator:            operator,
		selected:            make(map[int]bool),
		state:               batchStateLoading,
	}
}

func (m BatchModel) Title() string { return "Batch Decide" }

func (m BatchModel) ShortHelp() string {
	switch m.state {
	case batchStateSelect:
		return "Space: toggle | a: all | n: none | Enter: decide | Esc: back"
	case batchStateForm:
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back"
}

func (m BatchModel) Init() tea.Cmd {
	return m.loadPendingCmd()
}

func (m BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPendingMsg:
		if msg.err != nil {
			m.state = batchStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error loading queue: %v", msg.err)

			return m, nil
		}

		m.proofs = msg.proofs
		m.selected = make(map[int]bool)
		m.state = batchStateSelect

		items := make([]list.Item, len(m.proofs))
		for i, p := range m.proofs {
			items[i] = proofItem{proof: p, index: i}
		}

		delegate := proofDelegate{selected: &m.selected}
		m.proofList = list.New(items, delegate, 80, 20)
		m.proofList.Title = "Pending Proofs"
		m.proofList.SetShowStatusBar(false)
		m.proofList.SetFilteringEnabled(false)
		m.proofList.SetShowHelp(false)

		return m, nil

	case batchAppliedMsg:
		m.state = batchStateResult
		m.summary = msg.summary
		m.err = msg.err

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case batchStateSelect:
			return m.updateSelect(msg)
		case batchStateForm:
			return m.updateForm(msg)
		case batchStateResult:
			if msg.Type == tea.KeyEsc {
				return m, Back
			}
		default:
			if msg.Type == tea.KeyEsc {
				return m, Back
			}
		}
	}

	if m.state == batchStateForm && m.form != nil {
		return m.updateForm(msg)
	}

	return m, nil
}

func (m BatchModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, Back
	case " ":
		idx := m.proofList.Index()
		m.selected[idx] = !m.selected[idx]

		return m, nil
	case "a":
		for i := range m.proofs {
			m.selected[i] = true
		}

		return m, nil
	case "n":
		for i := range m.proofs {
			m.selected[i] = false
		}

		return m, nil
	case "enter":
		if m.selectedCount() == 0 {
			m.status = "Nothing selected."
			return m, nil
		}

		return m.enterForm()
	}

	var cmd tea.Cmd
	m.proofList, cmd = m.proofList.Update(msg)

	return m, cmd
}

func (m BatchModel) enterForm() (tea.Model, tea.Cmd) {
	m.formDecision = string(verification.DecisionVerify)
	m.formNote = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("decision").
				Title(fmt.Sprintf("Decision for %d proofs", m.selectedCount())).
				Options(
					huh.NewOption("Verify", string(verification.DecisionVerify)),
					huh.NewOption("Reject", string(verification.DecisionReject)),
				).
				Value(&m.formDecision),

			huh.NewInput().
				Key("note").
				Title("Shared note").
				Placeholder("Visible to every customer in the batch").
				Value(&m.formNote).
				Validate(func(s string) error {
					if m.formDecision == string(verification.DecisionReject) && strings.TrimSpace(s) == "" {
						return fmt.Errorf("a rejection needs a note")
					}

					return nil
				}),
		),
	).WithWidth(52).WithShowHelp(false)

	m.state = batchStateForm

	return m, m.form.Init()
}

func (m BatchModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = batchStateSelect
			m.form = nil

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

	m.state = batchStateApplying
	m.status = fmt.Sprintf("Applying %s to %d proofs...", m.formDecision, m.selectedCount())

	return m, m.applyCmd()
}

func (m BatchModel) View() string {
	switch m.state {
	case batchStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading pending proofs...")
	case batchStateSelect:
		content := m.proofList.View()
		if m.status != "" {
			content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
		}

		return lipgloss.NewStyle().Padding(1).Render(content)
	case batchStateForm:
		return lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(m.form.View())
	case batchStateApplying:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case batchStateResult:
		return m.viewResult()
	}

	return ""
}

func (m BatchModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(errStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	var b strings.Builder

	switch m.summary.Outcome {
	case verification.BatchAllSucceeded:
		b.WriteString(okStyle.Render(fmt.Sprintf("All %d decisions applied.", m.summary.Succeeded)))
	case verification.BatchAllFailed:
		b.WriteString(errStyle.Render(fmt.Sprintf("No decisions applied (%d failed).", m.summary.Failed)))
	default:
		b.WriteString(warnStyle.Render(fmt.Sprintf(
			"%d of %d decisions applied, %d failed.",
			m.summary.Succeeded, m.summary.Requested, m.summary.Failed,
		)))
	}

	for _, f := range m.summary.Failures {
		b.WriteString(fmt.Sprintf("\n  %s  %s", shortID(f.EvidenceID), f.Reason))
	}

	return style.Render(b.String() + "\n\n(Esc to go back)")
}

func (m BatchModel) selectedCount() int {
	count := 0

	for _, on := range m.selected {
		if on {
			count++
		}
	}

	return count
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// Messages

type loadPendingMsg struct {
	proofs []evidence.Evidence
	err    error
}

func (m BatchModel) loadPendingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		page, err := m.evidenceService.Query(ctx, evidence.QueryParams{
			Status:   new(evidence.StatusPending),
			PageSize: 200,
		})
		if err != nil {
			return loadPendingMsg{err: err}
		}

		var proofs []evidence.Evidence

		for _, ev := range page.Items {
			if ev.Kind == evidence.KindManualProof {
				proofs = append(proofs, ev)
			}
		}

		return loadPendingMsg{proofs: proofs}
	}
}

type batchAppliedMsg struct {
	summary *verification.BatchSummary
	err     error
}

func (m BatchModel) applyCmd() tea.Cmd {
	var ids []uuid.UUID

	for i, p := range m.proofs {
		if m.selected[i] {
			ids = append(ids, p.ID)
		}
	}

	decision := verification.Decision(m.formDecision)
	note := m.formNote

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
		defer cancel()

		summary := m.verificationService.DecideBatch(ctx, verification.BatchParams{
			EvidenceIDs: ids,
			Decision:    decision,
			Note:        note,
			DecidedBy:   m.operator,
		})

		return batchAppliedMsg{summary: summary}
	}
}

// Proof list item

type proofItem struct {
	proof evidence.Evidence
	index int
}

func (i proofItem) Title() string       { return "" }
func (i proofItem) Description() string { return "" }
func (i proofItem) FilterValue() string { return "" }

// Proof list delegate

type proofDelegate struct {
	selected *map[int]bool
}

func (d proofDelegate) Height() int                             { return 2 }
func (d proofDelegate) Spacing() int                            { return 0 }
func (d proofDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d proofDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(proofItem)
	if !ok {
		return
	}

	checkbox := "[ ]"
	if (*d.selected)[item.index] {
		checkbox = "[x]"
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	p := item.proof

	line1 := fmt.Sprintf("%s%s %s  %s  %s",
		cursor, checkbox,
		FormatDate(p.SubmittedAt),
		p.OrderDisplayID,
		FormatAmount(p.ClaimedCents),
	)

	line2 := fmt.Sprintf("      %s  %s", p.CustomerName, p.Method)

	fmt.Fprintf(w, "%s\n%s\n", line1, line2)
}
