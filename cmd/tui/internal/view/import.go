package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shopfwd/shopfwd/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateGatewaySelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

// ImportModel drives a settlement export upload: pick the gateway, pick the
// file, report what got back-filled.
type ImportModel struct {
	CommonModel
	importService *importer.Service

	state           importState
	filePicker      filepicker.Model
	selectedGateway importer.Gateway
	gatewayOptions  []importer.Gateway
	gatewayCursor   int

	result *importer.Result
	status string
	err    error
}

func NewImportModel(impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService:  impSvc,
		filePicker:     fp,
		gatewayOptions: []importer.Gateway{importer.GatewayFlutterwave},
	}
}

func (m ImportModel) Title() string { return "Import Settlement Export" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateGatewaySelect {
			return m.updateGatewaySelect(msg)
		}

	case importResultMsg:
		m.state = importStateResult

		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.result = msg.result
		m.status = fmt.Sprintf(
			"Parsed %d rows: %d inserted, %d already known.",
			msg.result.Parsed, msg.result.Inserted, msg.result.Skipped,
		)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateGatewaySelect
		return m, nil
	case importStateResult:
		m.state = importStateGatewaySelect
		m.err = nil
		m.result = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateGatewaySelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.gatewayCursor > 0 {
			m.gatewayCursor--
		}
	case tea.KeyDown:
		if m.gatewayCursor < len(m.gatewayOptions)-1 {
			m.gatewayCursor++
		}
	case tea.KeyEnter:
		m.selectedGateway = m.gatewayOptions[m.gatewayCursor]
		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateGatewaySelect:
		return m.viewGatewaySelect()
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select file to import (%s):\n\n%s", m.selectedGateway, m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewGatewaySelect() string {
	s := "Select Gateway:\n\n"

	for i, gw := range m.gatewayOptions {
		cursor := " "
		if i == m.gatewayCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, string(gw))
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(errStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	body := okStyle.Render(m.status)

	if m.result != nil && len(m.result.UnknownRefs) > 0 {
		body += warnStyle.Render(
			fmt.Sprintf(
				"\n\n%d merchant refs matched no order (stored as orphaned):\n  %s",
				len(m.result.UnknownRefs),
				strings.Join(m.result.UnknownRefs, "\n  "),
			),
		)
	}

	return style.Render(body + "\n\n(Esc to go back)")
}

// Messages

type importResultMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.importService.Import(ctx, m.selectedGateway, f)
		if err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{result: result}
	}
}
