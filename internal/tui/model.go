package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/medicore-hq/medicore/internal/advisor"
	"github.com/medicore-hq/medicore/internal/model"
	"github.com/medicore-hq/medicore/internal/prompt"
	"github.com/medicore-hq/medicore/internal/tui/themes"
)

// View identifies a dashboard screen.
type View int

const (
	ViewDashboard View = iota
	ViewFinance
	ViewInventory
	ViewStaffing
	ViewClinical

	viewCount = 5
)

func (v View) title() string {
	switch v {
	case ViewFinance:
		return "Finance"
	case ViewInventory:
		return "Inventory"
	case ViewStaffing:
		return "Staffing"
	case ViewClinical:
		return "Clinical"
	default:
		return "Dashboard"
	}
}

// The finance screen always analyzes the flagged maintenance account, the
// same scenario the demo ledger is built around.
const (
	anomalyAccountID = "ACC-MAINT"
	anomalyThreshold = "25%"
)

type financeScreen struct {
	screenState
	table  table.Model
	result string
}

type inventoryScreen struct {
	screenState
	table  table.Model
	item   model.InventoryItem
	result model.ForecastResult
}

type staffingScreen struct {
	screenState
	result string
}

type clinicalScreen struct {
	screenState
	notes   textarea.Model
	docType prompt.DocType
	result  string
}

// Config holds everything the dashboard needs to run.
type Config struct {
	Advisor      *advisor.Advisor
	Transactions []model.FinancialTransaction
	Inventory    []model.InventoryItem
	Staff        []model.StaffMember
}

// Model holds the dashboard state. Each AI screen owns its display slot
// exclusively; results are routed by sequence number.
type Model struct {
	advisor      *advisor.Advisor
	theme        themes.Theme
	keymap       KeyMap
	spin         spinner.Model
	transactions []model.FinancialTransaction
	inventory    []model.InventoryItem
	staff        []model.StaffMember
	finance      financeScreen
	stock        inventoryScreen
	staffing     staffingScreen
	clinical     clinicalScreen
	width        int
	height       int
	view         View
	quitting     bool
}

func newModel(cfg Config) Model {
	theme := themes.Default

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	notes := textarea.New()
	notes.Placeholder = "Enter raw clinical notes..."
	notes.CharLimit = 4000
	notes.SetHeight(8)

	m := Model{
		advisor:      cfg.Advisor,
		theme:        theme,
		keymap:       DefaultKeyMap(),
		spin:         sp,
		transactions: cfg.Transactions,
		inventory:    cfg.Inventory,
		staff:        cfg.Staff,
		view:         ViewDashboard,
	}
	m.finance.table = newFinanceTable(theme, cfg.Transactions)
	m.stock.table = newInventoryTable(theme, cfg.Inventory)
	m.clinical.notes = notes
	m.clinical.docType = prompt.DocSOAP
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.spin.Tick, textarea.Blink)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case forecastResultMsg:
		if !m.stock.accept(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.stock.fail(msg.err)
		} else {
			m.stock.result = msg.result
			m.stock.succeed()
		}
		return m, nil

	case analysisResultMsg:
		if !m.finance.accept(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.finance.fail(msg.err)
		} else {
			m.finance.result = msg.text
			m.finance.succeed()
		}
		return m, nil

	case scheduleResultMsg:
		if !m.staffing.accept(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.staffing.fail(msg.err)
		} else {
			m.staffing.result = msg.text
			m.staffing.succeed()
		}
		return m, nil

	case clinicalResultMsg:
		if !m.clinical.accept(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.clinical.fail(msg.err)
		} else {
			m.clinical.result = msg.text
			m.clinical.succeed()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Quit) && m.view != ViewClinical:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextView):
		m.setView((m.view + 1) % viewCount)
		return m, nil

	case key.Matches(msg, m.keymap.PrevView):
		m.setView((m.view + viewCount - 1) % viewCount)
		return m, nil
	}

	switch m.view {
	case ViewFinance:
		return m.handleFinanceKey(msg)
	case ViewInventory:
		return m.handleInventoryKey(msg)
	case ViewStaffing:
		return m.handleStaffingKey(msg)
	case ViewClinical:
		return m.handleClinicalKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) setView(v View) {
	m.view = v
	if v == ViewClinical {
		m.clinical.notes.Focus()
	} else {
		m.clinical.notes.Blur()
	}
}

func (m *Model) handleResize() {
	if m.width <= 0 {
		return
	}
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}
	m.finance.table.SetWidth(contentWidth)
	m.stock.table.SetWidth(contentWidth)
	m.clinical.notes.SetWidth(contentWidth / 2)
}

func (m Model) handleFinanceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Run) {
		if m.finance.loading() {
			return m, nil
		}
		seq := m.finance.begin()
		return m, m.runAnalysis(seq)
	}

	var cmd tea.Cmd
	m.finance.table, cmd = m.finance.table.Update(msg)
	return m, cmd
}

func (m Model) handleInventoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Run) {
		if m.stock.loading() {
			return m, nil
		}
		idx := m.stock.table.Cursor()
		if idx < 0 || idx >= len(m.inventory) {
			return m, nil
		}
		m.stock.item = m.inventory[idx]
		seq := m.stock.begin()
		return m, m.runForecast(m.stock.item, seq)
	}

	var cmd tea.Cmd
	m.stock.table, cmd = m.stock.table.Update(msg)
	return m, cmd
}

func (m Model) handleStaffingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Run) {
		if m.staffing.loading() {
			return m, nil
		}
		seq := m.staffing.begin()
		return m, m.runSchedule(seq)
	}
	return m, nil
}

func (m Model) handleClinicalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ToggleDoc):
		if m.clinical.docType == prompt.DocSOAP {
			m.clinical.docType = prompt.DocDischargeSummary
		} else {
			m.clinical.docType = prompt.DocSOAP
		}
		return m, nil

	case key.Matches(msg, m.keymap.Generate):
		// Gated: no invocation while loading or for blank notes.
		if m.clinical.loading() || !m.clinicalReady() {
			return m, nil
		}
		seq := m.clinical.begin()
		return m, m.runClinical(m.clinical.notes.Value(), m.clinical.docType, seq)
	}

	var cmd tea.Cmd
	m.clinical.notes, cmd = m.clinical.notes.Update(msg)
	return m, cmd
}

func (m Model) clinicalReady() bool {
	return hasContent(m.clinical.notes.Value())
}
