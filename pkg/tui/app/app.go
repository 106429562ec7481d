// Package teaui hosts the Bubble Tea program for the interactive log.
package teaui

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/store"
	"tableflip.dev/fieldlog/pkg/timeutil"
	"tableflip.dev/fieldlog/pkg/tui/theme"
)

// Model states and actions
type page int

const (
	pageMenu page = iota
	pageEntry
	pageCalendar
	pagePeople
	pageTexts
	pageNotes
	pageCharts
)

// entryView selects which face of the entry page is showing. The menu
// choice decides it and it sticks for the session until changed there.
type entryView int

const (
	entryViewForm entryView = iota
	entryViewSummary
)

type mode int

const (
	modeNormal mode = iota
	modeConfirm
	modeAlert
	modeForm
	modeGoal
	modeNoteDetail
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeletePerson
	confirmDeleteNote
	confirmDeleteText
	confirmClearData
)

type formKind int

const (
	formNone formKind = iota
	formPerson
	formText
	formNote
)

// session is the explicit navigation context: which page is active and how
// the entry page presents itself.
type session struct {
	page      page
	entryView entryView
}

var errServiceUnavailable = errors.New("service unavailable")

// timeNow is swappable in tests.
var timeNow = time.Now

// Model contains UI state
type Model struct {
	svc    *app.Service
	t      *i18n.Provider
	ctx    context.Context
	cancel context.CancelFunc

	session session
	mode    mode

	termWidth  int
	termHeight int

	// loaded collections
	entries []record.Entry
	people  []record.Person
	notes   []record.Note
	texts   []record.Text

	// entry form page
	day        record.Day
	form       entryForm
	fieldFocus int

	// summary and calendar anchors
	summaryMonth time.Time
	calMonth     time.Time
	calDay       int

	menuIndex int

	peopleList list.Model
	notesList  list.Model
	textsList  list.Model

	// overlay form state
	formKind   formKind
	formEditID int64
	formFocus  int
	inputs     []textinput.Model
	personType record.VisitType

	goalInput textinput.Model

	confirmAction confirmAction
	confirmTarget int64
	confirmText   string

	alertText  string
	detailNote record.Note

	toast     string
	toastSeq  int
	status    string
	statusErr bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	theme theme.Theme
}

// entryForm mirrors the four editable fields of a day entry.
type entryForm struct {
	Hours    int
	Minutes  int
	Revisits int
	Studies  int
}

// New creates a new UI model backed by the Service. Language and theme come
// from the store's persisted settings.
func New(svc *app.Service, t *i18n.Provider) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	th := theme.Detect()
	if svc != nil && svc.Persistence != nil {
		if name := svc.Persistence.Theme(); name != "" {
			th = theme.ForName(name)
		}
	}

	m := &Model{
		svc:          svc,
		t:            t,
		ctx:          ctx,
		cancel:       cancel,
		session:      session{page: pageMenu},
		mode:         modeNormal,
		day:          record.Today(),
		summaryMonth: timeutil.MonthStart(timeNow()),
		calMonth:     timeutil.MonthStart(timeNow()),
		calDay:       timeNow().Day(),
		theme:        th,
	}
	m.peopleList = newItemList()
	m.notesList = newItemList()
	m.textsList = newItemList()
	return m
}

func newItemList() list.Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	l := list.New([]list.Item{}, d, 48, 16)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	return l
}

// Init loads initial data
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadData(), startWatchCmd(m.ctx, m.svc))
}

// messages
type errMsg struct{ err error }

type dataLoadedMsg struct {
	entries []record.Entry
	people  []record.Person
	notes   []record.Note
	texts   []record.Text
}

type toastExpiredMsg struct{ seq int }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct{ event store.Event }

type watchStoppedMsg struct{}

func (m *Model) loadData() tea.Cmd {
	svc := m.svc
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := svc.Entries()
		if err != nil {
			return errMsg{err}
		}
		people, err := svc.People()
		if err != nil {
			return errMsg{err}
		}
		notes, err := svc.Notes()
		if err != nil {
			return errMsg{err}
		}
		texts, err := svc.Texts()
		if err != nil {
			return errMsg{err}
		}
		return dataLoadedMsg{entries: entries, people: people, notes: notes, texts: texts}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) showToast(text string, cmds *[]tea.Cmd) {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	*cmds = append(*cmds, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	}))
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.setStatus("ERR: "+msg.err.Error(), true)
	case dataLoadedMsg:
		m.entries = msg.entries
		m.people = msg.people
		m.notes = msg.notes
		m.texts = msg.texts
		m.syncLists()
		m.syncEntryForm()
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("ERR: watch "+msg.err.Error(), true)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		cmds = append(cmds, m.loadData())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.stopWatch()
		m.cancel()
		*cmds = append(*cmds, tea.Quit)
		return
	}

	switch m.mode {
	case modeConfirm:
		m.handleConfirmKey(msg, cmds)
	case modeAlert:
		m.handleAlertKey(msg)
	case modeForm:
		m.handleFormKey(msg, cmds)
	case modeGoal:
		m.handleGoalKey(msg, cmds)
	case modeNoteDetail:
		m.handleNoteDetailKey(msg)
	case modeNormal:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.session.page {
	case pageMenu:
		m.handleMenuKey(msg, cmds)
	case pageEntry:
		if m.session.entryView == entryViewSummary {
			m.handleSummaryKey(msg, cmds)
		} else {
			m.handleEntryKey(msg, cmds)
		}
	case pageCalendar:
		m.handleCalendarKey(msg, cmds)
	case pagePeople:
		m.handlePeopleKey(msg, cmds)
	case pageTexts:
		m.handleTextsKey(msg, cmds)
	case pageNotes:
		m.handleNotesKey(msg, cmds)
	case pageCharts:
		m.handleChartsKey(msg, cmds)
	}
}

// navigate switches pages, consuming any pending calendar handoff when the
// entry page opens.
func (m *Model) navigate(to page) {
	m.session.page = to
	m.setStatus("", false)
	if to == pageEntry && m.svc != nil && m.svc.Persistence != nil {
		if day, ok := m.svc.Persistence.TakeSelectedDay(); ok {
			m.day = day
		}
		m.syncEntryForm()
	}
	if to == pageCalendar {
		m.calMonth = timeutil.MonthStart(m.day.Time())
		m.calDay = m.day.Time().Day()
	}
}

// syncEntryForm refreshes the edit fields from the stored entry of the
// current day. Unsaved edits are replaced; save is explicit.
func (m *Model) syncEntryForm() {
	m.form = entryForm{}
	for _, e := range m.entries {
		if e.Date == m.day {
			m.form = entryForm{Hours: e.Hours, Minutes: e.Minutes, Revisits: e.Revisits, Studies: e.Studies}
			return
		}
	}
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	width := m.termWidth - 4
	if width < 30 {
		width = 30
	}
	height := m.termHeight - 7
	if height < 5 {
		height = 5
	}
	m.peopleList.SetSize(width, height)
	m.notesList.SetSize(width, height)
	m.textsList.SetSize(width, height)
}

// Run launches the interactive TUI program.
func Run(svc *app.Service, t *i18n.Provider) error {
	if os.Getenv("FIELDLOG_DEBUG") != "" {
		f, err := tea.LogToFile("fieldlog-debug.log", "debug")
		if err == nil {
			defer f.Close()
		}
	}
	p := tea.NewProgram(New(svc, t), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
