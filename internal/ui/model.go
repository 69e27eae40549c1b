package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ghbrowse/internal/browser"
	"ghbrowse/internal/config"
	"ghbrowse/internal/github"
)

// focusArea tracks which part of the screen receives keystrokes.
type focusArea int

const (
	focusList focusArea = iota
	focusCount
	focusSearch
)

// Model owns all browsing state. It is a value; Update returns the modified
// copy, so state only changes through the message loop.
type Model struct {
	fetcher Fetcher
	cfg     *config.Config

	users   []github.UserSummary
	cursor  *browser.Cursor
	details *browser.DetailCache

	countInput  textinput.Model
	searchInput textinput.Model
	spin        spinner.Model
	focus       focusArea
	sel         int

	// debounced is the only value driving the filter; searchSeq invalidates
	// pending debounce ticks on every keystroke.
	debounced string
	searchSeq int

	// fetchGen ties list results to the load that requested them; cancelLoad
	// aborts the in-flight list request when a new one supersedes it.
	fetchGen   int
	cancelLoad context.CancelFunc

	loading     bool
	loadingMore bool

	status   string
	statusID int
	errMsg   string

	width  int
	height int

	openURLFn func(string) error
	copyFn    func(string) error
}

// NewModel creates the browsing model with an empty list.
func NewModel(fetcher Fetcher, cfg *config.Config) Model {
	ci := textinput.New()
	ci.Placeholder = fmt.Sprintf("%d", cfg.PerPage)
	ci.CharLimit = 6
	ci.Width = 6
	ci.Prompt = ""

	si := textinput.New()
	si.Placeholder = "filter by username"
	si.CharLimit = 64
	si.Width = 24
	si.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		fetcher:     fetcher,
		cfg:         cfg,
		cursor:      browser.NewCursor(),
		details:     browser.NewDetailCache(cfg.DetailTTL()),
		countInput:  ci,
		searchInput: si,
		spin:        sp,
		openURLFn:   openURLInBrowser,
		copyFn:      copyToClipboard,
	}
}

// initMsg kicks off the initial replace load through the regular Update
// path so the fetch generation and loading flags stay consistent.
type initMsg struct{}

// Init triggers the initial replace load.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		return m.startLoad(modeReplace)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading && !m.loadingMore {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case usersLoadedMsg:
		if msg.gen != m.fetchGen {
			// A newer load superseded this one
			return m, nil
		}
		m.loading = false
		m.loadingMore = false
		if m.cancelLoad != nil {
			m.cancelLoad()
			m.cancelLoad = nil
		}
		if msg.mode == modeReplace {
			m.users = msg.users
			m.sel = 0
		} else {
			m.users = append(m.users, msg.users...)
		}
		m.cursor.Advance(msg.users)
		m.clampSel()
		if msg.mode == modeAppend && len(msg.users) == 0 {
			return m.setStatus("No more users")
		}
		return m.setStatus(fmt.Sprintf("Loaded %d users", len(msg.users)))

	case usersErrMsg:
		if msg.gen != m.fetchGen || errors.Is(msg.err, context.Canceled) {
			// Superseded or cancelled loads never surface
			return m, nil
		}
		m.loading = false
		m.loadingMore = false
		if m.cancelLoad != nil {
			m.cancelLoad()
			m.cancelLoad = nil
		}
		if msg.mode == modeReplace {
			m.users = nil
			m.sel = 0
		}
		m.errMsg = msg.err.Error()
		return m, nil

	case detailLoadedMsg:
		m.details.Resolve(msg.login, msg.detail)
		return m, nil

	case detailErrMsg:
		m.details.Fail(msg.login)
		return m.setStatus("Could not load details for " + msg.login)

	case searchTickMsg:
		if msg.seq != m.searchSeq {
			// Superseded by a later keystroke
			return m, nil
		}
		m.debounced = m.searchInput.Value()
		m.clampSel()
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case actionResultMsg:
		if msg.err != nil {
			return m.setStatus(msg.err.Error())
		}
		return m.setStatus(msg.status)

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.countInput.Placeholder = fmt.Sprintf("%d", m.cfg.PerPage)
		return m.setStatus("Config reloaded")
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.teardown()
		return m, tea.Quit
	}

	switch m.focus {
	case focusCount:
		return m.handleCountKey(msg)
	case focusSearch:
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		m.teardown()
		return m, tea.Quit
	case "up", "k":
		if m.sel > 0 {
			m.sel--
		}
		return m, nil
	case "down", "j":
		if m.sel < len(m.visible())-1 {
			m.sel++
		}
		return m, nil
	case "l", "r":
		return m.startLoad(modeReplace)
	case "n":
		return m.startLoad(modeAppend)
	case "c":
		m.focus = focusCount
		m.searchInput.Blur()
		return m, m.countInput.Focus()
	case "/":
		m.focus = focusSearch
		m.countInput.Blur()
		return m, m.searchInput.Focus()
	case "esc", "C":
		return m.clearSearch()
	case "enter":
		return m.loadSelectedDetails()
	case "o":
		if u, ok := m.selected(); ok {
			return m, openURLCmd(u.HTMLURL, m.openURLFn)
		}
		return m, nil
	case "g":
		if u, ok := m.selected(); ok {
			return m, openURLCmd(u.ReposURL, m.openURLFn)
		}
		return m, nil
	case "y":
		if u, ok := m.selected(); ok {
			return m, copyLoginCmd(u.Login, m.copyFn)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleCountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.focus = focusList
		m.countInput.Blur()
		return m.startLoad(modeReplace)
	case "esc":
		m.focus = focusList
		m.countInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.countInput, cmd = m.countInput.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.focus = focusList
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() == before {
		return m, cmd
	}

	// The raw text shows immediately; the filter follows after the input has
	// been stable for the debounce interval. Each keystroke resets the timer
	// by invalidating the previous sequence number.
	m.searchSeq++
	return m, tea.Batch(cmd, searchTickCmd(m.searchSeq, m.cfg.Debounce()))
}

// startLoad begins a list fetch, cancelling any in-flight one. At most one
// list request can be meaningful at a time.
func (m Model) startLoad(mode loadMode) (tea.Model, tea.Cmd) {
	if m.cancelLoad != nil {
		m.cancelLoad()
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RequestTimeout())
	m.cancelLoad = cancel
	m.fetchGen++

	perPage := browser.NormalizeCount(m.countInput.Value())
	var since int
	if mode == modeAppend {
		since = m.cursor.AppendSeed()
		m.loadingMore = true
	} else {
		since = m.cursor.ReplaceSeed()
		m.loading = true
	}
	m.errMsg = ""

	return m, tea.Batch(
		loadUsersCmd(ctx, m.fetcher, m.fetchGen, mode, since, perPage),
		m.spin.Tick,
	)
}

func (m Model) loadSelectedDetails() (tea.Model, tea.Cmd) {
	u, ok := m.selected()
	if !ok {
		return m, nil
	}
	if !m.details.Start(u.Login) {
		// Fresh in cache or already in flight
		return m, nil
	}
	return m, loadDetailCmd(m.fetcher, u.Login, m.cfg.RequestTimeout())
}

func (m Model) clearSearch() (tea.Model, tea.Cmd) {
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.focus = focusList
	// Invalidate any pending debounce tick and apply immediately
	m.searchSeq++
	m.debounced = ""
	m.clampSel()
	return m, nil
}

func (m Model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, clearStatusCmd(m.statusID, statusTTL)
}

// teardown cancels the in-flight list request before the program exits.
// Pending debounce ticks die with the event loop; stale sequence numbers
// make them harmless regardless.
func (m *Model) teardown() {
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
}

// visible applies the debounced filter to the working list.
func (m Model) visible() []github.UserSummary {
	return browser.Filter(m.users, m.debounced)
}

func (m Model) selected() (github.UserSummary, bool) {
	visible := m.visible()
	if m.sel < 0 || m.sel >= len(visible) {
		return github.UserSummary{}, false
	}
	return visible[m.sel], true
}

func (m *Model) clampSel() {
	if n := len(m.visible()); m.sel >= n {
		m.sel = n - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GitHub Profile Browser"))
	b.WriteString("\n\n")

	b.WriteString(inputLabelStyle.Render("count:"))
	b.WriteString(" ")
	b.WriteString(m.countInput.View())
	b.WriteString("   ")
	b.WriteString(inputLabelStyle.Render("search:"))
	b.WriteString(" ")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View())
		b.WriteString(" Loading users...\n")
	case len(m.users) == 0 && m.errMsg == "":
		b.WriteString("No users loaded. Press l to load.\n")
	default:
		m.renderList(&b)
	}

	if m.loadingMore {
		b.WriteString(m.spin.View())
		b.WriteString(" Loading more...\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k: move | l: load | n: load more | c: count | /: search | esc: clear | enter: details | o: profile | g: repos | y: copy | q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderList(b *strings.Builder) {
	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString("No users match the filter.\n")
		return
	}

	for i, u := range visible {
		marker := "  "
		line := fmt.Sprintf("%3d. %s (id %d)", i+1, loginStyle.Render(u.Login), u.ID)
		if i == m.sel && m.focus == focusList {
			marker = selectedStyle.Render("> ")
			line = selectedStyle.Render(fmt.Sprintf("%3d. %s (id %d)", i+1, u.Login, u.ID))
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")

		if entry := m.details.Get(u.Login); entry != nil {
			m.renderDetail(b, entry)
		}
	}
}

func (m Model) renderDetail(b *strings.Builder, entry *browser.DetailEntry) {
	switch entry.Status {
	case browser.StatusLoading:
		b.WriteString(detailStyle.Render("details loading..."))
	case browser.StatusError:
		b.WriteString(detailStyle.Render("details unavailable"))
	case browser.StatusReady:
		d := entry.Detail
		line := fmt.Sprintf("followers %d | following %d", d.Followers, d.Following)
		if d.Location != "" {
			line += " | " + d.Location
		}
		if d.Company != "" {
			line += " | " + d.Company
		}
		b.WriteString(detailStyle.Render(line))
		if d.Bio != "" {
			b.WriteString("\n")
			b.WriteString(detailStyle.Render(d.Bio))
		}
	}
	b.WriteString("\n")
}
