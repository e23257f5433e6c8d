// Interactive phone browser built on bubbletea.
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"phonedex/cmd/phonedex/ui"
	"phonedex/internal/catalog"
	"phonedex/internal/config"
	"phonedex/internal/enrich"
	"phonedex/internal/session"
)

// focus decides where keystrokes go.
type focus int

const (
	focusList focus = iota
	focusSearch
	focusChat
	focusCompareAdd
)

type exchange struct {
	id      string
	role    string // "user" or "assistant"
	content string
	time    time.Time
}

// Messages for tea updates.
type (
	searchDoneMsg struct {
		query   string
		outcome session.SearchOutcome
	}
	brandDoneMsg struct {
		brand   string
		fetched int
	}
	categoryDoneMsg struct {
		label   string
		fetched int
	}
	loadMoreDoneMsg struct {
		outcome session.LoadOutcome
	}
	refreshDoneMsg struct {
		updated int
	}
	adviceDoneMsg struct {
		id     string
		answer string
	}
	compareAddDoneMsg struct {
		query string
		err   error
	}
)

type appModel struct {
	// UI components
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	styles    ui.Styles
	renderer  *glamour.TermRenderer

	// State
	sess        *session.Session
	cfg         config.Config
	log         *zap.Logger
	focus       focus
	chatOpen    bool
	history     []exchange
	cursor      int
	brandIdx    int // -1 when no brand chip is highlighted
	compareFull bool
	isLoading   bool
	status      string
	width       int
	height      int
	ready       bool
}

func initApp(cfg config.Config, log *zap.Logger) appModel {
	styles := ui.DefaultStyles()
	if cfg.Theme == "dark" {
		styles = ui.NewStyles(ui.DarkTheme())
	}

	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "│ "
	ti.CharLimit = 256
	ti.Width = 60
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)
	vp.SetContent("")

	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(72),
		)
	}

	client := enrich.NewClient(context.Background(), cfg.Gemini.APIKey, enrich.Options{
		Model:       cfg.Gemini.Model,
		AdviceModel: cfg.Gemini.AdviceModel,
		Timeout:     cfg.GeminiTimeout(),
	}, log)
	var enricher session.Enricher
	if client.Enabled() {
		enricher = client
	}

	sess := session.New(catalog.SeedPhones(), enricher, cfg.Browse, log)

	return appModel{
		textinput: ti,
		viewport:  vp,
		spinner:   sp,
		styles:    styles,
		renderer:  renderer,
		sess:      sess,
		cfg:       cfg,
		log:       log,
		focus:     focusList,
		brandIdx:  -1,
		history:   []exchange{},
	}
}

const (
	searchPlaceholder  = "Search phones... (Enter to search, Esc to cancel)"
	chatPlaceholder    = "Ask the assistant... (Enter to send, Esc to close)"
	comparePlaceholder = "Add a phone to compare... (Enter to add, Esc to cancel)"
)

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focus == focusList {
			return m.handleListKey(msg)
		}
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.focus = focusList
			m.chatOpen = false
			m.textinput.Reset()
			m.textinput.Blur()
			return m, nil
		case tea.KeyEnter:
			if !m.isLoading {
				return m.handleSubmit()
			}
		}
		if !m.isLoading {
			m.textinput, tiCmd = m.textinput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 4
		footerHeight := 3
		inputHeight := 3
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight - inputHeight
		m.textinput.Width = msg.Width - 6
		if !m.ready {
			m.ready = true
		}
		if m.width > 16 {
			m.renderer, _ = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(m.width-8),
			)
		}
		m.syncViewport()

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
		}

	case searchDoneMsg:
		m.isLoading = false
		m.cursor = 0
		switch msg.outcome {
		case session.SearchFoundLocal:
			m.status = m.styles.Success.Render("Found in catalog")
		case session.SearchFetched:
			m.status = m.styles.Success.Render("Fetched details for \"" + msg.query + "\"")
		case session.SearchFetchedRelated:
			m.status = m.styles.Info.Render("Showing phones related to \"" + msg.query + "\"")
		case session.SearchNotFound:
			m.status = m.styles.Warning.Render("Could not find \"" + msg.query + "\". Try the exact model name.")
		}
		m.syncViewport()

	case brandDoneMsg:
		m.isLoading = false
		m.cursor = 0
		if msg.brand == "" {
			m.status = m.styles.Muted.Render("Brand filter cleared")
		} else if msg.fetched > 0 {
			m.status = m.styles.Success.Render(fmt.Sprintf("Loaded %d more %s phones", msg.fetched, msg.brand))
		} else {
			m.status = m.styles.Muted.Render("Filtering by " + msg.brand)
		}
		m.syncViewport()

	case categoryDoneMsg:
		m.isLoading = false
		m.cursor = 0
		if msg.fetched > 0 {
			m.status = m.styles.Success.Render(fmt.Sprintf("Loaded %d %s phones", msg.fetched, msg.label))
		} else {
			m.status = m.styles.Muted.Render("Nothing new for " + msg.label)
		}
		m.syncViewport()

	case loadMoreDoneMsg:
		m.isLoading = false
		switch msg.outcome {
		case session.LoadExhausted:
			m.status = m.styles.Muted.Render("No more phones to load")
		case session.LoadFetched:
			m.status = m.styles.Success.Render("Loaded more popular phones")
		default:
			m.status = ""
		}
		m.syncViewport()

	case refreshDoneMsg:
		m.isLoading = false
		m.status = m.styles.Success.Render(fmt.Sprintf("Refreshed %d phones with live details", msg.updated))
		m.syncViewport()

	case adviceDoneMsg:
		m.isLoading = false
		for i := range m.history {
			if m.history[i].id == msg.id {
				m.history[i].content = msg.answer
				m.history[i].time = time.Now()
				break
			}
		}
		m.syncViewport()

	case compareAddDoneMsg:
		m.isLoading = false
		switch {
		case msg.err == nil:
			m.status = m.styles.Success.Render("Added \"" + msg.query + "\" to the comparison")
		case msg.err == session.ErrNoMatch:
			m.status = m.styles.Warning.Render("Could not find \"" + msg.query + "\"")
		case msg.err == session.ErrCompareFull:
			m.status = m.styles.Warning.Render(fmt.Sprintf("You can compare up to %d phones", catalog.CompareSelectionCap))
		default:
			m.status = m.styles.Error.Render(msg.err.Error())
		}
		m.syncViewport()
	}

	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

// handleListKey handles keystrokes while no text input has focus.
// While a fetch is in flight its goroutine owns the session, so every
// session-touching key is dropped until the result message lands; only
// quitting and viewport scrolling stay live.
func (m appModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.isLoading {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "down", "pgup", "pgdown", "j", "k":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.chatOpen {
			m.chatOpen = false
			m.syncViewport()
			return m, nil
		}
		if m.sess.Router.Current() != session.ViewHome {
			m.sess.Router.Back()
			m.cursor = 0
			m.syncViewport()
			return m, nil
		}
		return m, tea.Quit

	case "/":
		m.focus = focusSearch
		m.textinput.Placeholder = searchPlaceholder
		m.textinput.Reset()
		return m, m.textinput.Focus()

	case "?":
		m.chatOpen = true
		m.focus = focusChat
		m.textinput.Placeholder = chatPlaceholder
		m.textinput.Reset()
		m.syncViewport()
		return m, m.textinput.Focus()

	case "up", "k":
		return m.moveCursor(-1), nil
	case "down", "j":
		return m.moveCursor(1), nil

	case "enter":
		if m.sess.Router.Current() == session.ViewHome {
			if p, ok := m.phoneAtCursor(); ok {
				m.sess.Router.ViewDetails(p)
				m.viewport.GotoTop()
				m.syncViewport()
			}
		}
		return m, nil

	case " ":
		if m.sess.Router.Current() == session.ViewHome {
			if p, ok := m.phoneAtCursor(); ok {
				if err := m.sess.ToggleSelect(p); err != nil {
					m.status = m.styles.Warning.Render(fmt.Sprintf("Pick at most %d phones to compare", catalog.BrowseSelectionCap))
				} else {
					m.status = ""
				}
				m.syncViewport()
			}
		}
		return m, nil

	case "c":
		switch m.sess.Router.Current() {
		case session.ViewHome:
			if err := m.sess.CompareNow(); err != nil {
				m.status = m.styles.Warning.Render("Select at least 2 phones first")
			} else {
				m.status = ""
				m.viewport.GotoTop()
			}
			m.syncViewport()
		case session.ViewDetails:
			if p, ok := m.sess.Router.Detail(); ok {
				m.sess.CompareFrom(p)
				m.viewport.GotoTop()
				m.syncViewport()
			}
		}
		return m, nil

	case "a":
		if m.sess.Router.Current() == session.ViewCompare {
			m.focus = focusCompareAdd
			m.textinput.Placeholder = comparePlaceholder
			m.textinput.Reset()
			return m, m.textinput.Focus()
		}
		return m, nil

	case "1", "2", "3", "4":
		if m.sess.Router.Current() == session.ViewCompare {
			list := m.sess.Compare().Phones()
			idx := int(msg.String()[0] - '1')
			if idx < len(list) {
				if err := m.sess.RemoveFromCompare(list[idx].ID); err != nil {
					m.status = m.styles.Warning.Render("Keep at least one phone in the comparison")
				} else {
					m.status = ""
				}
				m.syncViewport()
			}
			return m, nil
		}
		if m.sess.Router.Current() == session.ViewHome {
			return m.browseCategory(msg.String())
		}
		return m, nil

	case "b":
		if m.sess.Router.Current() == session.ViewHome {
			return m.cycleBrand()
		}
		return m, nil

	case "+", "=":
		if m.sess.Router.Current() == session.ViewHome {
			m.sess.SetCeiling(m.sess.Ceiling() + m.cfg.Browse.PriceStep)
			m.cursor = 0
			m.syncViewport()
		}
		return m, nil

	case "-":
		if m.sess.Router.Current() == session.ViewHome {
			m.sess.SetCeiling(m.sess.Ceiling() - m.cfg.Browse.PriceStep)
			m.cursor = 0
			m.syncViewport()
		}
		return m, nil

	case "0":
		if m.sess.Router.Current() == session.ViewHome {
			m.sess.ResetFilters()
			m.brandIdx = -1
			m.cursor = 0
			m.status = m.styles.Muted.Render("Filters reset")
			m.syncViewport()
		}
		return m, nil

	case "m":
		if m.sess.Router.Current() == session.ViewHome {
			m.isLoading = true
			m.status = ""
			sess := m.sess
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
				return loadMoreDoneMsg{outcome: sess.LoadMore(context.Background())}
			})
		}
		return m, nil

	case "r":
		if m.sess.Router.Current() == session.ViewHome {
			m.isLoading = true
			m.status = ""
			sess := m.sess
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
				return refreshDoneMsg{updated: sess.RefreshVisible(context.Background())}
			})
		}
		return m, nil

	case "s":
		if m.sess.Router.Current() == session.ViewCompare {
			m.compareFull = !m.compareFull
			m.syncViewport()
		}
		return m, nil

	case "h":
		m.sess.Router.GoHome()
		m.cursor = 0
		m.syncViewport()
		return m, nil
	}

	// Scrollback for detail and compare pages.
	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, vpCmd
}

func (m appModel) moveCursor(delta int) appModel {
	if m.sess.Router.Current() != session.ViewHome {
		return m
	}
	visible := len(m.sess.Visible())
	if visible == 0 {
		return m
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	m.syncViewport()
	return m
}

func (m appModel) phoneAtCursor() (catalog.Phone, bool) {
	visible := m.sess.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return catalog.Phone{}, false
	}
	return visible[m.cursor], true
}

var categoryKeys = map[string]struct {
	cat   session.Category
	label string
}{
	"1": {session.CategoryLatest, "latest"},
	"2": {session.CategoryUpcoming, "upcoming"},
	"3": {session.Category5G, "5G"},
	"4": {session.CategoryCamera, "camera"},
}

func (m appModel) browseCategory(key string) (tea.Model, tea.Cmd) {
	entry, ok := categoryKeys[key]
	if !ok {
		return m, nil
	}
	m.isLoading = true
	m.status = ""
	sess := m.sess
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		n := sess.BrowseCategory(context.Background(), entry.cat)
		return categoryDoneMsg{label: entry.label, fetched: n}
	})
}

// cycleBrand steps through the brand chips; past the last chip the filter
// clears.
func (m appModel) cycleBrand() (tea.Model, tea.Cmd) {
	brands := catalog.SeedBrands()
	if len(brands) == 0 {
		return m, nil
	}
	m.brandIdx++
	if m.brandIdx >= len(brands) {
		m.brandIdx = -1
		if active := m.sess.Brand(); active != "" {
			m.sess.SelectBrand(context.Background(), active) // toggle off
		}
		m.cursor = 0
		m.status = m.styles.Muted.Render("Brand filter cleared")
		m.syncViewport()
		return m, nil
	}

	name := brands[m.brandIdx].Name
	m.isLoading = true
	m.cursor = 0
	sess := m.sess
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		// SelectBrand toggles, so clear any previous brand first.
		if active := sess.Brand(); active != "" && active != name {
			sess.SelectBrand(context.Background(), active)
		}
		n := sess.SelectBrand(context.Background(), name)
		return brandDoneMsg{brand: sess.Brand(), fetched: n}
	})
}

// handleSubmit routes Enter based on which input has focus.
func (m appModel) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" {
		return m, nil
	}

	switch m.focus {
	case focusSearch:
		m.focus = focusList
		m.textinput.Reset()
		m.textinput.Blur()
		m.isLoading = true
		m.status = ""
		sess := m.sess
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			outcome, err := sess.Search(context.Background(), input)
			if err != nil {
				outcome = session.SearchNotFound
			}
			return searchDoneMsg{query: input, outcome: outcome}
		})

	case focusChat:
		// The reply is appended as a pending exchange up front and filled
		// in by ID, so the answer always lands on the question it belongs to.
		replyID := uuid.NewString()
		m.history = append(m.history,
			exchange{id: uuid.NewString(), role: "user", content: input, time: time.Now()},
			exchange{id: replyID, role: "assistant", time: time.Now()},
		)
		m.textinput.Reset()
		m.isLoading = true
		m.syncViewport()
		sess := m.sess
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			return adviceDoneMsg{id: replyID, answer: sess.Advice(context.Background(), input)}
		})

	case focusCompareAdd:
		m.focus = focusList
		m.textinput.Reset()
		m.textinput.Blur()
		m.isLoading = true
		sess := m.sess
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			return compareAddDoneMsg{query: input, err: sess.AddToCompare(context.Background(), input)}
		})
	}
	return m, nil
}

// syncViewport re-renders the current page into the scroll viewport.
func (m *appModel) syncViewport() {
	var body string
	switch m.sess.Router.Current() {
	case session.ViewDetails:
		body = m.renderDetail()
	case session.ViewCompare:
		body = m.renderCompare()
	default:
		body = m.renderHome()
	}
	if m.chatOpen {
		body += "\n" + m.renderChat()
	}
	m.viewport.SetContent(body)
}

func (m appModel) View() string {
	if !m.ready {
		return "Loading phonedex..."
	}

	header := m.renderHeader()
	content := m.styles.Content.Render(m.viewport.View())

	if m.isLoading {
		content += "\n" + m.styles.Spinner.Render(m.spinner.View()) + " Working..."
	}
	if m.status != "" {
		content += "\n" + m.status
	}

	var inputArea string
	if m.focus != focusList {
		inputStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.styles.Theme.Accent).
			Padding(0, 1)
		inputArea = inputStyle.Render(m.textinput.View())
	}

	footer := m.renderFooter()

	if inputArea == "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, inputArea, footer)
}

func runBrowser(cfg config.Config, log *zap.Logger) error {
	p := tea.NewProgram(
		initApp(cfg, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
