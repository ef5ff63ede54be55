// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/webqa/internal/conversation"
	"github.com/jeranaias/webqa/internal/search"
	"github.com/jeranaias/webqa/internal/ui/components"
	"github.com/jeranaias/webqa/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

type focus int

const (
	focusQuery focus = iota
	focusAPIKey
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a chat Model.
type Options struct {
	// Provider answers queries. Defaults to a MockResolver.
	Provider search.Provider
	// Theme defaults to styles.NewTheme().
	Theme *styles.Theme
	// ThemeMode is the ui.theme value Theme was built from. A reload with a
	// different mode rebuilds the theme. Defaults to "auto".
	ThemeMode string
	// AutoDark is the terminal background detected at startup. A reload to
	// "auto" uses it instead of querying the terminal again.
	AutoDark bool
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// Context is the parent of every search context. Defaults to Background.
	Context context.Context

	ShowTimestamps bool
	Markdown       bool
	// APIKey pre-fills the settings field.
	APIKey string
	// Now stamps the greeting. Defaults to time.Now.
	Now func() time.Time
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view. Conversation behaviour
// lives in conversation.Update; Model translates keys into events and runs
// the effects it returns.
type Model struct {
	state conversation.State

	provider  search.Provider
	logger    *zap.Logger
	ctx       context.Context
	cancelMgr *cancelManager // Pointer to avoid copying mutex during Bubble Tea updates

	// Styling
	theme     *styles.Theme
	themeMode string
	autoDark  bool
	markdown  *components.MarkdownRenderer

	// Dimensions
	width  int
	height int

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	apiKey   textinput.Model
	spinner  spinner.Model
	help     help.Model
	keyMap   KeyMap
	focus    focus

	header   *components.Header
	settings *components.SettingsPanel
	messages *components.MessageList
	loading  *components.LoadingIndicator
	inputBar *components.InputBar
	footer   *components.Footer

	// lastRevision is the conversation revision last pushed to the viewport.
	lastRevision uint64
	// rendered is the width the viewport content was rendered at.
	rendered int

	showTimestamps bool
	useMarkdown    bool

	// Status
	statusMsg     string
	statusIsError bool
}

// New creates a new chat model.
func New(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Provider == nil {
		opts.Provider = search.NewMockResolver()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ThemeMode == "" {
		opts.ThemeMode = styles.ModeAuto
	}
	theme := opts.Theme
	autoDark := opts.AutoDark
	if opts.ThemeMode == styles.ModeAuto {
		autoDark = theme.IsDark
	}

	// Query field; the input bar draws its own prompt.
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = components.InputPlaceholder
	ti.CharLimit = 1024
	ti.Focus()

	keyField := textinput.New()
	keyField.Prompt = "> "
	keyField.Placeholder = components.APIKeyPlaceholder
	keyField.EchoMode = textinput.EchoPassword
	keyField.EchoCharacter = '*'
	keyField.CharLimit = 256
	keyField.SetValue(opts.APIKey)

	sp := spinner.New()
	sp.Spinner = styles.LineSpinner.Bubble()
	sp.Style = theme.Spinner

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	state := conversation.NewState(opts.Now())
	state.APIKey = opts.APIKey

	m := Model{
		state:          state,
		provider:       opts.Provider,
		logger:         opts.Logger,
		ctx:            opts.Context,
		cancelMgr:      newCancelManager(),
		theme:          theme,
		themeMode:      opts.ThemeMode,
		autoDark:       autoDark,
		viewport:       vp,
		input:          ti,
		apiKey:         keyField,
		spinner:        sp,
		help:           newHelp(theme),
		keyMap:         DefaultKeyMap(),
		header:         components.NewHeader(theme),
		settings:       components.NewSettingsPanel(theme),
		messages:       components.NewMessageList(theme),
		loading:        components.NewLoadingIndicator(theme),
		inputBar:       components.NewInputBar(theme),
		footer:         components.NewFooter(theme),
		showTimestamps: opts.ShowTimestamps,
		useMarkdown:    opts.Markdown,
		width:          80,
		height:         24,
	}
	m.header.Hint = m.keyMap.Settings.Help().Key + " settings"
	m.setMarkdown(opts.Markdown)
	m.layout()
	m.refreshContent(true)
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// View renders the model.
func (m Model) View() string {
	return m.renderChat()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// State returns the current conversation state.
func (m Model) State() conversation.State {
	return m.state
}

// SettingsFocused reports whether key presses go to the API key field.
func (m Model) SettingsFocused() bool {
	return m.focus == focusAPIKey
}

// Status returns the footer status line.
func (m Model) Status() string {
	return m.statusMsg
}

// helpContext picks which bindings the footer advertises.
func (m Model) helpContext() HelpContext {
	switch {
	case m.state.Loading:
		return ContextLoading
	case m.focus == focusAPIKey:
		return ContextSettings
	default:
		return ContextInput
	}
}

// =============================================================================
// LAYOUT
// =============================================================================

// layout sizes every component from the terminal size. The viewport gets
// whatever height the other pieces leave.
func (m *Model) layout() {
	w := m.width
	if w < 1 {
		w = 1
	}

	m.header.SetWidth(w)
	m.settings.SetWidth(w)
	m.inputBar.SetWidth(w)
	m.footer.SetWidth(w)
	m.help.Width = w

	m.input.Width = m.inputBar.FieldWidth() - 1
	// Settings box: border (2) + padding (2) + prompt (2) + cursor (1).
	m.apiKey.Width = w - 7
	if m.apiKey.Width < 1 {
		m.apiKey.Width = 1
	}

	m.syncComponents()

	vpHeight := m.height - m.chromeHeight()
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = w
	m.viewport.Height = vpHeight
}

// setMarkdown switches glamour rendering on or off.
func (m *Model) setMarkdown(on bool) {
	m.useMarkdown = on
	if on {
		m.markdown = components.NewMarkdownRenderer(components.StyleForTheme(m.theme.IsDark))
	} else {
		m.markdown = nil
	}
	m.rendered = 0
}

// refreshContent re-renders the message list into the viewport when the
// conversation or width changed. It scrolls to the bottom whenever the
// message log changed.
func (m *Model) refreshContent(force bool) {
	changed := m.state.Revision != m.lastRevision
	if !force && !changed && m.rendered == m.viewport.Width {
		return
	}

	m.messages.SetMessages(m.state.Messages())
	m.messages.SetWidth(m.viewport.Width)
	m.messages.ShowTimestamps = m.showTimestamps
	m.messages.Markdown = m.markdown
	m.viewport.SetContent(m.messages.View())
	m.rendered = m.viewport.Width

	if changed || force {
		m.viewport.GotoBottom()
	}
	m.lastRevision = m.state.Revision
}

// applyTheme swaps the theme and rebuilds every styled piece. State the
// components carry is restored from the model.
func (m *Model) applyTheme(t *styles.Theme) {
	hint := m.header.Hint
	showAll := m.help.ShowAll

	m.theme = t
	m.header = components.NewHeader(t)
	m.header.Hint = hint
	m.settings = components.NewSettingsPanel(t)
	m.messages = components.NewMessageList(t)
	m.loading = components.NewLoadingIndicator(t)
	m.inputBar = components.NewInputBar(t)
	m.footer = components.NewFooter(t)
	m.spinner.Style = t.Spinner
	m.help = newHelp(t)
	m.help.ShowAll = showAll

	m.setStatus(m.statusMsg, m.statusIsError)
	m.setMarkdown(m.useMarkdown)
}

func newHelp(theme *styles.Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.FullKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.FullDesc = theme.ShortcutDesc
	return h
}
