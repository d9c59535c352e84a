package dashboard

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/alexisbeaulieu97/atlas/internal/chat"
	"github.com/alexisbeaulieu97/atlas/internal/config"
	"github.com/alexisbeaulieu97/atlas/internal/logger"
	"github.com/alexisbeaulieu97/atlas/internal/navigation"
	"github.com/alexisbeaulieu97/atlas/internal/search"
	"github.com/alexisbeaulieu97/atlas/internal/telemetry"
	"github.com/alexisbeaulieu97/atlas/internal/tui/components"
	"github.com/alexisbeaulieu97/atlas/internal/widgets"
)

const (
	scopeTabs     = "tabs"
	scopeSections = "sections"
	paletteLimit  = 5
	gridColumns   = 3
)

// Deps wires the dashboard to its collaborators. Only Config is required.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger
	// Store receives the active section index; nil disables recording.
	Store navigation.IndexStore
	// Tracer records navigation spans; nil disables them.
	Tracer oteltrace.Tracer
	// Widgets resolves home tiles; nil shows the configured static values.
	Widgets WidgetLoader
	// InitialSection overrides the first section when it is configured.
	InitialSection navigation.Panel
	// Conversation replaces the fresh chat seeded from config.
	Conversation *chat.Conversation
}

// Model is the Bubble Tea model for the Atlas dashboard.
type Model struct {
	cfg *config.Config
	log *logger.Logger

	tabs     *navigation.Controller
	sections *navigation.Controller
	// sectionOrder lists the configured sections for j/k movement.
	sectionOrder []navigation.Panel
	counter      *navigation.TransitionCounter
	seen         int
	unsubs       []func()

	tabBar    components.TabBar
	indicator components.SectionIndicator
	dots      components.Dots
	grid      components.AppGrid
	titles    map[navigation.Panel]string
	bodies    map[navigation.Panel]string

	tiles          []widgets.Tile
	loadWidgets    WidgetLoader
	loadingWidgets bool

	conv    *chat.Conversation
	compose textinput.Model

	index          *search.Index
	palette        textinput.Model
	paletteResults []search.Result

	mode       Mode
	gridCursor int
	keys       keyMap
	help       help.Model
	spinner    spinner.Model

	showError bool
	errorMsg  string

	width  int
	height int
}

// New builds the dashboard and registers its navigation observers.
func New(deps Deps) (Model, error) {
	cfg := deps.Config
	if cfg == nil {
		return Model{}, errors.New("dashboard: config is required")
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	tabs, err := navigation.New(navigation.Panel(cfg.Navigation.InitialPanel),
		navigation.WithScope(scopeTabs),
		navigation.WithMaxHistory(cfg.Navigation.MaxHistory),
		navigation.WithLogger(log),
	)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:         cfg,
		log:         log,
		tabs:        tabs,
		counter:     &navigation.TransitionCounter{},
		titles:      make(map[navigation.Panel]string),
		bodies:      make(map[navigation.Panel]string),
		loadWidgets: deps.Widgets,
		index:       search.NewIndex(cfg),
		keys:        defaultKeyMap(),
		help:        help.New(),
		width:       80,
		height:      24,
	}

	tabItems := make([]components.Item, 0, len(cfg.Tabs))
	for _, tab := range cfg.Tabs {
		p := navigation.Panel(tab.ID)
		tabItems = append(tabItems, components.Item{Panel: p, Title: tab.Title, Icon: tab.Icon})
		m.titles[p] = tab.Title
	}
	m.tabBar = components.NewTabBar(tabItems)

	m.unsubs = append(m.unsubs,
		tabs.Subscribe(navigation.LogObserver(log, scopeTabs)),
		tabs.Subscribe(m.counter.Observe),
	)
	if deps.Tracer != nil {
		m.unsubs = append(m.unsubs, tabs.Subscribe(telemetry.NavigationObserver(deps.Tracer, scopeTabs)))
	}

	if len(cfg.Sections) > 0 {
		sectionItems := make([]components.Item, 0, len(cfg.Sections))
		for _, s := range cfg.Sections {
			p := navigation.Panel(s.ID)
			sectionItems = append(sectionItems, components.Item{Panel: p, Title: s.Title})
			m.bodies[p] = s.Body
		}
		order := components.Order(sectionItems)
		m.sectionOrder = order

		start := order[0]
		if navigation.IndexOf(order, deps.InitialSection) >= 0 {
			start = deps.InitialSection
		}
		m.sections, err = navigation.New(start,
			navigation.WithScope(scopeSections),
			navigation.WithMaxHistory(cfg.Navigation.MaxHistory),
			navigation.WithLogger(log),
		)
		if err != nil {
			return Model{}, err
		}
		m.indicator = components.NewSectionIndicator(sectionItems)
		m.dots = components.NewDots(order)

		m.unsubs = append(m.unsubs, m.sections.Subscribe(navigation.LogObserver(log, scopeSections)))
		if deps.Store != nil {
			m.unsubs = append(m.unsubs, m.sections.Subscribe(navigation.SectionRecorder(context.Background(), deps.Store, order)))
		}
		if deps.Tracer != nil {
			m.unsubs = append(m.unsubs, m.sections.Subscribe(telemetry.NavigationObserver(deps.Tracer, scopeSections)))
		}
	}

	m.grid = components.NewAppGrid(cfg.AppGrid, gridColumns)

	for _, w := range cfg.Widgets {
		m.tiles = append(m.tiles, widgets.Tile{ID: w.ID, Title: w.Title, Icon: w.Icon, Value: w.Value, Caption: w.Caption, Trend: w.Trend})
	}
	m.loadingWidgets = m.loadWidgets != nil

	m.conv = deps.Conversation
	if m.conv == nil {
		m.conv = chat.New(cfg.Chat)
	}
	m.compose = textinput.New()
	m.compose.Placeholder = "Write a message…"
	m.compose.CharLimit = 500

	m.palette = textinput.New()
	m.palette.Placeholder = "Jump to…"
	m.palette.Prompt = "/ "

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = spinnerStyle

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadWidgetsCmd(m.loadWidgets))
}

// Close detaches every observer registered by New.
func (m Model) Close() {
	for _, unsubscribe := range m.unsubs {
		unsubscribe()
	}
}

// Tabs returns the main tab controller.
func (m Model) Tabs() *navigation.Controller { return m.tabs }

// Sections returns the section controller, nil when no sections are configured.
func (m Model) Sections() *navigation.Controller { return m.sections }

// Conversation returns the chat shown on the chat tab.
func (m Model) Conversation() *chat.Conversation { return m.conv }

// Mode returns the current key routing mode.
func (m Model) Mode() Mode { return m.mode }

// Transitions returns the number of committed tab changes.
func (m Model) Transitions() int { return m.counter.Count() }

func (m Model) activeTab() navigation.Panel {
	return m.tabs.Active()
}

func (m Model) titleOf(p navigation.Panel) string {
	return m.titles[p]
}

// fresh reports whether the active tab was entered by the latest key press.
func (m Model) fresh() bool {
	return m.counter.Count() > m.seen
}

// navigateToResult moves the dashboard to a palette result.
func (m *Model) navigateToResult(r search.Result) {
	switch r.Kind {
	case search.KindSection:
		m.tabs.NavigateTo(navigation.Panel(config.SectionsTab))
		if m.sections != nil {
			m.sections.NavigateTo(navigation.Panel(r.Target))
		}
	default:
		m.tabs.NavigateTo(navigation.Panel(r.Target))
	}
}
