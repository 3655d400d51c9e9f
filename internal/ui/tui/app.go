package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mspanwala8/pokestat/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenJobs
	screenRunning
	screenResult
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type jobItem struct {
	ref domain.JobRef
}

func (j jobItem) Title() string       { return j.ref.Name }
func (j jobItem) Description() string { return j.ref.Path }
func (j jobItem) FilterValue() string { return j.ref.Name }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model
	jobs list.Model

	spin    spinner.Model
	running bool
	runJob  string
	runPath string
	runCh   chan runDoneMsg

	report domain.Report
	runErr error

	toast string

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Run", "Run the default analysis job"},
		menuItem{"Jobs", "Browse jobs and run one"},
		menuItem{"Init workspace", "Create pokestat.yaml, configs, and jobs here"},
		menuItem{"Quit", "Exit Pokestat"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Pokestat"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	jobs := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	jobs.Title = "Jobs"
	jobs.SetShowStatusBar(false)
	jobs.SetFilteringEnabled(true)
	jobs.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		jobs:  jobs,
		spin:  sp,
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.jobs.SetSize(w-4, h-10)
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case jobsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, jobItem{ref: r})
		}
		m.jobs.SetItems(items)
		return m, nil

	case runDoneMsg:
		m.running = false
		m.runCh = nil
		m.report = msg.report
		m.runErr = msg.err
		m.scr = screenResult
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateLists(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a list filter is being typed, keys belong to the list.
	if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
		return m.updateLists(msg)
	}
	if m.scr == screenJobs && m.jobs.FilterState() == list.Filtering {
		return m.updateLists(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.scr == screenHome {
			return m, tea.Quit
		}
		if m.scr != screenRunning {
			m.scr = screenHome
			m.toast = ""
		}
		return m, nil

	case "enter":
		switch m.scr {
		case screenHome:
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			return m.openMenuItem(it)

		case screenJobs:
			it, ok := m.jobs.SelectedItem().(jobItem)
			if !ok {
				return m, nil
			}
			return m.startRun(it.ref.Name, it.ref.Path)
		}

	case "esc", "b":
		if m.scr != screenHome && m.scr != screenRunning {
			m.scr = screenHome
			m.toast = ""
			return m, nil
		}

	case "i":
		if m.scr == screenHome && !m.workspaceFound {
			return m.initWorkspaceHere()
		}

	case "r":
		if m.scr == screenResult {
			return m.startRun(m.runJob, m.runPath)
		}
	}

	return m.updateLists(msg)
}

func (m model) openMenuItem(it menuItem) (tea.Model, tea.Cmd) {
	switch {
	case strings.EqualFold(it.title, "Quit"):
		return m, tea.Quit

	case strings.EqualFold(it.title, "Run"):
		if !m.workspaceFound {
			m.toast = "No workspace found. Press i to initialize one here."
			return m, nil
		}
		return m.startRun("", "")

	case strings.EqualFold(it.title, "Jobs"):
		if !m.workspaceFound {
			m.toast = "No workspace found. Press i to initialize one here."
			return m, nil
		}
		m.scr = screenJobs
		return m, cmdLoadJobs(m.workspaceRoot)

	case strings.EqualFold(it.title, "Init workspace"):
		return m.initWorkspaceHere()
	}
	return m, nil
}

func (m model) initWorkspaceHere() (tea.Model, tea.Cmd) {
	wd, err := os.Getwd()
	if err != nil {
		m.toast = "Unexpected error (see logs)"
		return m, nil
	}
	return m, cmdInitWorkspaceHere(m.deps, wd)
}

func (m model) startRun(jobName, jobPath string) (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}

	ch, cmd := startRunAsync(m.workspaceRoot, jobName, jobPath, m.deps.Logger, m.deps.Debug)
	m.runCh = ch
	m.running = true
	m.runJob = jobName
	m.runPath = jobPath
	m.scr = screenRunning
	m.toast = ""
	return m, tea.Batch(cmd, m.spin.Tick)
}

func (m model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenJobs:
		m.jobs, cmd = m.jobs.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Pokestat") + "\n" +
		m.theme.Subtitle.Render("Config-driven analysis of PokeAPI listings") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nPress i to initialize one in the current directory.",
		)
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Warn.Render(clampString(m.toast, 100))
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenJobs:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • esc/b back • q home")
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + m.theme.Card.Render(m.jobs.View()) + "\n" + help)

	case screenRunning:
		label := m.runJob
		if label == "" {
			label = "default job"
		}
		card := m.theme.Card.Render(m.spin.View() + " Running " + label + "…")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card)

	case screenResult:
		var body string
		if m.runErr != nil {
			body = m.theme.Title.Render("Run failed") + "\n\n" + userMessage(m.runErr)
		} else {
			body = renderReport(m.report)
		}
		help := m.theme.Help.Render("r rerun • esc/b back • q home")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(body) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
