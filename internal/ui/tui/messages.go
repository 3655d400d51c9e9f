package tui

import "github.com/mspanwala8/pokestat/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type jobsLoadedMsg struct {
	root string
	refs []domain.JobRef
	err  error
}

type runDoneMsg struct {
	report domain.Report
	err    error
}
