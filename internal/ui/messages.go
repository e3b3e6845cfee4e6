package ui

import (
	"metaseek/internal/api"
	"metaseek/internal/config"
)

// debounceElapsedMsg fires when a debounce timer for the given generation
// runs out; stale generations are ignored.
type debounceElapsedMsg struct {
	gen int
}

// searchResultMsg carries the outcome of a search fetch, tagged with the
// key it was issued for.
type searchResultMsg struct {
	key     string
	results []api.Result
	err     error
}

// suggestResultMsg carries the outcome of an autocomplete fetch.
type suggestResultMsg struct {
	key         string
	suggestions []string
	err         error
}

// answersResultMsg carries the outcome of a quick-answers fetch.
type answersResultMsg struct {
	key     string
	answers []api.QuickAnswer
	err     error
}

// pagerClosedMsg signals the result detail pager has exited.
type pagerClosedMsg struct {
	err error
}

// ConfigReloadedMsg is sent from the config file watcher when the config
// on disk changed.
type ConfigReloadedMsg struct {
	Config *config.Config
}
