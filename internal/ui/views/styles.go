package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Bar            lipgloss.Style
	Prompt         lipgloss.Style
	Trigger        lipgloss.Style
	TriggerActive  lipgloss.Style
	Suggestion     lipgloss.Style
	SuggestionSel  lipgloss.Style
	SuggestionHi   lipgloss.Style
	SuggestionDim  lipgloss.Style
	AnswerBox      lipgloss.Style
	AnswerTerm     lipgloss.Style
	AnswerSource   lipgloss.Style
	Title          lipgloss.Style
	TitleFocused   lipgloss.Style
	Link           lipgloss.Style
	Snippet        lipgloss.Style
	Breadcrumb     lipgloss.Style
	SiteName       lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	StatusLoading  lipgloss.Style
	DeepLink       lipgloss.Style
	PopoverBox     lipgloss.Style
	PopoverLabel   lipgloss.Style
	PopoverValue   lipgloss.Style
	PopoverCursor  lipgloss.Style
	HelpBox        lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	HelpSection    lipgloss.Style
	FocusIndicator lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Bar:           lipgloss.NewStyle().Bold(true),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Trigger:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TriggerActive: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Suggestion:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SuggestionSel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("238")).
			Bold(true),
		SuggestionHi:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SuggestionDim: lipgloss.NewStyle().Faint(true).Italic(true),
		AnswerBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		AnswerTerm:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		AnswerSource:  lipgloss.NewStyle().Faint(true).Italic(true),
		Title:         lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		TitleFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Snippet:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Breadcrumb:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SiteName:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		DeepLink:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		PopoverBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		PopoverLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PopoverValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		PopoverCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		HelpKey:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		HelpSection:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		FocusIndicator: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}
