package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopoverRenderer draws the filter popover and the help popup.
type PopoverRenderer struct {
	styles *Styles
}

func NewPopoverRenderer(styles *Styles) *PopoverRenderer {
	return &PopoverRenderer{styles: styles}
}

// Filter field display order; the cursor index counts through these.
var configFields = []string{"Date range", "Region", "Language"}

// ConfigFieldCount is how many rows the popover cursor cycles through.
const ConfigFieldCount = 3

// RenderConfig renders the filter popover. Values arrive already mapped
// to display strings ("any" for unset).
func (pr *PopoverRenderer) RenderConfig(dateRange, region, language string, cursor int) string {
	values := []string{dateRange, region, language}

	var rows []string
	for i, field := range configFields {
		marker := "  "
		label := pr.styles.PopoverLabel.Render(field)
		if i == cursor {
			marker = pr.styles.PopoverCursor.Render("▸ ")
			label = pr.styles.PopoverCursor.Render(field)
		}
		rows = append(rows, fmt.Sprintf("%s%-24s %s", marker, label,
			pr.styles.PopoverValue.Render("‹ "+values[i]+" ›")))
	}
	rows = append(rows, "")
	rows = append(rows, pr.styles.Dim.Render("  ←/→ change · esc close"))

	return pr.styles.PopoverBox.Render(strings.Join(rows, "\n"))
}

// RenderHelp renders the key reference, centered in the given area.
func (pr *PopoverRenderer) RenderHelp(width, height int) string {
	key := pr.styles.HelpKey
	desc := pr.styles.HelpDesc

	var b strings.Builder
	b.WriteString(pr.styles.AnswerTerm.Render("metaseek keys"))
	b.WriteString("\n")

	b.WriteString(pr.styles.HelpSection.Render("Search"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render("type     "), desc.Render("edit query, opens suggestions")))
	b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render("enter    "), desc.Render("search now / commit suggestion")))
	b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render("esc      "), desc.Render("close overlays, back to input")))
	b.WriteString("\n")

	b.WriteString(pr.styles.HelpSection.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render("↓/↑      "), desc.Render("move through suggestions and results")))
	b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render("←/→ [ ]  "), desc.Render("previous/next result page")))
	b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render("pgup/pgdn"), desc.Render("scroll the result list")))
	b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render("enter    "), desc.Render("open focused result details")))
	b.WriteString("\n")

	b.WriteString(pr.styles.HelpSection.Render("Other"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render("ctrl+f   "), desc.Render("toggle filter popover")))
	b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render("? / F1   "), desc.Render("toggle this help")))
	b.WriteString(fmt.Sprintf("  %s  %s", key.Render("q / ctrl+c"), desc.Render("quit")))

	box := pr.styles.HelpBox.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
