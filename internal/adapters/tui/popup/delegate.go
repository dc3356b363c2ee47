package popup

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type tabItem struct {
	assessment domain.TabAssessment
}

func (i tabItem) FilterValue() string { return i.assessment.Tab.Title }

func (i tabItem) host() string {
	host, err := i.assessment.Tab.Hostname()
	if err != nil {
		return ""
	}
	return host
}

type tabDelegate struct {
	styles   *styles
	showIdle *bool
	width    int
}

func (d *tabDelegate) SetWidth(width int) { d.width = width }

func (d *tabDelegate) Height() int                             { return 2 }
func (d *tabDelegate) Spacing() int                            { return 0 }
func (d *tabDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d *tabDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(tabItem)
	if !ok {
		return
	}

	a := i.assessment
	titleStyle := d.styles.normal
	if index == m.Index() {
		titleStyle = d.styles.selected
	}

	marker := "  "
	switch {
	case a.Tab.Pinned:
		marker = d.styles.pinned.Render("● ")
	case a.Tab.Grouped():
		marker = d.styles.grouped.Render("◆ ")
	}

	title := strings.TrimSpace(a.Tab.Title)
	if title == "" {
		title = "(untitled)"
	}
	if d.width > 6 && len([]rune(title)) > d.width-4 {
		title = string([]rune(title)[:d.width-5]) + "…"
	}

	meta := []string{i.host()}
	if *d.showIdle {
		idle := domain.FormatInactivity(a.InactivityMinutes())
		if a.PinEligible {
			idle = d.styles.inactive.Render(idle)
		}
		meta = append(meta, idle)
	}
	if a.Excluded {
		meta = append(meta, "excluded")
	}

	fmt.Fprintf(w, "%s%s\n  %s", marker, titleStyle.Render(title), d.styles.muted.Render(strings.Join(meta, " · ")))
}
