package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/widebird/internal/storage"
)

// maxHistory is how many sessions the panel loads.
const maxHistory = 50

var (
	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	historyStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	historyBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// historyPanel lists the sessions of this process.
type historyPanel struct {
	table table.Model
	stats *storage.Stats
	err   error
}

func newHistoryPanel(height int) historyPanel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Best", Width: 6},
		{Title: "Ticks", Width: 7},
		{Title: "Pairs", Width: 7},
		{Title: "Ended by", Width: 10},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(3, height-8)), // Leave room for title, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return historyPanel{table: t}
}

// load refreshes the panel from store. A nil store leaves the panel empty.
func (p *historyPanel) load(store *storage.Store) {
	p.stats, p.err = nil, nil
	if store == nil {
		p.table.SetRows(nil)
		return
	}

	stats, err := store.Stats()
	if err == nil {
		var records []storage.SessionRecord
		records, err = store.RecentSessions(maxHistory)
		if err == nil {
			p.stats = stats
			p.setRows(records)
			return
		}
	}
	p.err = err
	p.table.SetRows(nil)
}

// setRows fills the table, newest session first, numbered from the oldest.
func (p *historyPanel) setRows(records []storage.SessionRecord) {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			fmt.Sprintf("%d", p.stats.Sessions-i),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Best),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Pairs),
			r.Reason,
			r.Duration().Round(100 * time.Millisecond).String(),
		}
	}
	p.table.SetRows(rows)
	p.table.GotoTop()
}

// setHeight resizes the table to fit a screen of the given height.
func (p *historyPanel) setHeight(height int) {
	p.table.SetHeight(max(3, height-8))
}

func (p historyPanel) View() string {
	var b strings.Builder
	b.WriteString(historyTitleStyle.Render("Sessions this run"))
	b.WriteString("\n\n")

	switch {
	case p.err != nil:
		b.WriteString(historyStatsStyle.Render("ledger unavailable: " + p.err.Error()))
	case p.stats == nil:
		b.WriteString(historyStatsStyle.Render("ledger unavailable"))
	case p.stats.Sessions == 0:
		b.WriteString(historyStatsStyle.Render("no sessions yet"))
	default:
		b.WriteString(historyStatsStyle.Render(fmt.Sprintf(
			"sessions: %d  best: %d  avg: %.1f  ticks: %d  last: %s",
			p.stats.Sessions, p.stats.BestScore, p.stats.AvgScore, p.stats.TotalTicks,
			p.stats.LastEnded.Format(time.TimeOnly),
		)))
		b.WriteString("\n\n")
		b.WriteString(p.table.View())
	}

	return historyBoxStyle.Render(b.String())
}
