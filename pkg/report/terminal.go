package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/harrisonrobin/planus/pkg/analysis"
	"github.com/harrisonrobin/planus/pkg/colors"
	"github.com/harrisonrobin/planus/pkg/risk"
)

// maxTerminalRows bounds the task table; the markdown report lists everything.
const maxTerminalRows = 15

// Terminal writes a compact coloured summary. Colour is only emitted when w
// is a terminal that supports it.
func Terminal(w io.Writer, res *analysis.Result) error {
	re := lipgloss.NewRenderer(w)
	v := buildView(res)
	level := res.Risk.Summary.ProjectLevel

	title := re.NewStyle().Bold(true).Underline(true)
	muted := re.NewStyle().Faint(true)
	heading := re.NewStyle().Bold(true).MarginTop(1)

	var b strings.Builder
	b.WriteString(title.Render(strings.ToUpper(v.Title)) + "\n")
	if v.Project != "" {
		b.WriteString(muted.Render(fmt.Sprintf("%s: %s", v.ProjectLabel, v.Project)) + "\n")
	}
	b.WriteString(muted.Render(fmt.Sprintf("%s: %s", v.DateLabel, v.Date)) + "\n")

	b.WriteString(heading.Render(plain(v.RiskTitle)) + "\n")
	b.WriteString(colors.Style(re, level).Render(plain(v.ProjectLevel)) + "  " + level.Description(res.Locale) + "\n")
	b.WriteString(res.Risk.Summary.Summary + "\n")
	b.WriteString(plain(v.Overview) + "\n")

	if len(res.Risk.Summary.ByRisk) > 0 {
		b.WriteString(riskTable(re, res.Risk.Summary.ByRisk).Render() + "\n")
		if n := len(res.Risk.Summary.ByRisk) - maxTerminalRows; n > 0 {
			b.WriteString(muted.Render(fmt.Sprintf("… +%d", n)) + "\n")
		}
	}

	if len(v.Delayed) > 0 {
		b.WriteString(heading.Render(plain(v.DelayedTitle)) + "\n")
		for _, d := range v.Delayed {
			b.WriteString("  • " + plain(d) + "\n")
		}
	}
	if v.Overloaded != "" {
		b.WriteString(heading.Render(plain(v.ResourcesTitle)) + "\n")
		b.WriteString("  " + plain(v.Overloaded) + "\n")
	}

	switch {
	case v.Contract != nil:
		b.WriteString(heading.Render(plain(v.ContractTitle)) + "\n")
		b.WriteString("  " + plain(v.Contract.Compliance) + "\n")
		for _, m := range v.Contract.Missing {
			b.WriteString("  - " + m + "\n")
		}
	case v.ContractUnavailable != "":
		b.WriteString(heading.Render(plain(v.ContractTitle)) + "\n")
		b.WriteString("  " + plain(v.ContractUnavailable) + "\n")
	}

	b.WriteString(heading.Render(plain(v.RecommendationsTitle)) + "\n")
	for i, r := range v.Recommendations {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, plain(r)))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func riskTable(re *lipgloss.Renderer, byRisk []risk.Assessment) *table.Table {
	shown := byRisk[:min(maxTerminalRows, len(byRisk))]
	rows := make([][]string, 0, len(shown))
	for _, a := range shown {
		finish := "-"
		if !a.Finish.IsZero() {
			finish = a.Finish.Format("2006-01-02")
		}
		rows = append(rows, []string{
			a.TaskID,
			a.TaskName,
			strconv.Itoa(int(a.Level)),
			strconv.Itoa(a.Score),
			strconv.Itoa(a.PercentComplete) + "%",
			finish,
		})
	}

	header := re.NewStyle().Bold(true).Padding(0, 1)
	cell := re.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(re.NewStyle().Faint(true)).
		Headers("ID", "Task", "Risk", "Score", "Done", "Finish").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 2 && row >= 0 && row < len(shown) {
				return colors.Style(re, shown[row].Level).Padding(0, 1)
			}
			return cell
		})
}

// plain drops markdown emphasis, which the terminal shows through styles instead.
func plain(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
