package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/harrisonrobin/planus/pkg/analysis"
	"github.com/harrisonrobin/planus/pkg/i18n"
	"github.com/harrisonrobin/planus/pkg/risk"
)

const dateLayout = "2006-01-02 15:04"

// view holds every localized string the markdown template prints.
type view struct {
	Title        string
	DateLabel    string
	Date         string
	ProjectLabel string
	Project      string

	ExecutiveSummary  string
	Overview          string
	DistributionTitle string
	Distribution      []string
	Weighted          string

	RiskTitle     string
	ProjectLevel  string
	Banner        string
	HighRiskTitle string
	HighRisk      []highRiskItem
	DelayedTitle  string
	Delayed       []string
	RisksTitle    string
	Risks         []string
	LongestTitle  string
	Longest       []string

	ResourcesTitle string
	TotalResources string
	Overloaded     string
	Productivity   []string

	ContractTitle       string
	Contract            *contractView
	ContractUnavailable string

	RecommendationsTitle string
	Recommendations      []string
	Footer               string
}

type highRiskItem struct {
	Title   string
	Factors []string
}

type contractView struct {
	Summary         string
	Compliance      string
	MissingTitle    string
	Missing         []string
	ExtraTitle      string
	Extra           []string
	Recommendations []string
}

const markdownTemplate = `# {{.Title}}

**{{.DateLabel}}:** {{.Date}}
{{- if .Project}}
**{{.ProjectLabel}}:** {{.Project}}
{{- end}}

---

## {{.ExecutiveSummary}}

{{.Overview}}

### {{.DistributionTitle}}
{{range .Distribution}}
- {{.}}
{{- end}}

{{.Weighted}}

---

## {{.RiskTitle}}

{{.ProjectLevel}}

{{.Banner}}
{{- if .HighRisk}}

### {{.HighRiskTitle}}
{{range .HighRisk}}
- {{.Title}}
{{- range .Factors}}
  - {{.}}
{{- end}}
{{- end}}
{{- end}}
{{- if .Delayed}}

## {{.DelayedTitle}}
{{range .Delayed}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Risks}}

## {{.RisksTitle}}
{{range .Risks}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Longest}}

### {{.LongestTitle}}
{{range .Longest}}
- {{.}}
{{- end}}
{{- end}}
{{- if .TotalResources}}

## {{.ResourcesTitle}}

{{.TotalResources}}
{{- if .Overloaded}}

{{.Overloaded}}
{{- end}}
{{range .Productivity}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Contract}}

## {{.ContractTitle}}

{{.Contract.Compliance}}

{{.Contract.Summary}}
{{- if .Contract.Missing}}

### {{.Contract.MissingTitle}}
{{range .Contract.Missing}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Contract.Extra}}

### {{.Contract.ExtraTitle}}
{{range .Contract.Extra}}
- {{.}}
{{- end}}
{{- end}}
{{- range .Contract.Recommendations}}
- {{.}}
{{- end}}
{{- else if .ContractUnavailable}}

## {{.ContractTitle}}

{{.ContractUnavailable}}
{{- end}}

## {{.RecommendationsTitle}}
{{range $i, $r := .Recommendations}}
{{inc $i}}. {{$r}}
{{- end}}

---

{{.Footer}}
`

var markdownTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(markdownTemplate))

// Markdown writes the status report in the result's locale.
func Markdown(w io.Writer, res *analysis.Result) error {
	if err := markdownTmpl.Execute(w, buildView(res)); err != nil {
		return fmt.Errorf("failed to execute report template: %w", err)
	}
	return nil
}

func buildView(res *analysis.Result) view {
	loc := res.Locale
	text := func(id i18n.Message) string { return i18n.Text(loc, id) }
	render := func(id i18n.Message, args i18n.Args) string { return i18n.Render(loc, id, args) }
	p := res.Progress
	level := res.Risk.Summary.ProjectLevel

	v := view{
		Title:        text(i18n.ReportTitle),
		DateLabel:    text(i18n.ReportDate),
		Date:         res.GeneratedAt.Format(dateLayout),
		ProjectLabel: text(i18n.ReportProject),
		Project:      res.Project,

		ExecutiveSummary:  text(i18n.ReportExecutiveSummary),
		Overview:          render(i18n.ReportOverview, i18n.Args{Total: p.TotalTasks, Score: p.AverageProgress}),
		DistributionTitle: text(i18n.ReportTaskDistribution),
		Distribution: []string{
			distributionLine("✅", text(i18n.ReportCompleted), render(i18n.ReportTaskCount, i18n.Args{Count: p.Completed, Score: p.Share(p.Completed)})),
			distributionLine("🔄", text(i18n.ReportInProgress), render(i18n.ReportTaskCount, i18n.Args{Count: p.InProgress, Score: p.Share(p.InProgress)})),
			distributionLine("⏸️", text(i18n.ReportNotStarted), render(i18n.ReportTaskCount, i18n.Args{Count: p.NotStarted, Score: p.Share(p.NotStarted)})),
		},
		Weighted: render(i18n.ReportWeightedProgress, i18n.Args{Score: p.WeightedProgress}),

		RiskTitle:     text(i18n.ReportRiskAnalysis),
		ProjectLevel:  render(i18n.ReportProjectRiskLevel, i18n.Args{Level: int(level)}),
		Banner:        text(banner(level)),
		HighRiskTitle: render(i18n.ReportHighRiskTasks, i18n.Args{Count: len(res.Risk.Summary.HighRisk)}),
		DelayedTitle:  render(i18n.ReportDelayedTasks, i18n.Args{Count: len(res.Schedule.Delayed)}),
		RisksTitle:    text(i18n.ReportIdentifiedRisks),
		Risks:         res.Schedule.Risks,
		LongestTitle:  text(i18n.ReportLongestTasks),

		ResourcesTitle: text(i18n.ReportResourceAnalysis),
		ContractTitle:  text(i18n.ReportContractAnalysis),

		RecommendationsTitle: text(i18n.ReportRecommendations),
		Recommendations:      recommendations(loc, level, len(res.Schedule.Delayed)),
		Footer:               text(i18n.ReportFooter),
	}

	for _, a := range res.Risk.Summary.HighRisk {
		v.HighRisk = append(v.HighRisk, highRiskItem{
			Title:   render(i18n.ReportHighRiskItem, i18n.Args{Name: a.TaskName, Level: int(a.Level), Percent: a.PercentComplete}),
			Factors: a.FactorMessages(),
		})
	}
	for _, d := range res.Schedule.Delayed {
		v.Delayed = append(v.Delayed, render(i18n.ReportDelayedItem, i18n.Args{Name: d.Name, Days: d.DaysDelayed, Percent: d.PercentComplete}))
	}
	for _, l := range res.Schedule.Longest {
		v.Longest = append(v.Longest, fmt.Sprintf("%s (%.1fh)", l.Name, l.Duration))
	}

	if n := len(res.Resources.Resources); n > 0 {
		v.TotalResources = render(i18n.ReportTotalResources, i18n.Args{Count: n})
		if len(res.Resources.Overloaded) > 0 {
			v.Overloaded = render(i18n.ReportOverloaded, i18n.Args{Name: strings.Join(res.Resources.Overloaded, ", ")})
		}
		for _, s := range res.Productivity {
			v.Productivity = append(v.Productivity, render(i18n.ReportProductivityItem, i18n.Args{
				Name:  s.ResourceName,
				Score: s.ProductivityIndex * 100,
				Count: s.AssignedTasks,
			}))
		}
	}

	switch {
	case res.Contract != nil:
		c := res.Contract
		v.Contract = &contractView{
			Summary:         c.Summary,
			Compliance:      render(i18n.ReportComplianceScore, i18n.Args{Score: c.ComplianceScore}),
			MissingTitle:    render(i18n.ReportMissingActivities, i18n.Args{Count: len(c.MissingActivities)}),
			ExtraTitle:      render(i18n.ReportExtraActivities, i18n.Args{Count: len(c.ExtraActivities)}),
			Recommendations: c.Recommendations,
		}
		for _, m := range c.MissingActivities {
			if hints := c.Suggestions[m]; len(hints) > 0 {
				m = fmt.Sprintf("%s (~ %s)", m, strings.Join(hints, ", "))
			}
			v.Contract.Missing = append(v.Contract.Missing, m)
		}
		v.Contract.Extra = c.ExtraActivities
	case res.ContractError != "":
		v.ContractUnavailable = render(i18n.ReportContractUnavailable, i18n.Args{Name: res.ContractError})
	}
	return v
}

func distributionLine(icon, label, count string) string {
	return fmt.Sprintf("%s **%s:** %s", icon, label, count)
}

func banner(level risk.Level) i18n.Message {
	switch {
	case level >= risk.LevelHigh:
		return i18n.ReportBannerCritical
	case level >= risk.LevelMedium:
		return i18n.ReportBannerAttention
	default:
		return i18n.ReportBannerFavorable
	}
}

// recommendations picks the three generic actions for the project level and
// adds one for delayed tasks when there are any.
func recommendations(loc i18n.Locale, level risk.Level, delayed int) []string {
	var ids []i18n.Message
	switch {
	case level >= risk.LevelHigh:
		ids = []i18n.Message{i18n.ReportRecUrgent1, i18n.ReportRecUrgent2, i18n.ReportRecUrgent3}
	case level >= risk.LevelMedium:
		ids = []i18n.Message{i18n.ReportRecWatch1, i18n.ReportRecWatch2, i18n.ReportRecWatch3}
	default:
		ids = []i18n.Message{i18n.ReportRecKeep1, i18n.ReportRecKeep2, i18n.ReportRecKeep3}
	}
	out := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		out = append(out, i18n.Text(loc, id))
	}
	if delayed > 0 {
		out = append(out, i18n.Render(loc, i18n.ReportRecDelayed, i18n.Args{Count: delayed}))
	}
	return out
}
