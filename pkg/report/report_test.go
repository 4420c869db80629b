package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harrisonrobin/planus/pkg/analysis"
	"github.com/harrisonrobin/planus/pkg/contract"
	"github.com/harrisonrobin/planus/pkg/i18n"
	"github.com/harrisonrobin/planus/pkg/model"
	"github.com/harrisonrobin/planus/pkg/risk"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func run(t *testing.T, loc i18n.Locale, doc *contract.Document, contractErr error) *analysis.Result {
	t.Helper()
	tasks := []model.Task{
		{ID: "1", Name: "Foundations", Start: now.AddDate(0, -2, 0), Finish: now.AddDate(0, 0, -40),
			Duration: 120, PercentComplete: 60, ResourceNames: []string{}},
		{ID: "2", Name: "Install pumps", Start: now.AddDate(0, 0, -5), Finish: now.AddDate(0, 0, 20),
			Duration: 80, PercentComplete: 10, ResourceNames: []string{"Ana"}},
		{ID: "3", Name: "Survey", Start: now.AddDate(0, -3, 0), Finish: now.AddDate(0, -2, 0),
			Duration: 16, PercentComplete: 100, ResourceNames: []string{"Ana", "Bia"}},
	}
	res, err := analysis.New(nil).Run(context.Background(), analysis.Request{
		Project:     "River Bridge",
		Tasks:       tasks,
		Contract:    doc,
		ContractErr: contractErr,
		Locale:      loc,
		Now:         now,
	})
	require.NoError(t, err)
	return res
}

func TestMarkdown(t *testing.T) {
	res := run(t, i18n.English, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, res))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# 📊 SCHEDULE STATUS REPORT\n"))
	assert.Contains(t, out, "**Report Date:** 2024-06-01 12:00")
	assert.Contains(t, out, "**Project:** River Bridge")
	assert.Contains(t, out, "The project has **3 tasks** in total, with an average progress of **56.7%**.")
	assert.Contains(t, out, "- ✅ **Completed:** 1 tasks (33.3%)")
	assert.Contains(t, out, "- 🔄 **In Progress:** 2 tasks (66.7%)")
	assert.Contains(t, out, "- ⏸️ **Not Started:** 0 tasks (0.0%)")
	assert.Contains(t, out, fmt.Sprintf("**Project Risk Level:** Level %d/5", res.Risk.Summary.ProjectLevel))
	assert.Contains(t, out, i18n.Text(i18n.English, banner(res.Risk.Summary.ProjectLevel)))

	assert.Contains(t, out, "## 🚨 DELAYED TASKS (1)")
	assert.Contains(t, out, "- **Foundations**: 40 days delayed (60% complete)")
	assert.Contains(t, out, "- Task 'Foundations' is overdue.")
	assert.Contains(t, out, "- Foundations (120.0h)")
	for _, a := range res.Risk.Summary.HighRisk {
		assert.Contains(t, out, fmt.Sprintf("- **%s** (Risk Level %d/5)", a.TaskName, a.Level))
	}

	assert.Contains(t, out, "**Total Resources:** 2")
	assert.Contains(t, out, "- **Bia**: productivity 100% (1 tasks)")
	assert.NotContains(t, out, "CONTRACT ANALYSIS")

	assert.Contains(t, out, "4. Prioritize completing the 1 delayed tasks")
	assert.True(t, strings.HasSuffix(out, "*Report automatically generated by Planus*\n"))
}

func TestMarkdownContract(t *testing.T) {
	doc := contract.Extract("Activity: Foundations\nActivity: Instl pumps\n")
	res := run(t, i18n.English, &doc, nil)

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, res))
	out := buf.String()

	assert.Contains(t, out, "## 📑 CONTRACT ANALYSIS")
	assert.Contains(t, out, fmt.Sprintf("**Compliance Score:** %.1f%%", res.Contract.ComplianceScore))
	assert.Contains(t, out, "### Missing Activities (1)")
	assert.Contains(t, out, "- Instl pumps (~ Install pumps")
	assert.Contains(t, out, "### Schedule Tasks Not in Contract (2)")
	assert.Contains(t, out, res.Contract.Summary)
}

func TestMarkdownContractUnavailable(t *testing.T) {
	res := run(t, i18n.English, nil, errors.New("extract_contract c.pdf: malformed PDF"))

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, res))
	assert.Contains(t, buf.String(), "Contract could not be analyzed: extract_contract c.pdf: malformed PDF")
}

func TestMarkdownLocalized(t *testing.T) {
	res := run(t, i18n.Portuguese, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "# 📊 RELATÓRIO DE STATUS DO CRONOGRAMA")
	assert.Contains(t, out, "- **Foundations**: 40 dias de atraso (60% concluído)")
	assert.Contains(t, out, "Já atrasado 40 dias")
}

func TestMarkdownEmptySchedule(t *testing.T) {
	res, err := analysis.New(nil).Run(context.Background(), analysis.Request{Now: now})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "The project has **0 tasks**")
	assert.Contains(t, out, "🟢 **FAVORABLE SITUATION:**")
	assert.NotContains(t, out, "DELAYED TASKS")
	assert.NotContains(t, out, "RESOURCE ANALYSIS")
	assert.Contains(t, out, "3. Prepare for the next project phases")
	assert.NotContains(t, out, "4. ")
}

func TestBannerAndRecommendations(t *testing.T) {
	tests := []struct {
		level   risk.Level
		delayed int
		banner  i18n.Message
		first   i18n.Message
		count   int
	}{
		{risk.LevelCritical, 2, i18n.ReportBannerCritical, i18n.ReportRecUrgent1, 4},
		{risk.LevelHigh, 0, i18n.ReportBannerCritical, i18n.ReportRecUrgent1, 3},
		{risk.LevelMedium, 1, i18n.ReportBannerAttention, i18n.ReportRecWatch1, 4},
		{risk.LevelLow, 0, i18n.ReportBannerFavorable, i18n.ReportRecKeep1, 3},
		{risk.LevelVeryLow, 0, i18n.ReportBannerFavorable, i18n.ReportRecKeep1, 3},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("level %d", tc.level), func(t *testing.T) {
			assert.Equal(t, tc.banner, banner(tc.level))
			recs := recommendations(i18n.English, tc.level, tc.delayed)
			require.Len(t, recs, tc.count)
			assert.Equal(t, i18n.Text(i18n.English, tc.first), recs[0])
		})
	}
}

func TestTerminal(t *testing.T) {
	doc := contract.Extract("Activity: Foundations\nActivity: Roofing\n")
	res := run(t, i18n.English, &doc, nil)

	var buf bytes.Buffer
	require.NoError(t, Terminal(&buf, res))
	out := buf.String()

	assert.Contains(t, out, "📊 SCHEDULE STATUS REPORT")
	assert.Contains(t, out, "Project: River Bridge")
	assert.Contains(t, out, res.Risk.Summary.Summary)
	assert.Contains(t, out, "Foundations")
	assert.Contains(t, out, "Install pumps")
	assert.Contains(t, out, "Foundations: 40 days delayed (60% complete)")
	assert.Contains(t, out, "  - Roofing")
	assert.NotContains(t, out, "**")
}

func TestWriteStructured(t *testing.T) {
	res := run(t, i18n.English, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatJSON))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res.RunID, decoded["run_id"])
	assert.Equal(t, "River Bridge", decoded["project"])
	assert.NotContains(t, decoded, "contract")

	buf.Reset()
	require.NoError(t, Write(&buf, res, FormatYAML))
	var y map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &y))
	assert.Equal(t, res.RunID, y["run_id"])
	assert.Equal(t, "en", y["locale"])
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, &analysis.Result{}, Format("pdf"))
	require.Error(t, err)
	assert.Equal(t, analysis.StageRender, analysis.StageOf(err))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"markdown": FormatMarkdown, "MD": FormatMarkdown, "terminal": FormatTerminal,
		"json": FormatJSON, " yaml ": FormatYAML, "yml": FormatYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("html")
	assert.Error(t, err)
	assert.Len(t, Formats(), 4)
}
