package notifier

import (
	"fmt"
	"strings"
	"time"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/model"
)

func polarityMark(p model.Polarity) string {
	switch p {
	case model.PolarityPositive:
		return "🟢"
	case model.PolarityNegative:
		return "🔴"
	default:
		return "⚪"
	}
}

// FormatSignalReport formats one instrument's analysis into a Telegram message.
func FormatSignalReport(symbol string, a *model.Analysis) string {
	var b strings.Builder

	score := a.SignalScore
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> — score %d/100 (%s)\n", symbol, score.Score, score.Status.Label))
	b.WriteString(fmt.Sprintf("  ✅ fulfilled %d/%d (%d%%)\n", score.Fulfilled, score.Total, score.FulfillmentRate))

	for _, s := range score.Signals {
		b.WriteString(fmt.Sprintf("  %s %s: %s\n", polarityMark(s.Polarity), s.Name, s.Description))
	}

	if a.ATR != nil && a.ATR.Percent.Valid {
		b.WriteString(fmt.Sprintf("  ⚡ ATR: %.2f%% (%s)\n", a.ATR.Percent.V, a.ATR.Status.Label))
	}
	if a.Volume != nil {
		b.WriteString(fmt.Sprintf("  📦 Volume: %.2fx avg (%s)\n", a.Volume.Ratio, a.Volume.Status.Label))
	}
	return b.String()
}

// FormatBatchReport formats a full batch run into a single message, best
// scores first within their original order preserved per symbol block.
func FormatBatchReport(results []collector.Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 <b>Signal Report</b> | %s\n\n", time.Now().Format("2006-01-02")))

	for _, r := range results {
		if r.Err != nil {
			b.WriteString(fmt.Sprintf("❌ <b>%s</b>: %v\n\n", r.Symbol, r.Err))
			continue
		}
		b.WriteString(FormatSignalReport(r.Symbol, r.Analysis))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatSummaryLine renders a compact one-line summary for one instrument.
func FormatSummaryLine(symbol string, a *model.Analysis) string {
	score := a.SignalScore
	return fmt.Sprintf("%s: %d/100 (%s), fulfilled %d/%d",
		symbol, score.Score, score.Status.Label, score.Fulfilled, score.Total)
}
