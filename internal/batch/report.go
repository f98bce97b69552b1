package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/in2post/internal/token"
	"github.com/google/uuid"
)

type CaseResult struct {
	ID         string        `json:"id"`
	Expression string        `json:"expression"`
	Passed     bool          `json:"passed"`
	Postfix    string        `json:"postfix,omitempty"`
	Result     *float64      `json:"result,omitempty"`
	Error      string        `json:"error,omitempty"`
	Reason     string        `json:"reason,omitempty"`
	Latency    time.Duration `json:"latency"`
}

type Report struct {
	RunID     uuid.UUID     `json:"run_id"`
	Suite     string        `json:"suite"`
	Workers   int           `json:"workers"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Latency   LatencyStats  `json:"latency"`
	Cases     []CaseResult  `json:"cases"`
}

func (r *Report) finish() {
	r.Duration = time.Since(r.StartedAt)

	latencies := make([]time.Duration, 0, len(r.Cases))
	for _, c := range r.Cases {
		if c.Passed {
			r.Passed++
		} else {
			r.Failed++
		}
		latencies = append(latencies, c.Latency)
	}
	r.Latency = ComputeLatencyStats(latencies)
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Batch: %s (run %s, %d workers) ===\n\n", r.Suite, r.RunID, r.Workers)

	fmt.Fprintln(tw, strings.Join([]string{"Case", "Status", "Postfix", "Result", "Detail"}, "\t"))
	fmt.Fprintln(tw, strings.Join([]string{"---", "---", "---", "---", "---"}, "\t"))

	for _, c := range r.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		result := "-"
		if c.Result != nil {
			result = token.FormatNumber(*c.Result)
		}
		detail := c.Reason
		if detail == "" {
			detail = c.Error
		}
		fmt.Fprintln(tw, strings.Join([]string{c.ID, status, orDash(c.Postfix), result, detail}, "\t"))
	}

	fmt.Fprintf(tw, "\nPassed: %d  Failed: %d  Duration: %s\n", r.Passed, r.Failed, r.Duration.Round(time.Microsecond))
	s := r.Latency
	fmt.Fprintf(tw, "Latency  min %s  p50 %s  p90 %s  p99 %s  max %s\n",
		fmtDuration(s.Min), fmtDuration(s.Percentiles[50]), fmtDuration(s.Percentiles[90]),
		fmtDuration(s.Percentiles[99]), fmtDuration(s.Max))

	tw.Flush()
}

func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func fmtDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	}
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
