package suite

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Formula Suite: %s ===\n\n", r.Suite)

	header := []string{"ID", "Normalized", "Classification", "p50", "p95", "Runs", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, o := range r.Outcomes {
		status := "OK"
		if !o.Passed() {
			status = "FAIL"
		}

		normalized, class := o.Normalized, string(o.Classification)
		if o.Err != "" {
			normalized, class = "-", "error"
		}

		row := []string{
			o.ID,
			normalized,
			class,
			fmtDuration(o.Latency.P50),
			fmtDuration(o.Latency.P95),
			fmt.Sprintf("%d", o.Latency.Samples),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	tw.Flush()

	for _, o := range r.Outcomes {
		for _, f := range o.Failures {
			fmt.Fprintf(w, "%s: %s\n", o.ID, f)
		}
	}
	fmt.Fprintf(w, "%d/%d passed\n", len(r.Outcomes)-r.Failed(), len(r.Outcomes))
}

func fmtDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
