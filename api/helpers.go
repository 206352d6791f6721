package api

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
)

// HasErrors returns true if the run itself failed or any repository errored; failed compilations don't count
func HasErrors(results []RepositoryResult, err error) bool {
	if err != nil {
		return true
	}
	for _, r := range results {
		if r.Status == StatusErrored {
			return true
		}
	}
	return false
}

// HandleExit exits the process with a non-zero code when HasErrors is true
func HandleExit(results []RepositoryResult, err error) {

	if HasErrors(results, err) {
		os.Exit(1)
	}

	os.Exit(0)
}

// AggregatedStatus returns the least successful status of all results
func AggregatedStatus(results []RepositoryResult) Status {

	status := StatusSucceeded
	for _, r := range results {
		switch r.Status {
		case StatusErrored:
			return StatusErrored
		case StatusFailed:
			status = StatusFailed
		}
	}

	return status
}

// RenderStats prints a table with the result of each repository to stdout
func RenderStats(results []RepositoryResult) {
	renderStats(os.Stdout, results)
}

func renderStats(w io.Writer, results []RepositoryResult) {

	data := make([][]string, 0)
	durationTotal := 0.0

	for _, r := range results {
		data = append(data, []string{
			r.Repository.FullName(),
			r.Repository.Branch,
			r.Commit.Hash,
			string(r.Status),
			fmt.Sprintf("%.0f", r.Duration.Seconds()),
			r.Reason,
		})

		durationTotal += r.Duration.Seconds()
	}

	fmt.Fprintln(w, "")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Repository", "Branch", "Commit", "Status", "Duration (s)", "Detail"})
	table.SetFooter([]string{"", "", "Total", string(AggregatedStatus(results)), fmt.Sprintf("%.0f", durationTotal), ""})
	table.SetBorder(false)
	table.AppendBulk(data)
	table.Render()
	fmt.Fprintln(w, "")
}
