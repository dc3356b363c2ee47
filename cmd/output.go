package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var errUnknownOutput = errors.New("unknown output format")

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", outputText, "Output format: text, json or yaml")
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("%w %q", errUnknownOutput, format)
	}
}

// writeOutput encodes value as json or yaml, or calls text for the default format.
func writeOutput(w io.Writer, format string, value any, text func(io.Writer) error) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

type reportView struct {
	PassID   string        `json:"pass_id" yaml:"pass_id"`
	Skipped  bool          `json:"skipped" yaml:"skipped"`
	Outcomes []outcomeView `json:"outcomes" yaml:"outcomes"`
}

type outcomeView struct {
	TabID   domain.TabID   `json:"tab_id,omitempty" yaml:"tab_id,omitempty"`
	Action  domain.Action  `json:"action" yaml:"action"`
	GroupID domain.GroupID `json:"group_id,omitempty" yaml:"group_id,omitempty"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
}

func newReportView(report domain.Report) reportView {
	view := reportView{PassID: report.PassID, Skipped: report.Skipped, Outcomes: []outcomeView{}}
	for _, o := range report.Outcomes {
		ov := outcomeView{TabID: o.TabID, Action: o.Action, GroupID: o.GroupID}
		if o.Err != nil {
			ov.Error = o.Err.Error()
		}
		view.Outcomes = append(view.Outcomes, ov)
	}
	return view
}

func summarizeReport(report domain.Report) string {
	if report.Skipped {
		return "auto-pin is disabled, nothing to do"
	}

	var parts []string
	for _, action := range []struct {
		action domain.Action
		verb   string
	}{
		{domain.ActionGroup, "grouped"},
		{domain.ActionPin, "pinned"},
		{domain.ActionUnpin, "unpinned"},
		{domain.ActionClose, "closed"},
	} {
		if n := len(report.Succeeded(action.action)); n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", action.verb, n))
		}
	}
	if failed := len(report.Failed()); failed > 0 {
		parts = append(parts, fmt.Sprintf("failed %d", failed))
	}
	if len(parts) == 0 {
		return "no tabs to update"
	}

	return strings.Join(parts, ", ")
}

// writeReport prints the summary, one line per failure, and returns the joined failures.
func writeReport(cmd *cobra.Command, format string, report domain.Report) error {
	err := writeOutput(cmd.OutOrStdout(), format, newReportView(report), func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, summarizeReport(report)); err != nil {
			return err
		}
		for _, failed := range report.Failed() {
			if _, err := fmt.Fprintf(w, "  %s tab %d: %v\n", failed.Action, failed.TabID, failed.Err); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if report.Err() != nil {
		return fmt.Errorf("%d tab actions failed", len(report.Failed()))
	}
	return nil
}
