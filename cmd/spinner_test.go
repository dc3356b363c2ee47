package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassReceipt(t *testing.T) {
	plain := lipgloss.NewStyle()
	started := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	report := domain.Report{
		PassID:     "1a2b3c4d-0000-4000-8000-000000000000",
		StartedAt:  started,
		FinishedAt: started.Add(120 * time.Millisecond),
		Outcomes: []domain.Outcome{
			{TabID: 1, Action: domain.ActionPin},
			{TabID: 2, Action: domain.ActionPin},
		},
	}

	assert.Equal(t, "✓ pass 1a2b3c4d finished in 120ms, 2 actions", passReceipt(report, nil, plain, plain))

	report.Outcomes[1].Err = errors.New("no tab")
	assert.Equal(t, "✗ pass 1a2b3c4d finished in 120ms, 1 of 2 actions failed", passReceipt(report, nil, plain, plain))

	assert.Equal(t, "• pass 1a2b3c4d skipped", passReceipt(domain.Report{PassID: report.PassID, Skipped: true}, nil, plain, plain))
	assert.Equal(t, "✗ pass 1a2b3c4d aborted", passReceipt(report, domain.ErrHostUnavailable, plain, plain))
}

func TestRunPassSpinnerReturnsReport(t *testing.T) {
	var out bytes.Buffer
	want := domain.Report{PassID: "feedbeef-1234", Outcomes: []domain.Outcome{{TabID: 3, Action: domain.ActionClose}}}

	report, err := runPassSpinner(context.Background(), &out, "Closing inactive tabs...", domain.ThemeLight,
		func(context.Context) (domain.Report, error) { return want, nil })

	require.NoError(t, err)
	assert.Equal(t, want, report)
}

func TestRunPassSpinnerReturnsActionError(t *testing.T) {
	var out bytes.Buffer

	_, err := runPassSpinner(context.Background(), &out, "Running policy pass...", domain.ThemeDark,
		func(context.Context) (domain.Report, error) { return domain.Report{}, domain.ErrHostUnavailable })

	require.ErrorIs(t, err, domain.ErrHostUnavailable)
}
