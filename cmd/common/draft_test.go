package common_test

import (
	"bytes"
	"errors"
	"testing"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/models/modelstest"
	"fjacquet/fintrack/internal/notify"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func only(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestDraftFlags_Bind(t *testing.T) {
	var f common.DraftFlags
	cmd := &cobra.Command{Use: "x"}
	f.Bind(cmd)

	shorthands := map[string]string{"type": "t", "description": "d", "amount": "a", "category": "c", "date": "D"}
	for name, short := range shorthands {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, short, flag.Shorthand)
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestDraftFlags_Apply(t *testing.T) {
	base := models.DraftFrom(modelstest.Tx("1", models.TypeExpense, "12.5", "2024-10-01", "Transport"))

	tests := []struct {
		name      string
		flags     common.DraftFlags
		changed   []string
		wantErrs  []string
		checkFunc func(t *testing.T, d models.Draft)
	}{
		{
			name:    "no flags keeps base",
			changed: nil,
			checkFunc: func(t *testing.T, d models.Draft) {
				assert.Equal(t, base, d)
			},
		},
		{
			name:    "amount with thousands separator",
			flags:   common.DraftFlags{Amount: "1,234.56"},
			changed: []string{"amount"},
			checkFunc: func(t *testing.T, d models.Draft) {
				assert.Equal(t, "1234.56", d.Amount.Decimal.String())
			},
		},
		{
			name:     "type change clears foreign category",
			flags:    common.DraftFlags{Type: "income"},
			changed:  []string{"type"},
			wantErrs: []string{models.FieldCategory},
		},
		{
			name:    "type change with matching category",
			flags:   common.DraftFlags{Type: "Income", Category: "Salary"},
			changed: []string{"type", "category"},
			checkFunc: func(t *testing.T, d models.Draft) {
				assert.Equal(t, models.TypeIncome, d.Type)
				assert.Equal(t, "Salary", d.Category)
			},
		},
		{
			name:    "empty date defaults later",
			flags:   common.DraftFlags{Date: ""},
			changed: []string{"date"},
			checkFunc: func(t *testing.T, d models.Draft) {
				assert.True(t, d.Date.IsZero())
			},
		},
		{
			name:     "unparseable values",
			flags:    common.DraftFlags{Amount: "twelve", Date: "someday", Type: "gift"},
			changed:  []string{"amount", "date", "type"},
			wantErrs: []string{models.FieldAmount, models.FieldCategory, models.FieldDate, models.FieldType},
		},
		{
			name:     "negative and blank",
			flags:    common.DraftFlags{Amount: "-5", Description: "  "},
			changed:  []string{"amount", "description"},
			wantErrs: []string{models.FieldAmount, models.FieldDescription},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.flags.Apply(base, only(tt.changed...))
			if len(tt.wantErrs) > 0 {
				v, ok := models.AsValidationErrors(err)
				require.True(t, ok, "expected validation errors, got %v", err)
				assert.Equal(t, tt.wantErrs, v.Fields())
				return
			}
			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, d)
			}
		})
	}
}

func TestDraftFlags_ApplyKeepsParseMessages(t *testing.T) {
	f := common.DraftFlags{Amount: "abc"}
	_, err := f.Apply(models.Draft{}, only("amount"))
	v, ok := models.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, models.MsgAmountNumber, v[models.FieldAmount])
}

func TestReport(t *testing.T) {
	t.Run("validation errors are listed", func(t *testing.T) {
		var out bytes.Buffer
		rec := notify.NewRecorder()
		err := models.ValidationErrors{models.FieldAmount: models.MsgAmountRequired}

		got := common.Report(&out, err, rec)

		assert.Equal(t, err, got)
		assert.Contains(t, out.String(), "amount: "+models.MsgAmountRequired)
	})

	t.Run("notifications are drained", func(t *testing.T) {
		var out bytes.Buffer
		rec := notify.NewRecorder()
		rec.Notify(notify.Success, "Expense added successfully")

		assert.NoError(t, common.Report(&out, nil, rec))
		assert.Equal(t, "Expense added successfully\n", out.String())
		assert.Empty(t, rec.All())
	})

	t.Run("other errors pass through", func(t *testing.T) {
		var out bytes.Buffer
		boom := errors.New("boom")
		assert.Equal(t, boom, common.Report(&out, boom, notify.NewRecorder()))
		assert.Empty(t, out.String())
	})
}
