package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDateOf_UsesCalendarDayOfInstant(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	evening := time.Date(2024, 10, 3, 22, 0, 0, 0, loc) // Oct 4 in UTC

	assert.Equal(t, "2024-10-03", DateOf(evening).String())
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2024, time.March, 31)

	assert.Equal(t, "2024-03-30", d.AddDays(-1).String())
	assert.Equal(t, "2024-02-29", d.AddMonths(-1).String())
	assert.True(t, d.AddDays(-1).Before(d))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.True(t, d.Equal(NewDate(2024, time.March, 31)))
	assert.Equal(t, 0, d.Compare(MustParseDate("31.03.2024")))
	assert.Equal(t, -1, d.AddDays(-3).Compare(d))
}

func TestDate_ZeroValue(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
}

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "iso date", input: `"2024-10-01"`, want: "2024-10-01"},
		{name: "timestamp keeps calendar part", input: `"2024-10-01T23:15:00+02:00"`, want: "2024-10-01"},
		{name: "null", input: `null`, want: ""},
		{name: "empty string", input: `""`, want: ""},
		{name: "number", input: `20241001`, wantErr: true},
		{name: "garbage", input: `"first of october"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}

	out, err := json.Marshal(NewDate(2024, time.October, 2))
	require.NoError(t, err)
	assert.Equal(t, `"2024-10-02"`, string(out))
}

func TestDate_YAML(t *testing.T) {
	type wrapper struct {
		Date Date `yaml:"date"`
	}

	out, err := yaml.Marshal(wrapper{Date: NewDate(2024, time.October, 2)})
	require.NoError(t, err)
	assert.Contains(t, string(out), "2024-10-02")

	var w wrapper
	require.NoError(t, yaml.Unmarshal(out, &w))
	assert.Equal(t, "2024-10-02", w.Date.String())
}
