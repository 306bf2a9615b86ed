package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitWord_Format(t *testing.T) {
	word := UnitWord{Singular: "dia", Plural: "dias"}

	tests := []struct {
		value int64
		want  string
	}{
		{0, "0 dias"},
		{1, "1 dia"},
		{2, "2 dias"},
		{31, "31 dias"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, word.Format(tc.value))
	}
}

// TestLines_PluralPerField checks that each field picks its own form.
func TestLines_PluralPerField(t *testing.T) {
	labels, err := LabelsFor(LocaleEnglish)
	require.NoError(t, err)

	fields := []func(*ElapsedDuration){
		func(d *ElapsedDuration) { d.Months = 1 },
		func(d *ElapsedDuration) { d.Days = 1 },
		func(d *ElapsedDuration) { d.Hours = 1 },
		func(d *ElapsedDuration) { d.Minutes = 1 },
		func(d *ElapsedDuration) { d.Seconds = 1 },
	}
	plural := []string{"0 months", "0 days", "0 hours", "0 minutes", "0 seconds"}
	singular := []string{"1 month", "1 day", "1 hour", "1 minute", "1 second"}

	for i, set := range fields {
		var d ElapsedDuration
		set(&d)

		lines := d.Lines(labels)

		for j, line := range lines {
			if j == i {
				assert.Equal(t, singular[j], line)
			} else {
				assert.Equal(t, plural[j], line)
			}
		}
	}
}

func TestLabelsFor_Unsupported(t *testing.T) {
	_, err := LabelsFor("fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fr")
}
