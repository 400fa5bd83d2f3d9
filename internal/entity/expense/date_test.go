package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Date
		fails bool
	}{
		{name: "plain day", input: "2025-02-26", want: NewDate(2025, time.February, 26)},
		{name: "first of month", input: "2024-01-01", want: NewDate(2024, time.January, 1)},
		{name: "day and year swapped", input: "26-02-2025", fails: true},
		{name: "month out of range", input: "2025-13-01", fails: true},
		{name: "dots instead of dashes", input: "2025.02.26", fails: true},
		{name: "not a date", input: "yesterday", fails: true},
		{name: "empty", input: "", fails: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want))
		})
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2025, time.February, 26)
	assert.Equal(t, "2025-02-26", d.String())
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	ts := time.Date(2025, time.February, 26, 23, 59, 58, 0, time.Local)
	assert.True(t, DateOf(ts).Equal(NewDate(2025, time.February, 26)))
}

func TestDateOrdering(t *testing.T) {
	feb := NewDate(2025, time.February, 26)
	mar := NewDate(2025, time.March, 1)

	assert.True(t, feb.Before(mar))
	assert.True(t, mar.After(feb))
	assert.False(t, feb.Equal(mar))
	assert.True(t, feb.Equal(NewDate(2025, time.February, 26)))
}

func TestPatchEmpty(t *testing.T) {
	assert.True(t, Patch{}.Empty())

	category := "Food"
	assert.False(t, Patch{Category: &category}.Empty())
}
