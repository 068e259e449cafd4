package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())

	_, err = ParseDate("15/03/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("2026-13-40")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewDateTruncates(t *testing.T) {
	d := NewDate(time.Date(2026, 3, 15, 23, 59, 1, 0, time.UTC))
	assert.Equal(t, "2026-03-15", d.String())
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestDateComparisons(t *testing.T) {
	a, _ := ParseDate("2026-01-01")
	b, _ := ParseDate("2026-01-15")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(a))
	assert.True(t, a.AddDays(14).Equal(b))
}

func TestDateJSONRoundTrip(t *testing.T) {
	type payload struct {
		Deadline *Date `json:"deadline"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"deadline":"2026-06-30"}`), &p))
	require.NotNil(t, p.Deadline)
	assert.Equal(t, "2026-06-30", p.Deadline.String())

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"deadline":"2026-06-30"}`, string(b))
}

func TestDateJSONInvalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"not-a-date"`), &d)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2026-02-01", d.String())

	require.NoError(t, d.Scan("2026-02-02"))
	assert.Equal(t, "2026-02-02", d.String())

	assert.Error(t, d.Scan(42))
}
