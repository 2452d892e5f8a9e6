package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{
		"2024-03-15",
		"2024/03/15",
		"15-03-2024",
		"03/15/2024",
		"2024-03-15 10:30:00",
	} {
		v, defect := parseDate("d", s)
		require.Nil(t, defect, s)
		assert.Equal(t, time.March, v.Month(), s)
		assert.Equal(t, 15, v.Day(), s)
	}

	_, defect := parseDate("d", "15th March")
	require.NotNil(t, defect)
	assert.Equal(t, DefectCoercion, defect.Kind)
}

func TestParseMonth(t *testing.T) {
	v, defect := parseMonth("month", "2024-03")
	require.Nil(t, defect)
	assert.Equal(t, time.March, v.Month())

	// Full dates collapse to the first of the month.
	v, defect = parseMonth("month", "2024-03-21")
	require.Nil(t, defect)
	assert.Equal(t, 1, v.Day())

	_, defect = parseMonth("month", "March")
	assert.NotNil(t, defect)
}

func TestParseFloatRange(t *testing.T) {
	v, defect := parseFloatRange("attendancePercent", "87.5", 0, 100)
	require.Nil(t, defect)
	assert.Equal(t, 87.5, v)

	_, defect = parseFloatRange("attendancePercent", "105", 0, 100)
	require.NotNil(t, defect)
	assert.Contains(t, defect.Message, "out of range")

	_, defect = parseFloatRange("attendancePercent", "lots", 0, 100)
	assert.NotNil(t, defect)
}

func TestParseIntRange(t *testing.T) {
	v, defect := parseIntRange("currentSemester", " 5 ", 1, 8)
	require.Nil(t, defect)
	assert.Equal(t, 5, v)

	_, defect = parseIntRange("currentSemester", "9", 1, 8)
	assert.NotNil(t, defect)
	_, defect = parseIntRange("currentSemester", "0", 1, 8)
	assert.NotNil(t, defect)
}

func TestParseBoolTokenSet(t *testing.T) {
	assert.True(t, parseBool("true"))
	assert.True(t, parseBool("1"))
	assert.True(t, parseBool("TRUE"))
	assert.True(t, parseBool("True"))
	assert.True(t, parseBool(" true "))

	// Everything outside the token set is false, including plausible
	// truthy spellings.
	assert.False(t, parseBool("yes"))
	assert.False(t, parseBool("Y"))
	assert.False(t, parseBool("t"))
	assert.False(t, parseBool("0"))
	assert.False(t, parseBool(""))
}
