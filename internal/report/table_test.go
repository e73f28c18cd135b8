package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/employee-dashboard/internal/types"
)

var rows = []types.Employee{
	{ID: "1", FullName: "Suresh Raina", Email: "suresh@example.com", Gender: types.GenderMale, DOB: "1986-11-27", State: "Uttar Pradesh", Active: true},
	{ID: "2", FullName: "Mithali Raj", Gender: types.GenderFemale, DOB: "1982-12-03", State: "Rajasthan", Active: false},
}

func TestWriteTable_Interactive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rows, Options{}))

	out := buf.String()
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Suresh Raina")
	assert.Contains(t, lines[1], "Active")
	assert.Contains(t, lines[2], "Inactive")
	assert.Contains(t, lines[2], " - ", "blank email is shown as a dash")
	assert.Contains(t, out, "2 employee(s)")
}

func TestWriteTable_PrintHidesInteractiveColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rows, Options{Print: true}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.NotContains(t, out, "ID")
	assert.NotContains(t, out, "employee(s)")
}

func TestWriteTable_CustomStatusAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Status: func(active bool) string {
		if active {
			return "[on]"
		}
		return "[off]"
	}}
	require.NoError(t, WriteTable(&buf, rows, opts))
	assert.Contains(t, buf.String(), "[on]")
	assert.Contains(t, buf.String(), "[off]")

	buf.Reset()
	require.NoError(t, WriteTable(&buf, nil, Options{Print: true}))
	assert.Contains(t, buf.String(), "No employees found.")
}
