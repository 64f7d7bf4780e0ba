package attendance

import (
	"attendance-backend/lib/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	at := time.Date(2024, time.March, 4, 9, 15, 0, 0, timezone.Location)

	record, err := NewRecord("CS2021001", "  Jane Doe\n", "\tComputer Science ", at)
	require.NoError(t, err)
	require.Equal(t, Record{
		RollNum:    "CS2021001",
		Name:       "Jane Doe",
		Department: "Computer Science",
		Time:       at,
	}, record)
}

func TestNewRecordDefaultsTime(t *testing.T) {
	before := timezone.Now()
	record, err := NewRecord("CS2021001", "Jane Doe", "Computer Science", time.Time{})
	require.NoError(t, err)
	require.False(t, record.Time.Before(before))
	require.Equal(t, timezone.Location, record.Time.Location())
}

func TestNewRecordRejectsBlankFields(t *testing.T) {
	cases := []struct {
		name       string
		rollNum    string
		fullName   string
		department string
		fields     string
	}{
		{name: "empty roll", rollNum: "", fullName: "Jane", department: "CSE", fields: "roll_num"},
		{name: "whitespace roll", rollNum: " \t", fullName: "Jane", department: "CSE", fields: "roll_num"},
		{name: "whitespace name", rollNum: "1", fullName: "   ", department: "CSE", fields: "name"},
		{name: "empty department", rollNum: "1", fullName: "Jane", department: "", fields: "department"},
		{name: "everything", rollNum: "", fullName: "\n", department: " ", fields: "roll_num, name, department"},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewRecord(test.rollNum, test.fullName, test.department, time.Time{})
			require.ErrorIs(t, err, ErrInvalidRecord)
			require.Contains(t, err.Error(), test.fields+" cannot be empty")
		})
	}
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable("in")
	require.NoError(t, err)
	require.Equal(t, TableIn, table)

	table, err = ParseTable("out")
	require.NoError(t, err)
	require.Equal(t, TableOut, table)

	_, err = ParseTable("in; DROP TABLE in")
	require.Error(t, err)
}
