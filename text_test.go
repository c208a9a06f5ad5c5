package datafile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim_CutsetIsExact(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", trim(" \t\r\na \t\r\n"))

	// Vertical tab and form feed are not in the whitespace set.
	assert.Equal(t, "\va\f", trim(" \va\f "))
}

func TestSplitAssignment(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{
			name:      "equals",
			line:      "a=1",
			wantKey:   "a",
			wantValue: "1",
			wantOK:    true,
		},
		{
			name:      "colon",
			line:      "a: 1",
			wantKey:   "a",
			wantValue: "1",
			wantOK:    true,
		},
		{
			name:      "first indicator wins",
			line:      "a: b=c",
			wantKey:   "a",
			wantValue: "b=c",
			wantOK:    true,
		},
		{
			name:   "no indicator",
			line:   "just words",
			wantOK: false,
		},
		{
			name:      "empty value",
			line:      "a=",
			wantKey:   "a",
			wantValue: "",
			wantOK:    true,
		},
		{
			name:      "empty key",
			line:      "=1",
			wantKey:   "",
			wantValue: "1",
			wantOK:    true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			key, value, ok := splitAssignment(testCase.line)

			assert.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.wantKey, key)
			assert.Equal(t, testCase.wantValue, value)
		})
	}
}

func TestFormatCommentLines(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		comment string
		want    []string
	}{
		{
			name:    "empty comment produces nothing",
			comment: "",
			want:    nil,
		},
		{
			name:    "plain line gets the canonical indicator",
			comment: "note",
			want:    []string{"; note"},
		},
		{
			name:    "multiple lines",
			comment: "one\ntwo",
			want:    []string{"; one", "; two"},
		},
		{
			name:    "empty line becomes a bare indicator",
			comment: "one\n\ntwo",
			want:    []string{"; one", ";", "; two"},
		},
		{
			name:    "existing indicators are kept verbatim",
			comment: "#hash\n;semi",
			want:    []string{"#hash", ";semi"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, formatCommentLines(testCase.comment))
		})
	}
}
