package gitops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func strPtr(s string) *string { return &s }

func TestParseCommitMessage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		subject string
		body    *string
	}{
		{name: "empty", input: "", subject: "", body: nil},
		{name: "subject only", input: "foo", subject: "foo", body: nil},
		{name: "trailing newline", input: "foo\n", subject: "foo", body: nil},
		{name: "crlf normalized", input: "foo\nbar\r\ntest", subject: "foo", body: strPtr("bar\ntest")},
		{name: "blank second line", input: "foo\n\n", subject: "foo", body: strPtr("")},
		{name: "conventional", input: "feat: x\n\nlonger text", subject: "feat: x", body: strPtr("\nlonger text")},
		{name: "lone cr kept", input: "a\rb", subject: "a\rb", body: nil},
		{name: "crlf subject", input: "foo\r\nbar", subject: "foo", body: strPtr("bar")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ParseCommitMessage(tt.input)
			assert.Equal(t, tt.subject, msg.Subject)
			if tt.body == nil {
				assert.Nil(t, msg.Body)
				return
			}
			require.NotNil(t, msg.Body)
			assert.Equal(t, *tt.body, *msg.Body)
		})
	}
}

func TestCombine(t *testing.T) {
	assert.Equal(t, "foo", CommitMessage{Subject: "foo"}.Combine())
	assert.Equal(t, "foo\nbar", CommitMessage{Subject: "foo", Body: strPtr("bar")}.Combine())
	assert.Equal(t, "foo\n", CommitMessage{Subject: "foo", Body: strPtr("")}.Combine())
}

func TestCombine_DropsTrailingLineEnding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "a\n", want: "a"},
		{input: "a\r\n", want: "a"},
		{input: "a\nb\n", want: "a\nb"},
		{input: "a\n\n", want: "a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommitMessage(tt.input).Combine())
		})
	}
}

// Round trips hold for messages without a trailing line ending; see
// TestCombine_DropsTrailingLineEnding for the lossy case.
func TestCombine_InvertsParse(t *testing.T) {
	piece := rapid.SampledFrom([]string{"a", "foo", " ", "\t", "ü", "\n", "\r\n", "\r", "\n\n"})

	rapid.Check(t, func(t *rapid.T) {
		s := strings.TrimRight(strings.Join(rapid.SliceOf(piece).Draw(t, "pieces"), ""), "\n")

		got := ParseCommitMessage(s).Combine()

		want := strings.ReplaceAll(s, "\r\n", "\n")
		if got != want {
			t.Fatalf("round trip of %q: got %q, want %q", s, got, want)
		}
	})
}
