package gitops

import "strings"

// CommitMessage is a commit message split into its first line and the rest.
type CommitMessage struct {
	Subject string `json:"subject"`
	// Body holds the lines after the subject joined with "\n". It is nil
	// when the message has a single line.
	Body *string `json:"body,omitempty"`
}

// ParseCommitMessage splits s into subject and body. Lines end at "\n" or
// "\r\n"; a final line ending is optional.
func ParseCommitMessage(s string) CommitMessage {
	lines := splitLines(s)
	if len(lines) == 0 {
		return CommitMessage{}
	}

	msg := CommitMessage{Subject: lines[0]}
	if len(lines) > 1 {
		body := strings.Join(lines[1:], "\n")
		msg.Body = &body
	}
	return msg
}

// Combine joins subject and body back into a single message.
func (m CommitMessage) Combine() string {
	if m.Body == nil {
		return m.Subject
	}
	return m.Subject + "\n" + *m.Body
}

// splitLines splits on "\n", dropping the "\r" of "\r\n" endings and the
// empty string after a trailing line ending. A lone "\r" is kept.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	last := len(lines) - 1
	for i := range last {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if lines[last] == "" {
		lines = lines[:last]
	}
	return lines
}
