// Package mailmap parses Git's .mailmap format and resolves commit
// identities to their canonical name and email.
//
// The accepted line forms are the four documented in gitmailmap(5):
//
//	Proper Name <commit@email.xx>
//	<proper@email.xx> <commit@email.xx>
//	Proper Name <proper@email.xx> <commit@email.xx>
//	Proper Name <proper@email.xx> Commit Name <commit@email.xx>
//
// Emails and names are matched case-insensitively. An entry that also names
// the commit name wins over an email-only entry for the same email.
package mailmap

import (
	"bufio"
	"bytes"
	"strings"
)

// replacement holds the canonical values for a match. Empty fields mean
// "keep the recorded value".
type replacement struct {
	name  string
	email string
}

// entry groups every mapping registered for one commit email.
type entry struct {
	simple replacement
	byName map[string]replacement
}

// Mailmap maps recorded (name, email) pairs to canonical identities.
// The zero value is not usable; call New or Parse.
type Mailmap struct {
	entries map[string]*entry
}

// New returns an empty Mailmap. Resolve on an empty Mailmap returns its
// input unchanged.
func New() *Mailmap {
	return &Mailmap{entries: make(map[string]*entry)}
}

// Parse builds a Mailmap from the contents of a .mailmap file.
func Parse(data []byte) *Mailmap {
	m := New()
	m.AddBuffer(data)
	return m
}

// Len returns the number of distinct commit emails with a mapping.
func (m *Mailmap) Len() int {
	return len(m.entries)
}

// AddBuffer adds every mapping found in data. Later lines override earlier
// ones for the same key. Lines that cannot be parsed are ignored, as Git does.
func (m *Mailmap) AddBuffer(data []byte) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		m.addLine(scanner.Text())
	}
}

// Add registers a mapping. commitEmail is required; commitName may be
// empty to match any name recorded with that email. properName and
// properEmail may be empty to keep the recorded value.
func (m *Mailmap) Add(properName, properEmail, commitName, commitEmail string) {
	if commitEmail == "" {
		return
	}

	key := strings.ToLower(commitEmail)
	ent, ok := m.entries[key]
	if !ok {
		ent = &entry{}
		m.entries[key] = ent
	}

	if commitName == "" {
		if properName != "" {
			ent.simple.name = properName
		}
		if properEmail != "" {
			ent.simple.email = properEmail
		}
		return
	}

	if ent.byName == nil {
		ent.byName = make(map[string]replacement)
	}
	ent.byName[strings.ToLower(commitName)] = replacement{name: properName, email: properEmail}
}

// Resolve returns the canonical name and email for a recorded identity.
// Values without a mapping are returned unchanged.
func (m *Mailmap) Resolve(name, email string) (string, string) {
	if m == nil {
		return name, email
	}

	ent, ok := m.entries[strings.ToLower(email)]
	if !ok {
		return name, email
	}

	repl := ent.simple
	if named, found := ent.byName[strings.ToLower(name)]; found {
		repl = named
	}

	if repl.name != "" {
		name = repl.name
	}
	if repl.email != "" {
		email = repl.email
	}
	return name, email
}

// addLine parses a single .mailmap line.
func (m *Mailmap) addLine(line string) {
	line = strings.TrimRight(line, "\r")
	if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return
	}

	name1, email1, rest, ok := parseNameAndEmail(line)
	if !ok {
		return
	}

	name2, email2, _, ok := parseNameAndEmail(rest)
	if !ok {
		// Single pair: the email is the commit email, name is the proper name.
		m.Add(name1, "", "", email1)
		return
	}

	m.Add(name1, email1, name2, email2)
}

// parseNameAndEmail extracts "Name <email>" from the start of s and returns
// the remainder after the closing bracket.
func parseNameAndEmail(s string) (name, email, rest string, ok bool) {
	left := strings.IndexByte(s, '<')
	if left < 0 {
		return "", "", "", false
	}
	right := strings.IndexByte(s[left+1:], '>')
	if right < 0 {
		return "", "", "", false
	}
	right += left + 1

	name = strings.TrimSpace(s[:left])
	// A '#' before the first bracket starts a comment.
	if strings.Contains(name, "#") {
		return "", "", "", false
	}
	return name, s[left+1 : right], s[right+1:], true
}
