package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainBio(t *testing.T) {
	m := Member{Bio: "Works on **maps** and *charts* with `go`."}
	assert.Equal(t, "Works on maps and charts with go.", m.PlainBio())
}

func TestRosterHasUniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Roster() {
		assert.False(t, seen[m.Name], m.Name)
		seen[m.Name] = true
		assert.NotEmpty(t, m.Role)
		assert.NotEmpty(t, m.Bio)
	}
}

func TestLinks(t *testing.T) {
	m := Member{Social: Social{GitHub: "https://github.com/oak", Email: "oak@example.com"}}

	assert.Equal(t, []Link{
		{Label: "GitHub", URL: "https://github.com/oak", Text: "GitHub"},
		{Label: "Email", URL: "mailto:oak@example.com", Text: "oak@example.com"},
	}, m.Links())

	assert.Empty(t, Member{}.Links())
}

func TestRosterCarriesContacts(t *testing.T) {
	for _, m := range Roster() {
		links := m.Links()
		if assert.NotEmpty(t, links, m.Name) {
			last := links[len(links)-1]
			assert.Equal(t, "Email", last.Label, m.Name)
			assert.Contains(t, last.URL, "mailto:", m.Name)
		}
	}
}
