package team

import "strings"

// Member is one card of the about section. Bio is markdown.
type Member struct {
	Name   string
	Role   string
	Bio    string
	Social Social
}

// Social holds a member's profile links. Empty fields are not shown.
type Social struct {
	Twitter  string
	GitHub   string
	LinkedIn string
	Email    string
}

// Link is one rendered social link.
type Link struct {
	Label string
	URL   string
	// Text is what a plain-text card shows for the link.
	Text string
}

func Roster() []Member {
	return []Member{
		{
			Name: "Alex Johnson",
			Role: "Lead Developer",
			Bio:  "Alex specializes in **geospatial data visualization** and has been working with mapping technologies for over 5 years.",
			Social: Social{Twitter: "#", GitHub: "#", LinkedIn: "#", Email: "alex@example.com"},
		},
		{
			Name: "Jordan Lee",
			Role: "UX Designer",
			Bio:  "Jordan focuses on creating *intuitive user experiences* for complex data visualization tools and interactive maps.",
			Social: Social{Twitter: "#", GitHub: "#", LinkedIn: "#", Email: "jordan@example.com"},
		},
		{
			Name: "Sam Rivera",
			Role: "Data Engineer",
			Bio:  "Sam keeps the city datasets clean and current, from census tables to **housing market feeds**.",
			Social: Social{GitHub: "#", LinkedIn: "#", Email: "sam@example.com"},
		},
	}
}

var plainReplacer = strings.NewReplacer("**", "", "__", "", "*", "", "`", "")

// PlainBio drops markdown emphasis for terminal output.
func (m Member) PlainBio() string {
	return plainReplacer.Replace(m.Bio)
}

// Links lists the member's social links in display order.
func (m Member) Links() []Link {
	var links []Link
	add := func(label, url string) {
		if url != "" {
			links = append(links, Link{Label: label, URL: url, Text: label})
		}
	}
	add("Twitter", m.Social.Twitter)
	add("GitHub", m.Social.GitHub)
	add("LinkedIn", m.Social.LinkedIn)
	if m.Social.Email != "" {
		links = append(links, Link{Label: "Email", URL: "mailto:" + m.Social.Email, Text: m.Social.Email})
	}
	return links
}
