// Package resources suggests curriculum resource links for a lesson plan.
// Everything is constructed from the topic, subject and grade level alone;
// no network calls are made and the output is deterministic.
package resources

import (
	"fmt"
	"net/url"
	"strings"
)

// Link is one suggested resource.
type Link struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// Set groups suggestions by medium for rendering.
type Set struct {
	Videos []Link `json:"videos"`
	Web    []Link `json:"web"`
}

// Suggest builds video and web resource links for the given topic, subject
// and grade level.
func Suggest(topic, subject, gradeLevel string) Set {
	topic = strings.TrimSpace(topic)
	subject = strings.TrimSpace(subject)
	class := classNumber(gradeLevel)

	return Set{
		Videos: videoLinks(topic, subject, class),
		Web:    webLinks(topic, subject, class),
	}
}

// classNumber strips a "Class " or "Grade " prefix so callers can pass
// either the bare number or the display form.
func classNumber(gradeLevel string) string {
	g := strings.TrimSpace(gradeLevel)
	for _, prefix := range []string{"class ", "grade "} {
		if len(g) > len(prefix) && strings.EqualFold(g[:len(prefix)], prefix) {
			return strings.TrimSpace(g[len(prefix):])
		}
	}
	return g
}

func videoLinks(topic, subject, class string) []Link {
	return []Link{
		{
			Title:       fmt.Sprintf("%s - CBSE Official", topic),
			URL:         channelSearch("cbabordsecondaryedu", fmt.Sprintf("%s class %s %s", topic, class, subject)),
			Description: fmt.Sprintf("Official CBSE videos for '%s' Class %s", topic, class),
			Source:      "CBSE Official",
		},
		{
			Title:       fmt.Sprintf("%s - NCERT Official", topic),
			URL:         channelSearch("NCERTOfficial", fmt.Sprintf("%s %s class %s", topic, subject, class)),
			Description: fmt.Sprintf("NCERT official videos for '%s'", topic),
			Source:      "NCERT Official",
		},
		{
			Title:       fmt.Sprintf("%s - DIKSHA", topic),
			URL:         resultsSearch(fmt.Sprintf("diksha %s class %s %s CBSE", topic, class, subject)),
			Description: fmt.Sprintf("DIKSHA educational content for '%s' Class %s", topic, class),
			Source:      "DIKSHA",
		},
		{
			Title:       fmt.Sprintf("%s - Swayam Prabha", topic),
			URL:         resultsSearch(fmt.Sprintf("swayam prabha %s %s class %s", topic, subject, class)),
			Description: fmt.Sprintf("Swayam Prabha educational videos for '%s'", topic),
			Source:      "Swayam Prabha",
		},
	}
}

func webLinks(topic, subject, class string) []Link {
	diksha := url.Values{}
	diksha.Set("searchQuery", topic)
	diksha.Set("board", "CBSE")
	diksha.Set("gradeLevel", "Class "+class)

	nroer := url.Values{}
	nroer.Set("search_text", topic)

	return []Link{
		{
			Title:       fmt.Sprintf("NCERT Textbook - Class %s %s", class, subject),
			URL:         "https://ncert.nic.in/textbook.php",
			Description: fmt.Sprintf("Official NCERT textbook for Class %s %s", class, subject),
			Source:      "NCERT Textbook",
		},
		{
			Title:       "e-Pathshala - Digital Textbooks",
			URL:         "https://epathshala.nic.in/",
			Description: fmt.Sprintf("Digital NCERT textbooks and resources for %s", subject),
			Source:      "e-Pathshala",
		},
		{
			Title:       fmt.Sprintf("DIKSHA - %s", topic),
			URL:         "https://diksha.gov.in/explore?" + diksha.Encode(),
			Description: fmt.Sprintf("Interactive learning content for '%s' on DIKSHA", topic),
			Source:      "DIKSHA Portal",
		},
		{
			Title:       fmt.Sprintf("NROER - %s", topic),
			URL:         "https://nroer.gov.in/home/search/?" + nroer.Encode(),
			Description: fmt.Sprintf("Open educational resources for '%s'", topic),
			Source:      "NROER",
		},
	}
}

func channelSearch(channel, query string) string {
	v := url.Values{}
	v.Set("query", query)
	return fmt.Sprintf("https://www.youtube.com/@%s/search?%s", channel, v.Encode())
}

func resultsSearch(query string) string {
	v := url.Values{}
	v.Set("search_query", query)
	return "https://www.youtube.com/results?" + v.Encode()
}
