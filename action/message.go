package action

import "strings"

// Message is a commit message split into its title and body.
type Message struct {
	Title string
	Body  string
}

// SplitMessage splits a raw commit message into the first line and the
// rest, the same way git derives a subject from a full message.
func SplitMessage(raw string) Message {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimRight(raw, "\n")
	title, body, found := strings.Cut(raw, "\n")
	if !found {
		return Message{Title: strings.TrimSpace(title)}
	}
	return Message{
		Title: strings.TrimSpace(title),
		Body:  strings.TrimSpace(body),
	}
}
