package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Well-known role values. Unknown roles are kept as-is and rendered with the
// assistant's visual style.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn. Content carries the lightweight markup handled by
// the markup package; everything here is caller-owned and read-only.
type Message struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Author  string   `json:"author,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Attachment describes a file that was attached to the conversation.
type Attachment struct {
	Name string `json:"name"`
}

// Transcript is an ordered conversation plus its attached files.
type Transcript struct {
	Title       string       `json:"title,omitempty"`
	Messages    []Message    `json:"messages"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// AuthorLabel returns the chip label drawn above a message's bubble: the
// explicit author when present, otherwise the role.
func (m Message) AuthorLabel() string {
	if label := strings.TrimSpace(m.Author); label != "" {
		return label
	}
	if m.Role == "" {
		return RoleAssistant
	}
	return m.Role
}

// Decode reads a transcript from JSON.
func Decode(r io.Reader) (*Transcript, error) {
	var t Transcript
	dec := json.NewDecoder(r)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	return &t, nil
}

// Load reads a transcript from a JSON file.
func Load(path string) (*Transcript, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript %s: %w", path, err)
	}
	defer file.Close()
	return Decode(file)
}
