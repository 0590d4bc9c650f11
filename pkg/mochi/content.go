package mochi

import "strings"

// ContentSeparator is the literal line Mochi uses to divide the front and back
// of a card inside its single Markdown content string.
const ContentSeparator = "\n---\n"

// CardFace is the condensed view of a card: the content split into front and
// back at the first separator. It exists only at the boundary between raw API
// data and callers; cards are never stored in this form.
type CardFace struct {
	Front string `json:"front" yaml:"front"`
	Back  string `json:"back" yaml:"back"`
}

// SplitContent splits raw card content on the first ContentSeparator, trimming
// surrounding whitespace from both halves. Content without a separator yields
// the whole trimmed string as the front and an empty back.
func SplitContent(content string) CardFace {
	front, back, found := strings.Cut(content, ContentSeparator)
	if !found {
		return CardFace{Front: strings.TrimSpace(content)}
	}
	return CardFace{
		Front: strings.TrimSpace(front),
		Back:  strings.TrimSpace(back),
	}
}

// JoinContent builds raw card content from a front and back.
func JoinContent(front, back string) string {
	return front + ContentSeparator + back
}
