package jira

// Document is a minimal Atlassian Document Format tree: one paragraph holding
// one text node. Field order matches the wire shape Jira documents.
type Document struct {
	Type    string      `json:"type"`
	Version int         `json:"version"`
	Content []Paragraph `json:"content"`
}

// Paragraph is an ADF paragraph node.
type Paragraph struct {
	Type    string     `json:"type"`
	Content []TextNode `json:"content"`
}

// TextNode is an ADF text leaf.
type TextNode struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewDocument wraps plain text in an ADF document.
func NewDocument(text string) Document {
	return Document{
		Type:    "doc",
		Version: 1,
		Content: []Paragraph{{
			Type:    "paragraph",
			Content: []TextNode{{Type: "text", Text: text}},
		}},
	}
}
