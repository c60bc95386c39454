package llm

// PartKind discriminates the two message-part variants explicitly
// rather than by optional-field presence.
type PartKind int

const (
	PartText PartKind = iota
	PartMedia
)

// Part is one piece of a message: text or inline binary data.
type Part interface {
	Kind() PartKind
}

// TextPart is a run of plain text.
type TextPart struct {
	Text string
}

func (TextPart) Kind() PartKind { return PartText }

// MediaPart is inline binary data, e.g. a photographed worksheet.
type MediaPart struct {
	MIMEType string
	Data     []byte
}

func (MediaPart) Kind() PartKind { return PartMedia }

// Message is one conversation turn.
type Message struct {
	Role  string // "user" or "assistant"
	Parts []Part
}

// TextMessage builds a single-part text message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{TextPart{Text: text}}}
}

// Text concatenates the text parts of a message.
func (m Message) Text() string {
	var out string
	for _, p := range m.Parts {
		if t, ok := p.(TextPart); ok {
			out += t.Text
		}
	}
	return out
}
