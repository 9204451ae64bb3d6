package blockkit

// Text object types.
const (
	PlainText = "plain_text"
	Mrkdwn    = "mrkdwn"
)

// TextObject is a text composition object.
type TextObject struct {
	typ      string
	text     string
	emoji    Opt[bool]
	verbatim Opt[bool]
}

// NewText returns a plain_text object.
func NewText(text string) *TextObject { return &TextObject{typ: PlainText, text: text} }

// NewMarkdown returns a mrkdwn object.
func NewMarkdown(text string) *TextObject { return &TextObject{typ: Mrkdwn, text: text} }

// Markdown switches the object to mrkdwn.
func (t *TextObject) Markdown() *TextObject {
	t.typ = Mrkdwn
	return t
}

// Plain switches the object to plain_text.
func (t *TextObject) Plain() *TextObject {
	t.typ = PlainText
	return t
}

// Emoji controls emoji shortcode rendering in plain_text.
func (t *TextObject) Emoji(on bool) *TextObject {
	t.emoji = Some(on)
	return t
}

// Verbatim disables automatic link and mention parsing in mrkdwn.
func (t *TextObject) Verbatim(on bool) *TextObject {
	t.verbatim = Some(on)
	return t
}

// ToDocument serializes the text object.
func (t *TextObject) ToDocument() (Document, error) { return Encoder{}.Encode(t) }

func (t *TextObject) encode() Document {
	typ := t.typ
	if typ == "" {
		typ = PlainText
	}
	d := NewDocument("type", typ, "text", t.text)
	putOpt(&d, "emoji", t.emoji)
	putOpt(&d, "verbatim", t.verbatim)
	return d
}

// ImageElement is an image usable inside context blocks and as a section
// accessory.
type ImageElement struct {
	url string
	alt string
}

// NewImageElement returns an image element.
func NewImageElement(url, alt string) *ImageElement {
	return &ImageElement{url: url, alt: alt}
}

// AltText replaces the alternative text.
func (e *ImageElement) AltText(alt string) *ImageElement {
	e.alt = alt
	return e
}

// ToDocument serializes the image element.
func (e *ImageElement) ToDocument() (Document, error) { return Encoder{}.Encode(e) }

func (e *ImageElement) encode() Document {
	return NewDocument("type", "image", "image_url", e.url, "alt_text", e.alt)
}
