package blockkit

// DividerBlock is a horizontal rule.
type DividerBlock struct {
	id Opt[string]
}

// NewDividerBlock returns a divider.
func NewDividerBlock() *DividerBlock { return &DividerBlock{} }

// ID sets the block_id.
func (b *DividerBlock) ID(id string) *DividerBlock {
	b.id = Some(id)
	return b
}

// ToDocument serializes the divider.
func (b *DividerBlock) ToDocument() (Document, error) { return Encoder{}.Encode(b) }

func (b *DividerBlock) encode(s *encodeState, p PathRef) (Document, error) {
	if err := s.checkBlockID(p, b.id); err != nil {
		return Document{}, err
	}
	d := NewDocument("type", "divider")
	putOpt(&d, "block_id", b.id)
	return d, nil
}

// ImageBlock is a standalone image.
type ImageBlock struct {
	url   string
	alt   string
	title Opt[string]
	id    Opt[string]
}

// NewImageBlock returns an image block.
func NewImageBlock(url, alt string) *ImageBlock {
	return &ImageBlock{url: url, alt: alt}
}

// Title sets a plain_text title shown above the image.
func (b *ImageBlock) Title(title string) *ImageBlock {
	b.title = Some(title)
	return b
}

// ID sets the block_id.
func (b *ImageBlock) ID(id string) *ImageBlock {
	b.id = Some(id)
	return b
}

// ToDocument serializes the image block.
func (b *ImageBlock) ToDocument() (Document, error) { return Encoder{}.Encode(b) }

func (b *ImageBlock) encode(s *encodeState, p PathRef) (Document, error) {
	if err := s.checkBlockID(p, b.id); err != nil {
		return Document{}, err
	}
	d := NewDocument("type", "image", "image_url", b.url, "alt_text", b.alt)
	if t, ok := b.title.Get(); ok {
		d.Set("title", NewText(t).encode())
	}
	putOpt(&d, "block_id", b.id)
	return d, nil
}

// HeaderBlock is a large plain_text heading.
type HeaderBlock struct {
	text *TextObject
	id   Opt[string]
}

// NewHeaderBlock returns a header with the given text.
func NewHeaderBlock(text string) *HeaderBlock {
	return &HeaderBlock{text: NewText(text)}
}

// Text replaces the heading text.
func (b *HeaderBlock) Text(text string) *HeaderBlock {
	b.text = NewText(text)
	return b
}

// Emoji controls emoji shortcode rendering in the heading.
func (b *HeaderBlock) Emoji(on bool) *HeaderBlock {
	if b.text == nil {
		b.text = NewText("")
	}
	b.text.Emoji(on)
	return b
}

// ID sets the block_id.
func (b *HeaderBlock) ID(id string) *HeaderBlock {
	b.id = Some(id)
	return b
}

// ToDocument serializes the header.
func (b *HeaderBlock) ToDocument() (Document, error) { return Encoder{}.Encode(b) }

func (b *HeaderBlock) encode(s *encodeState, p PathRef) (Document, error) {
	if err := s.checkBlockID(p, b.id); err != nil {
		return Document{}, err
	}
	text := b.text
	if text == nil {
		text = NewText("")
	}
	d := NewDocument("type", "header", "text", text.encode())
	putOpt(&d, "block_id", b.id)
	return d, nil
}

// SectionBlock holds a text, an optional list of text fields and an
// optional image accessory. It needs text or at least one field.
type SectionBlock struct {
	text      *TextObject
	fields    []*TextObject
	accessory *ImageElement
	id        Opt[string]
}

// NewSectionBlock returns an empty section.
func NewSectionBlock() *SectionBlock { return &SectionBlock{} }

// Text sets the section text and returns it for further configuration.
func (b *SectionBlock) Text(text string) *TextObject {
	b.text = NewText(text)
	return b.text
}

// Field appends a text field and returns it.
func (b *SectionBlock) Field(text string) *TextObject {
	f := NewText(text)
	b.fields = append(b.fields, f)
	return f
}

// Accessory attaches an image next to the text.
func (b *SectionBlock) Accessory(url, alt string) *ImageElement {
	b.accessory = NewImageElement(url, alt)
	return b.accessory
}

// ID sets the block_id.
func (b *SectionBlock) ID(id string) *SectionBlock {
	b.id = Some(id)
	return b
}

// ToDocument serializes the section.
func (b *SectionBlock) ToDocument() (Document, error) { return Encoder{}.Encode(b) }

func (b *SectionBlock) encode(s *encodeState, p PathRef) (Document, error) {
	if b.text == nil {
		if err := s.requireElements(p, "fields", len(b.fields)); err != nil {
			return Document{}, err
		}
	}
	if err := s.checkCount(p, "fields", len(b.fields), s.limits.MaxFields); err != nil {
		return Document{}, err
	}
	if err := s.checkBlockID(p, b.id); err != nil {
		return Document{}, err
	}
	d := NewDocument("type", "section")
	if b.text != nil {
		d.Set("text", b.text.encode())
	}
	if len(b.fields) > 0 {
		fields, err := encodeAll(s, b.fields, p.Field("fields"))
		if err != nil {
			return Document{}, err
		}
		d.Set("fields", fields)
	}
	if b.accessory != nil {
		d.Set("accessory", b.accessory.encode())
	}
	putOpt(&d, "block_id", b.id)
	return d, nil
}

// ContextBlock shows small images and text in a row.
type ContextBlock struct {
	elements []contextElement
	id       Opt[string]
}

// NewContextBlock returns an empty context.
func NewContextBlock() *ContextBlock { return &ContextBlock{} }

// Image appends an image element and returns it.
func (b *ContextBlock) Image(url, alt string) *ImageElement {
	e := NewImageElement(url, alt)
	b.elements = append(b.elements, e)
	return e
}

// Text appends a plain_text element and returns it.
func (b *ContextBlock) Text(text string) *TextObject {
	t := NewText(text)
	b.elements = append(b.elements, t)
	return t
}

// ID sets the block_id.
func (b *ContextBlock) ID(id string) *ContextBlock {
	b.id = Some(id)
	return b
}

// ToDocument serializes the context.
func (b *ContextBlock) ToDocument() (Document, error) { return Encoder{}.Encode(b) }

func (b *ContextBlock) encode(s *encodeState, p PathRef) (Document, error) {
	if err := s.requireElements(p, "elements", len(b.elements)); err != nil {
		return Document{}, err
	}
	if err := s.checkCount(p, "elements", len(b.elements), s.limits.MaxContextElements); err != nil {
		return Document{}, err
	}
	if err := s.checkBlockID(p, b.id); err != nil {
		return Document{}, err
	}
	elements, err := encodeAll(s, b.elements, p.Field("elements"))
	if err != nil {
		return Document{}, err
	}
	d := NewDocument("type", "context", "elements", elements)
	putOpt(&d, "block_id", b.id)
	return d, nil
}
