package blockkit

import "fmt"

// AttachmentBlock wraps a list of blocks in a colored attachment. It always
// serializes under "blocks"; an empty list is allowed.
//
// Use NewAttachmentBlock or Message.Attachment; the zero value cannot chain.
type AttachmentBlock struct {
	colorable[*AttachmentBlock]
	blocks []BlockElement
}

// NewAttachmentBlock returns an empty attachment with the default color.
func NewAttachmentBlock() *AttachmentBlock {
	a := &AttachmentBlock{}
	a.colorable = colorable[*AttachmentBlock]{self: a}
	return a
}

// Divider appends a divider.
func (a *AttachmentBlock) Divider() *AttachmentBlock {
	a.blocks = append(a.blocks, NewDividerBlock())
	return a
}

// Header appends a bold mrkdwn section.
func (a *AttachmentBlock) Header(text string) *AttachmentBlock {
	return a.header("*" + text + "*")
}

// HeaderLink appends a bold mrkdwn section linking text to link.
func (a *AttachmentBlock) HeaderLink(text, link string) *AttachmentBlock {
	if link == "" {
		return a.Header(text)
	}
	return a.header(fmt.Sprintf("*<%s|%s>*", link, text))
}

func (a *AttachmentBlock) header(markup string) *AttachmentBlock {
	sec := NewSectionBlock()
	sec.Text(markup).Markdown()
	a.blocks = append(a.blocks, sec)
	return a
}

// Image appends an image block.
func (a *AttachmentBlock) Image(url, alt string) *AttachmentBlock {
	a.blocks = append(a.blocks, NewImageBlock(url, alt))
	return a
}

// Section appends a section block configured by cb.
func (a *AttachmentBlock) Section(cb func(*SectionBlock)) *AttachmentBlock {
	sec := NewSectionBlock()
	if cb != nil {
		cb(sec)
	}
	a.blocks = append(a.blocks, sec)
	return a
}

// Context appends a context block configured by cb.
func (a *AttachmentBlock) Context(cb func(*ContextBlock)) *AttachmentBlock {
	c := NewContextBlock()
	if cb != nil {
		cb(c)
	}
	a.blocks = append(a.blocks, c)
	return a
}

// Footer appends a context with icon followed by text.
func (a *AttachmentBlock) Footer(text, icon string) *AttachmentBlock {
	return a.footer(text, icon)
}

// FooterDated appends a context with icon followed by "text | date".
func (a *AttachmentBlock) FooterDated(text, icon, date string) *AttachmentBlock {
	return a.footer(text+" | "+date, icon)
}

func (a *AttachmentBlock) footer(text, icon string) *AttachmentBlock {
	c := NewContextBlock()
	c.Image(icon, "icon")
	c.Text(text)
	a.blocks = append(a.blocks, c)
	return a
}

// Add appends pre-built blocks.
func (a *AttachmentBlock) Add(blocks ...BlockElement) *AttachmentBlock {
	a.blocks = append(a.blocks, blocks...)
	return a
}

// ToDocument serializes the attachment with DefaultLimits.
func (a *AttachmentBlock) ToDocument() (Document, error) { return Encoder{}.Encode(a) }

func (a *AttachmentBlock) encode(s *encodeState, p PathRef) (Document, error) {
	if err := s.checkCount(p, "blocks", len(a.blocks), s.limits.MaxBlocks); err != nil {
		return Document{}, err
	}
	blocks, err := encodeAll(s, a.blocks, p.Field("blocks"))
	if err != nil {
		return Document{}, err
	}
	return NewDocument("blocks", blocks, "color", a.colorOrDefault()), nil
}
