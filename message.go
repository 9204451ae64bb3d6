package blockkit

// Message is the root payload handed to a transport. It needs text, blocks
// or at least one attachment.
type Message struct {
	channel     Opt[string]
	text        Opt[string]
	username    Opt[string]
	iconEmoji   Opt[string]
	iconURL     Opt[string]
	threadTS    Opt[string]
	unfurlLinks Opt[bool]
	unfurlMedia Opt[bool]
	blocks      Block
	attachments []attachmentNode
}

// NewMessage returns an empty message.
func NewMessage() *Message { return &Message{} }

// To sets the destination channel.
func (m *Message) To(channel string) *Message {
	m.channel = Some(channel)
	return m
}

// Text sets the top-level text, also used as the notification fallback.
func (m *Message) Text(text string) *Message {
	m.text = Some(text)
	return m
}

func (m *Message) Username(name string) *Message {
	m.username = Some(name)
	return m
}

func (m *Message) IconEmoji(emoji string) *Message {
	m.iconEmoji = Some(emoji)
	return m
}

func (m *Message) IconURL(url string) *Message {
	m.iconURL = Some(url)
	return m
}

// ThreadTS posts the message as a reply in the given thread.
func (m *Message) ThreadTS(ts string) *Message {
	m.threadTS = Some(ts)
	return m
}

func (m *Message) UnfurlLinks(on bool) *Message {
	m.unfurlLinks = Some(on)
	return m
}

func (m *Message) UnfurlMedia(on bool) *Message {
	m.unfurlMedia = Some(on)
	return m
}

// Blocks lets cb append to the message's block list.
func (m *Message) Blocks(cb func(*Block)) *Message {
	if cb != nil {
		cb(&m.blocks)
	}
	return m
}

// Attachment appends a block-based attachment configured by cb.
func (m *Message) Attachment(cb func(*AttachmentBlock)) *Message {
	a := NewAttachmentBlock()
	if cb != nil {
		cb(a)
	}
	m.attachments = append(m.attachments, a)
	return m
}

// LegacyAttachment appends a field-based attachment configured by cb.
func (m *Message) LegacyAttachment(cb func(*AttachmentField)) *Message {
	a := NewAttachmentField()
	if cb != nil {
		cb(a)
	}
	m.attachments = append(m.attachments, a)
	return m
}

// Attachments appends a fields-or-blocks attachment configured by cb.
func (m *Message) Attachments(cb func(*AttachmentsBlock)) *Message {
	a := NewAttachmentsBlock()
	if cb != nil {
		cb(a)
	}
	m.attachments = append(m.attachments, a)
	return m
}

// ToDocument serializes the message with DefaultLimits.
func (m *Message) ToDocument() (Document, error) { return Encoder{}.Encode(m) }

func (m *Message) encode(s *encodeState, p PathRef) (Document, error) {
	if !m.text.IsSet() && len(m.attachments) == 0 {
		if err := s.requireElements(p, "blocks", m.blocks.Len()); err != nil {
			return Document{}, err
		}
	}
	if err := s.checkCount(p, "blocks", m.blocks.Len(), s.limits.MaxBlocks); err != nil {
		return Document{}, err
	}

	var d Document
	putOpt(&d, "channel", m.channel)
	putOpt(&d, "text", m.text)
	putOpt(&d, "username", m.username)
	putOpt(&d, "icon_emoji", m.iconEmoji)
	putOpt(&d, "icon_url", m.iconURL)
	putOpt(&d, "thread_ts", m.threadTS)
	putOpt(&d, "unfurl_links", m.unfurlLinks)
	putOpt(&d, "unfurl_media", m.unfurlMedia)
	if m.blocks.Len() > 0 {
		blocks, err := encodeAll(s, m.blocks.blocks, p.Field("blocks"))
		if err != nil {
			return Document{}, err
		}
		d.Set("blocks", blocks)
	}
	if len(m.attachments) > 0 {
		attachments, err := encodeAll(s, m.attachments, p.Field("attachments"))
		if err != nil {
			return Document{}, err
		}
		d.Set("attachments", attachments)
	}
	return d, nil
}
