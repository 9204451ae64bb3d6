package blockkit

import "time"

// Action is a link button rendered under a legacy attachment.
type Action struct {
	Text  string
	URL   string
	Style string // "", "primary" or "danger"
}

func (a Action) encode() Document {
	return NewDocument("type", "button", "text", a.Text, "url", a.URL, "style", a.Style)
}

// attachmentMeta holds the scalar metadata shared by AttachmentField and
// AttachmentsBlock. Every setter stores unconditionally and returns self.
type attachmentMeta[S any] struct {
	colorable[S]
	blockID    Opt[string]
	title      Opt[string]
	url        Opt[string]
	pretext    Opt[string]
	content    Opt[string]
	fallback   Opt[string]
	thumbURL   Opt[string]
	imageURL   Opt[string]
	authorName Opt[string]
	authorLink Opt[string]
	authorIcon Opt[string]
	footer     Opt[string]
	footerIcon Opt[string]
	timestamp  Opt[int64]
	callbackID Opt[string]
	markdown   []string
	actions    []Action
}

func newAttachmentMeta[S any](self S) attachmentMeta[S] {
	return attachmentMeta[S]{colorable: colorable[S]{self: self}}
}

// BlockID sets the block_id.
func (m *attachmentMeta[S]) BlockID(id string) S {
	m.blockID = Some(id)
	return m.self
}

// Title sets the attachment title.
func (m *attachmentMeta[S]) Title(title string) S {
	m.title = Some(title)
	return m.self
}

// URL links the title.
func (m *attachmentMeta[S]) URL(url string) S {
	m.url = Some(url)
	return m.self
}

// Pretext sets the text shown above the attachment.
func (m *attachmentMeta[S]) Pretext(pretext string) S {
	m.pretext = Some(pretext)
	return m.self
}

// Content sets the attachment body text.
func (m *attachmentMeta[S]) Content(content string) S {
	m.content = Some(content)
	return m.self
}

// Fallback sets a plain-text summary of the attachment.
func (m *attachmentMeta[S]) Fallback(fallback string) S {
	m.fallback = Some(fallback)
	return m.self
}

// Thumbnail sets the thumbnail image URL.
func (m *attachmentMeta[S]) Thumbnail(url string) S {
	m.thumbURL = Some(url)
	return m.self
}

func (m *attachmentMeta[S]) Author(name string) S {
	m.authorName = Some(name)
	return m.self
}

func (m *attachmentMeta[S]) AuthorLink(url string) S {
	m.authorLink = Some(url)
	return m.self
}

func (m *attachmentMeta[S]) AuthorIcon(url string) S {
	m.authorIcon = Some(url)
	return m.self
}

func (m *attachmentMeta[S]) Footer(footer string) S {
	m.footer = Some(footer)
	return m.self
}

func (m *attachmentMeta[S]) FooterIcon(url string) S {
	m.footerIcon = Some(url)
	return m.self
}

// Timestamp sets ts in Unix seconds.
func (m *attachmentMeta[S]) Timestamp(ts int64) S {
	m.timestamp = Some(ts)
	return m.self
}

// TimestampAt sets ts from t.
func (m *attachmentMeta[S]) TimestampAt(t time.Time) S { return m.Timestamp(t.Unix()) }

func (m *attachmentMeta[S]) CallbackID(id string) S {
	m.callbackID = Some(id)
	return m.self
}

// Markdown lists the fields (text, pretext, fields) rendered as mrkdwn.
func (m *attachmentMeta[S]) Markdown(fields ...string) S {
	m.markdown = append([]string(nil), fields...)
	return m.self
}

// Action adds a link button.
func (m *attachmentMeta[S]) Action(title, url, style string) S {
	m.actions = append(m.actions, Action{Text: title, URL: url, Style: style})
	return m.self
}

// put merges the set scalars into d in wire order.
func (m *attachmentMeta[S]) put(d *Document) {
	putOpt(d, "block_id", m.blockID)
	putOpt(d, "author_name", m.authorName)
	putOpt(d, "author_link", m.authorLink)
	putOpt(d, "author_icon", m.authorIcon)
	d.Set("color", m.colorOrDefault())
	putOpt(d, "fallback", m.fallback)
	putOpt(d, "footer", m.footer)
	putOpt(d, "footer_icon", m.footerIcon)
	putOpt(d, "title", m.title)
	putOpt(d, "title_link", m.url)
	putOpt(d, "text", m.content)
	putOpt(d, "pretext", m.pretext)
	putOpt(d, "ts", m.timestamp)
	if len(m.actions) > 0 {
		actions := make([]Document, len(m.actions))
		for i, a := range m.actions {
			actions[i] = a.encode()
		}
		d.Set("actions", actions)
	}
	putOpt(d, "thumb_url", m.thumbURL)
	putOpt(d, "image_url", m.imageURL)
	putOpt(d, "callback_id", m.callbackID)
	if len(m.markdown) > 0 {
		d.Set("mrkdwn_in", m.markdown)
	}
}
