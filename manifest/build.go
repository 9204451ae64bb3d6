package manifest

import (
	"context"
	"fmt"

	"github.com/reoring/blockkit"
	"github.com/reoring/blockkit/codec"
)

// Build replays the manifest through the builders. Problems with the
// manifest itself (unknown kinds, bad timestamps) are collected into
// blockkit.Issues; structural limits are left to the encoder.
func (m *Manifest) Build(ctx context.Context) (*blockkit.Message, error) {
	b := &builder{ctx: ctx, ts: codec.UnixTime()}
	msg := blockkit.NewMessage()
	setStr(m.Channel, func(v string) { msg.To(v) })
	setStr(m.Text, func(v string) { msg.Text(v) })
	setStr(m.Username, func(v string) { msg.Username(v) })
	setStr(m.IconEmoji, func(v string) { msg.IconEmoji(v) })
	setStr(m.IconURL, func(v string) { msg.IconURL(v) })
	setStr(m.ThreadTS, func(v string) { msg.ThreadTS(v) })
	if m.UnfurlLinks != nil {
		msg.UnfurlLinks(*m.UnfurlLinks)
	}
	if m.UnfurlMedia != nil {
		msg.UnfurlMedia(*m.UnfurlMedia)
	}

	root := blockkit.Root()
	msg.Blocks(func(bl *blockkit.Block) {
		bl.Add(b.blocks(m.Blocks, root.Field("blocks"))...)
	})
	for i, spec := range m.Attachments {
		b.attachment(msg, spec, root.Field("attachments").Index(i))
	}
	if len(b.issues) > 0 {
		return nil, b.issues
	}
	return msg, nil
}

type builder struct {
	ctx    context.Context
	ts     codec.Codec[string, int64]
	issues blockkit.Issues
}

func (b *builder) fail(is blockkit.Issue) {
	b.issues = blockkit.AppendIssues(b.issues, is)
}

func setStr(v *string, set func(string)) {
	if v != nil {
		set(*v)
	}
}

func (b *builder) blocks(specs []BlockSpec, p blockkit.PathRef) []blockkit.BlockElement {
	out := make([]blockkit.BlockElement, 0, len(specs))
	for i, spec := range specs {
		if el := b.block(spec, p.Index(i)); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// block builds one block, or records an issue and returns nil.
func (b *builder) block(spec BlockSpec, p blockkit.PathRef) blockkit.BlockElement {
	switch blockkit.Kind(spec.Type) {
	case blockkit.KindDivider:
		d := blockkit.NewDividerBlock()
		setStr(spec.BlockID, func(v string) { d.ID(v) })
		return d
	case blockkit.KindHeader:
		text := ""
		setStr(spec.Text, func(v string) { text = v })
		h := blockkit.NewHeaderBlock(text)
		if spec.Emoji != nil {
			h.Emoji(*spec.Emoji)
		}
		setStr(spec.BlockID, func(v string) { h.ID(v) })
		return h
	case blockkit.KindImage:
		img := blockkit.NewImageBlock(spec.URL, spec.Alt)
		setStr(spec.Title, func(v string) { img.Title(v) })
		setStr(spec.BlockID, func(v string) { img.ID(v) })
		return img
	case blockkit.KindSection:
		sec := blockkit.NewSectionBlock()
		if spec.Text != nil {
			t := sec.Text(*spec.Text)
			if spec.Markdown {
				t.Markdown()
			}
		}
		for _, f := range spec.Fields {
			t := sec.Field(f)
			if spec.Markdown {
				t.Markdown()
			}
		}
		if spec.Accessory != nil {
			sec.Accessory(spec.Accessory.URL, spec.Accessory.Alt)
		}
		setStr(spec.BlockID, func(v string) { sec.ID(v) })
		return sec
	case blockkit.KindContext:
		c := blockkit.NewContextBlock()
		for i, el := range spec.Elements {
			switch {
			case el.Image != nil && el.Text == nil:
				c.Image(el.Image.URL, el.Image.Alt)
			case el.Text != nil && el.Image == nil:
				t := c.Text(*el.Text)
				if el.Markdown {
					t.Markdown()
				}
			default:
				b.fail(p.Field("elements").Index(i).Issue(blockkit.CodeInvalidType, "context element needs exactly one of image or text"))
			}
		}
		setStr(spec.BlockID, func(v string) { c.ID(v) })
		return c
	default:
		b.fail(p.Field("type").Issue(blockkit.CodeUnknownKind, "unknown block type", "type", spec.Type))
		return nil
	}
}

func (b *builder) attachment(msg *blockkit.Message, spec AttachmentSpec, p blockkit.PathRef) {
	if !b.checkKeys(spec, p) {
		return
	}
	switch spec.Kind {
	case KindAttachment:
		msg.Attachment(func(a *blockkit.AttachmentBlock) {
			setStr(spec.Color, func(v string) { a.Color(blockkit.NamedColor(v)) })
			if h := spec.Header; h != nil {
				a.HeaderLink(h.Text, h.Link)
			}
			a.Add(b.blocks(spec.Blocks, p.Field("blocks"))...)
			if f := spec.Footer; f != nil {
				if f.Date != "" {
					a.FooterDated(f.Text, f.Icon, f.Date)
				} else {
					a.Footer(f.Text, f.Icon)
				}
			}
		})
	case KindLegacy:
		msg.LegacyAttachment(func(a *blockkit.AttachmentField) {
			applyMeta[*blockkit.AttachmentField](b, a, spec, p)
			for _, f := range spec.Fields {
				a.Field(f.Title, f.Value, f.Long)
			}
		})
	case KindAttachments:
		msg.Attachments(func(a *blockkit.AttachmentsBlock) {
			applyMeta[*blockkit.AttachmentsBlock](b, a, spec, p)
			setStr(spec.ImageURL, func(v string) { a.Image(v) })
			for _, f := range spec.Fields {
				a.Field(func(fo *blockkit.FieldObject) {
					fo.Title(f.Title).Content(f.Value)
					if f.Long {
						fo.Long()
					}
				})
			}
			if blocks := b.blocks(spec.Blocks, p.Field("blocks")); len(blocks) > 0 {
				a.Block(func(bl *blockkit.Block) { bl.Add(blocks...) })
			}
		})
	}
}

// Keys each attachment kind reads. Anything else populated is rejected.
var (
	metaKeys = []string{
		"block_id", "title", "title_link", "pretext", "text", "fallback", "author",
		"footer_icon", "ts", "callback_id", "thumb_url", "mrkdwn_in", "actions",
	}
	kindKeys = map[string]map[string]bool{
		KindAttachment:  keySet("color", "footer", "header", "blocks"),
		KindLegacy:      keySet(append([]string{"color", "footer", "fields"}, metaKeys...)...),
		KindAttachments: keySet(append([]string{"color", "footer", "fields", "blocks", "image_url"}, metaKeys...)...),
	}
)

func keySet(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// checkKeys reports whether spec.Kind is known, recording an issue for the
// kind itself or for each populated key the kind does not read.
func (b *builder) checkKeys(spec AttachmentSpec, p blockkit.PathRef) bool {
	allowed, ok := kindKeys[spec.Kind]
	if !ok {
		b.fail(p.Field("kind").Issue(blockkit.CodeUnknownKind, "unknown attachment kind", "kind", spec.Kind))
		return false
	}
	for _, k := range spec.populated() {
		if !allowed[k] {
			b.fail(p.Field(k).Issue(blockkit.CodeInvalidType, fmt.Sprintf("%s is not allowed for kind %s", k, spec.Kind), "key", k, "kind", spec.Kind))
		}
	}
	return true
}

// metaBuilder is the setter surface shared by the legacy attachment kinds.
type metaBuilder[S any] interface {
	Color(string) S
	BlockID(string) S
	Title(string) S
	URL(string) S
	Pretext(string) S
	Content(string) S
	Fallback(string) S
	Author(string) S
	AuthorLink(string) S
	AuthorIcon(string) S
	Footer(string) S
	FooterIcon(string) S
	CallbackID(string) S
	Thumbnail(string) S
	Timestamp(int64) S
	Markdown(...string) S
	Action(title, url, style string) S
}

func applyMeta[S any](b *builder, a metaBuilder[S], spec AttachmentSpec, p blockkit.PathRef) {
	setStr(spec.Color, func(v string) { a.Color(blockkit.NamedColor(v)) })
	setStr(spec.BlockID, func(v string) { a.BlockID(v) })
	setStr(spec.Title, func(v string) { a.Title(v) })
	setStr(spec.TitleLink, func(v string) { a.URL(v) })
	setStr(spec.Pretext, func(v string) { a.Pretext(v) })
	setStr(spec.Text, func(v string) { a.Content(v) })
	setStr(spec.Fallback, func(v string) { a.Fallback(v) })
	if au := spec.Author; au != nil {
		a.Author(au.Name)
		setStr(au.Link, func(v string) { a.AuthorLink(v) })
		setStr(au.Icon, func(v string) { a.AuthorIcon(v) })
	}
	if f := spec.Footer; f != nil {
		a.Footer(f.Text)
		if f.Icon != "" {
			a.FooterIcon(f.Icon)
		}
	}
	setStr(spec.FooterIcon, func(v string) { a.FooterIcon(v) })
	setStr(spec.CallbackID, func(v string) { a.CallbackID(v) })
	setStr(spec.ThumbURL, func(v string) { a.Thumbnail(v) })
	if spec.TS != nil {
		ts, err := b.ts.Decode(b.ctx, spec.TS.Raw)
		if err != nil {
			b.fail(p.Field("ts").Issue(blockkit.CodeInvalidFormat, "ts must be Unix seconds or RFC3339", "ts", spec.TS.Raw))
		} else {
			a.Timestamp(ts)
		}
	}
	if len(spec.MrkdwnIn) > 0 {
		a.Markdown(spec.MrkdwnIn...)
	}
	for _, act := range spec.Actions {
		a.Action(act.Text, act.URL, act.Style)
	}
}
