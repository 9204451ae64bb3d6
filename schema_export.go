package blockkit

import (
	"fmt"

	js "github.com/reoring/blockkit/jsonschema"
)

// JSONSchema describes the wire document of a node kind under the given
// limits. The result mirrors the encoder: every bounded list carries
// maxItems and block_id carries maxLength.
func JSONSchema(k Kind, l Limits) (*js.Schema, error) {
	l = l.withDefaults()
	s, err := kindSchema(k, l)
	if err != nil {
		return nil, err
	}
	s.Schema = js.Draft
	s.Title = string(k)
	return s, nil
}

func kindSchema(k Kind, l Limits) (*js.Schema, error) {
	switch k {
	case KindText:
		return textSchema(), nil
	case KindImageElement:
		return imageElementSchema(), nil
	case KindField, KindFieldObject:
		return fieldSchema(), nil
	case KindDivider, KindImage, KindSection, KindHeader, KindContext:
		return blockSchema(k, l), nil
	case KindAttachment:
		return js.Object(map[string]*js.Schema{
			"blocks": js.Array(anyBlockSchema(l), 0, l.MaxBlocks),
			"color":  js.String(),
		}, "blocks", "color"), nil
	case KindAttachmentField:
		s := attachmentMetaSchema(l)
		s.Properties["fields"] = js.Array(fieldSchema(), 0, l.MaxFields)
		s.Required = []string{"fields", "color"}
		return s, nil
	case KindAttachments:
		withFields := attachmentMetaSchema(l)
		withFields.Properties["fields"] = js.Array(fieldSchema(), 1, l.MaxFields)
		withFields.Required = []string{"fields", "color"}
		withBlocks := attachmentMetaSchema(l)
		withBlocks.Properties["blocks"] = js.Array(anyBlockSchema(l), 1, l.MaxBlocks)
		withBlocks.Required = []string{"blocks", "color"}
		return js.OneOf(withFields, withBlocks), nil
	case KindMessage:
		attachment, _ := kindSchema(KindAttachment, l)
		legacy, _ := kindSchema(KindAttachmentField, l)
		attachments, _ := kindSchema(KindAttachments, l)
		// {blocks, color} is both an attachment and an attachments document,
		// so the union is anyOf.
		return js.Object(map[string]*js.Schema{
			"channel":      js.String(),
			"text":         js.String(),
			"username":     js.String(),
			"icon_emoji":   js.String(),
			"icon_url":     js.String(),
			"thread_ts":    js.String(),
			"unfurl_links": js.Bool(),
			"unfurl_media": js.Bool(),
			"blocks":       js.Array(anyBlockSchema(l), 1, l.MaxBlocks),
			"attachments":  js.Array(js.AnyOf(attachment, legacy, attachments), 1, -1),
		}), nil
	default:
		return nil, fmt.Errorf("blockkit: unknown kind %q", k)
	}
}

func textSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"type":     {Type: "string", Enum: []any{PlainText, Mrkdwn}},
		"text":     js.String(),
		"emoji":    js.Bool(),
		"verbatim": js.Bool(),
	}, "type", "text")
}

func imageElementSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"type":      js.ConstString("image"),
		"image_url": js.String(),
		"alt_text":  js.String(),
	}, "type", "image_url", "alt_text")
}

func fieldSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"title": js.String(),
		"value": js.String(),
		"short": js.Bool(),
	}, "title", "value", "short")
}

func anyBlockSchema(l Limits) *js.Schema {
	return js.OneOf(
		blockSchema(KindDivider, l),
		blockSchema(KindImage, l),
		blockSchema(KindSection, l),
		blockSchema(KindHeader, l),
		blockSchema(KindContext, l),
	)
}

func blockSchema(k Kind, l Limits) *js.Schema {
	props := map[string]*js.Schema{
		"type":     js.ConstString(string(k)),
		"block_id": js.StringMax(l.MaxBlockIDLength),
	}
	required := []string{"type"}
	switch k {
	case KindImage:
		props["image_url"] = js.String()
		props["alt_text"] = js.String()
		props["title"] = textSchema()
		required = append(required, "image_url", "alt_text")
	case KindSection:
		props["text"] = textSchema()
		props["fields"] = js.Array(textSchema(), 1, l.MaxFields)
		props["accessory"] = imageElementSchema()
	case KindHeader:
		props["text"] = textSchema()
		required = append(required, "text")
	case KindContext:
		props["elements"] = js.Array(js.OneOf(imageElementSchema(), textSchema()), 1, l.MaxContextElements)
		required = append(required, "elements")
	}
	return js.Object(props, required...)
}

func attachmentMetaSchema(l Limits) *js.Schema {
	button := js.Object(map[string]*js.Schema{
		"type":  js.ConstString("button"),
		"text":  js.String(),
		"url":   js.String(),
		"style": js.String(),
	}, "type", "text", "url", "style")
	return js.Object(map[string]*js.Schema{
		"block_id":    js.StringMax(l.MaxBlockIDLength),
		"author_name": js.String(),
		"author_link": js.String(),
		"author_icon": js.String(),
		"color":       js.String(),
		"fallback":    js.String(),
		"footer":      js.String(),
		"footer_icon": js.String(),
		"title":       js.String(),
		"title_link":  js.String(),
		"text":        js.String(),
		"pretext":     js.String(),
		"ts":          js.Integer(),
		"actions":     js.Array(button, 1, -1),
		"thumb_url":   js.String(),
		"image_url":   js.String(),
		"callback_id": js.String(),
		"mrkdwn_in":   js.Array(js.String(), 1, -1),
	})
}
