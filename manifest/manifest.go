// Package manifest decodes a declarative YAML or JSON description of a
// message and replays it through the blockkit builders.
//
// Example (YAML):
//
//	text: Deploy finished
//	blocks:
//	  - type: header
//	    text: Deploy
//	  - type: divider
//	  - type: section
//	    text: "*api* is live"
//	    markdown: true
//	attachments:
//	  - kind: attachment
//	    color: success
//	    header: {text: Release notes, link: "https://example.com/r"}
//	    footer: {text: ci, icon: "https://example.com/ci.png", date: "2025-01-01"}
//	  - kind: legacy
//	    title: Build
//	    ts: "2025-01-01T00:00:00Z"
//	    fields:
//	      - {title: Status, value: green}
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Decode.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Manifest is the root of a message description.
type Manifest struct {
	Channel     *string          `yaml:"channel,omitempty" json:"channel,omitempty"`
	Text        *string          `yaml:"text,omitempty" json:"text,omitempty"`
	Username    *string          `yaml:"username,omitempty" json:"username,omitempty"`
	IconEmoji   *string          `yaml:"icon_emoji,omitempty" json:"icon_emoji,omitempty"`
	IconURL     *string          `yaml:"icon_url,omitempty" json:"icon_url,omitempty"`
	ThreadTS    *string          `yaml:"thread_ts,omitempty" json:"thread_ts,omitempty"`
	UnfurlLinks *bool            `yaml:"unfurl_links,omitempty" json:"unfurl_links,omitempty"`
	UnfurlMedia *bool            `yaml:"unfurl_media,omitempty" json:"unfurl_media,omitempty"`
	Blocks      []BlockSpec      `yaml:"blocks,omitempty" json:"blocks,omitempty"`
	Attachments []AttachmentSpec `yaml:"attachments,omitempty" json:"attachments,omitempty"`
}

// BlockSpec describes one block. Type selects which keys apply:
//
//	divider:  block_id
//	header:   text, emoji, block_id
//	image:    url, alt, title, block_id
//	section:  text, markdown, fields, accessory, block_id
//	context:  elements, block_id
type BlockSpec struct {
	Type      string        `yaml:"type" json:"type"`
	BlockID   *string       `yaml:"block_id,omitempty" json:"block_id,omitempty"`
	Text      *string       `yaml:"text,omitempty" json:"text,omitempty"`
	Markdown  bool          `yaml:"markdown,omitempty" json:"markdown,omitempty"`
	Emoji     *bool         `yaml:"emoji,omitempty" json:"emoji,omitempty"`
	Fields    []string      `yaml:"fields,omitempty" json:"fields,omitempty"`
	Accessory *ImageSpec    `yaml:"accessory,omitempty" json:"accessory,omitempty"`
	URL       string        `yaml:"url,omitempty" json:"url,omitempty"`
	Alt       string        `yaml:"alt,omitempty" json:"alt,omitempty"`
	Title     *string       `yaml:"title,omitempty" json:"title,omitempty"`
	Elements  []ElementSpec `yaml:"elements,omitempty" json:"elements,omitempty"`
}

// ImageSpec is an image reference.
type ImageSpec struct {
	URL string `yaml:"url" json:"url"`
	Alt string `yaml:"alt" json:"alt"`
}

// ElementSpec is one context element: either an image or a text.
type ElementSpec struct {
	Image    *ImageSpec `yaml:"image,omitempty" json:"image,omitempty"`
	Text     *string    `yaml:"text,omitempty" json:"text,omitempty"`
	Markdown bool       `yaml:"markdown,omitempty" json:"markdown,omitempty"`
}

// Attachment kinds.
const (
	KindAttachment  = "attachment"  // blocks wrapped in a colored bar
	KindLegacy      = "legacy"      // scalar metadata plus fields
	KindAttachments = "attachments" // scalar metadata plus fields or blocks
)

// AttachmentSpec describes one attachment. Kind selects the builder.
type AttachmentSpec struct {
	Kind  string  `yaml:"kind" json:"kind"`
	Color *string `yaml:"color,omitempty" json:"color,omitempty"` // hex or success|warning|info|error

	// attachment
	Header *HeaderSpec `yaml:"header,omitempty" json:"header,omitempty"`

	// all kinds; for attachment a mapping {text, icon, date}, otherwise a string
	Footer *FooterSpec `yaml:"footer,omitempty" json:"footer,omitempty"`

	// attachment and attachments
	Blocks []BlockSpec `yaml:"blocks,omitempty" json:"blocks,omitempty"`

	// legacy and attachments
	BlockID    *string      `yaml:"block_id,omitempty" json:"block_id,omitempty"`
	Title      *string      `yaml:"title,omitempty" json:"title,omitempty"`
	TitleLink  *string      `yaml:"title_link,omitempty" json:"title_link,omitempty"`
	Pretext    *string      `yaml:"pretext,omitempty" json:"pretext,omitempty"`
	Text       *string      `yaml:"text,omitempty" json:"text,omitempty"`
	Fallback   *string      `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Author     *AuthorSpec  `yaml:"author,omitempty" json:"author,omitempty"`
	FooterIcon *string      `yaml:"footer_icon,omitempty" json:"footer_icon,omitempty"`
	TS         *Timestamp   `yaml:"ts,omitempty" json:"ts,omitempty"`
	CallbackID *string      `yaml:"callback_id,omitempty" json:"callback_id,omitempty"`
	ThumbURL   *string      `yaml:"thumb_url,omitempty" json:"thumb_url,omitempty"`
	ImageURL   *string      `yaml:"image_url,omitempty" json:"image_url,omitempty"`
	MrkdwnIn   []string     `yaml:"mrkdwn_in,omitempty" json:"mrkdwn_in,omitempty"`
	Fields     []FieldSpec  `yaml:"fields,omitempty" json:"fields,omitempty"`
	Actions    []ActionSpec `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// populated lists the wire keys set on the spec, in declaration order.
func (s AttachmentSpec) populated() []string {
	var out []string
	add := func(key string, set bool) {
		if set {
			out = append(out, key)
		}
	}
	add("color", s.Color != nil)
	add("header", s.Header != nil)
	add("footer", s.Footer != nil)
	add("blocks", len(s.Blocks) > 0)
	add("block_id", s.BlockID != nil)
	add("title", s.Title != nil)
	add("title_link", s.TitleLink != nil)
	add("pretext", s.Pretext != nil)
	add("text", s.Text != nil)
	add("fallback", s.Fallback != nil)
	add("author", s.Author != nil)
	add("footer_icon", s.FooterIcon != nil)
	add("ts", s.TS != nil)
	add("callback_id", s.CallbackID != nil)
	add("thumb_url", s.ThumbURL != nil)
	add("image_url", s.ImageURL != nil)
	add("mrkdwn_in", len(s.MrkdwnIn) > 0)
	add("fields", len(s.Fields) > 0)
	add("actions", len(s.Actions) > 0)
	return out
}

// HeaderSpec is the bold heading of a block attachment.
type HeaderSpec struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link,omitempty" json:"link,omitempty"`
}

// AuthorSpec names the author of a legacy attachment.
type AuthorSpec struct {
	Name string  `yaml:"name" json:"name"`
	Link *string `yaml:"link,omitempty" json:"link,omitempty"`
	Icon *string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// FieldSpec is a title/value field.
type FieldSpec struct {
	Title string `yaml:"title" json:"title"`
	Value string `yaml:"value" json:"value"`
	Long  bool   `yaml:"long,omitempty" json:"long,omitempty"`
}

// ActionSpec is a link button.
type ActionSpec struct {
	Text  string `yaml:"text" json:"text"`
	URL   string `yaml:"url" json:"url"`
	Style string `yaml:"style,omitempty" json:"style,omitempty"`
}

// FooterSpec is either a bare footer text or a {text, icon, date} mapping.
type FooterSpec struct {
	Text string `yaml:"text" json:"text"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Date string `yaml:"date,omitempty" json:"date,omitempty"`
}

// UnmarshalYAML accepts a scalar or a mapping.
func (f *FooterSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		f.Text = n.Value
		return nil
	}
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if k := n.Content[i]; !footerKeys[k.Value] {
				return fmt.Errorf("line %d: field %s not found in footer", k.Line, k.Value)
			}
		}
	}
	type plain FooterSpec
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*f = FooterSpec(p)
	return nil
}

var footerKeys = map[string]bool{"text": true, "icon": true, "date": true}

// UnmarshalJSON accepts a string or an object.
func (f *FooterSpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &f.Text)
	}
	type plain FooterSpec
	var p plain
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("footer: %w", err)
	}
	*f = FooterSpec(p)
	return nil
}

// Timestamp holds the raw ts value: integer seconds or an RFC3339 string.
// It is converted when the manifest is built.
type Timestamp struct {
	Raw string
}

// UnmarshalYAML keeps the scalar text.
func (t *Timestamp) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: ts must be a scalar", n.Line)
	}
	t.Raw = n.Value
	return nil
}

// UnmarshalJSON accepts a number or a string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &t.Raw)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ts must be a number or a string: %w", err)
	}
	t.Raw = n.String()
	return nil
}

// Decode parses data in the given format. Unknown keys are rejected.
func Decode(data []byte, format string) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
	case FormatYAML, "":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
	return &m, nil
}

// Load reads a manifest file; the extension picks the format.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Decode(data, FormatFor(path))
}

// FormatFor returns the format implied by the file extension.
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}
