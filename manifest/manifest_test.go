package manifest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/blockkit"
	"github.com/reoring/blockkit/manifest"
)

const deployYAML = `
channel: "#deploys"
text: Deploy finished
blocks:
  - type: header
    text: Deploy
  - type: divider
    block_id: d1
  - type: section
    text: "*api* is live"
    markdown: true
    accessory: {url: "https://example.com/a.png", alt: api}
  - type: context
    elements:
      - image: {url: "https://example.com/i.png", alt: icon}
      - text: by ci
attachments:
  - kind: attachment
    color: success
    header: {text: Release notes, link: "https://example.com/r"}
    blocks:
      - type: divider
    footer: {text: ci, icon: "https://example.com/ci.png", date: "2025-01-01"}
  - kind: legacy
    title: Build
    footer: ci
    ts: "2025-01-01T00:00:00Z"
    fields:
      - {title: Status, value: green}
      - {title: Notes, value: none, long: true}
  - kind: attachments
    color: "#123456"
    ts: 1700000000
    fields:
      - {title: Env, value: prod}
`

func build(t *testing.T, data, format string) (blockkit.Document, error) {
	t.Helper()
	m, err := manifest.Decode([]byte(data), format)
	require.NoError(t, err)
	msg, err := m.Build(context.Background())
	if err != nil {
		return blockkit.Document{}, err
	}
	return msg.ToDocument()
}

func TestBuild_YAML(t *testing.T) {
	d, err := build(t, deployYAML, manifest.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, []string{"channel", "text", "blocks", "attachments"}, d.Keys())

	m := d.Map()
	blocks := m["blocks"].([]any)
	require.Len(t, blocks, 4)
	require.Equal(t, "d1", blocks[1].(map[string]any)["block_id"])
	section := blocks[2].(map[string]any)
	require.Equal(t, "mrkdwn", section["text"].(map[string]any)["type"])

	atts := m["attachments"].([]any)
	require.Len(t, atts, 3)

	first := atts[0].(map[string]any)
	require.Equal(t, blockkit.ColorSuccess, first["color"])
	inner := first["blocks"].([]any)
	require.Len(t, inner, 3)
	require.Equal(t, "*<https://example.com/r|Release notes>*", inner[0].(map[string]any)["text"].(map[string]any)["text"])
	require.Equal(t, "divider", inner[1].(map[string]any)["type"])
	footer := inner[2].(map[string]any)["elements"].([]any)[1].(map[string]any)
	require.Equal(t, "ci | 2025-01-01", footer["text"])

	legacy := atts[1].(map[string]any)
	require.Equal(t, int64(1735689600), legacy["ts"])
	require.Equal(t, "ci", legacy["footer"])
	require.Equal(t, blockkit.ColorDefault, legacy["color"])
	require.Len(t, legacy["fields"], 2)

	third := atts[2].(map[string]any)
	require.Equal(t, "#123456", third["color"])
	require.Equal(t, int64(1700000000), third["ts"])
	require.Contains(t, third, "fields")
}

func TestBuild_JSON(t *testing.T) {
	const data = `{
  "text": "hi",
  "attachments": [
    {"kind": "legacy", "ts": 1700000000, "footer": {"text": "ci", "icon": "https://example.com/i.png"}},
    {"kind": "legacy", "ts": "1700000001", "author": {"name": "bot", "link": "https://example.com"}}
  ]
}`
	d, err := build(t, data, manifest.FormatJSON)
	require.NoError(t, err)
	atts := d.Map()["attachments"].([]any)
	first := atts[0].(map[string]any)
	require.Equal(t, int64(1700000000), first["ts"])
	require.Equal(t, "https://example.com/i.png", first["footer_icon"])
	second := atts[1].(map[string]any)
	require.Equal(t, int64(1700000001), second["ts"])
	require.Equal(t, "bot", second["author_name"])
	require.Equal(t, "https://example.com", second["author_link"])
}

func TestBuild_CollectsManifestIssues(t *testing.T) {
	const data = `
blocks:
  - type: table
  - type: context
    elements:
      - {text: a, image: {url: u, alt: a}}
attachments:
  - kind: poll
  - kind: legacy
    ts: yesterday
`
	m, err := manifest.Decode([]byte(data), manifest.FormatYAML)
	require.NoError(t, err)
	_, err = m.Build(context.Background())
	iss, ok := blockkit.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 4)
	require.Equal(t, "/blocks/0/type", iss[0].Path)
	require.Equal(t, blockkit.CodeUnknownKind, iss[0].Code)
	require.Equal(t, "/blocks/1/elements/0", iss[1].Path)
	require.Equal(t, blockkit.CodeInvalidType, iss[1].Code)
	require.Equal(t, "/attachments/0/kind", iss[2].Path)
	require.Equal(t, "/attachments/1/ts", iss[3].Path)
	require.Equal(t, blockkit.CodeInvalidFormat, iss[3].Code)
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := manifest.Decode([]byte("txt: hi\n"), manifest.FormatYAML)
	require.Error(t, err)
	_, err = manifest.Decode([]byte(`{"txt":"hi"}`), manifest.FormatJSON)
	require.Error(t, err)
	_, err = manifest.Decode([]byte(`{}`), "toml")
	require.Error(t, err)
}

func TestDecode_EmptyYAML(t *testing.T) {
	m, err := manifest.Decode(nil, manifest.FormatYAML)
	require.NoError(t, err)
	require.Empty(t, m.Blocks)
}

func TestFormatFor(t *testing.T) {
	require.Equal(t, manifest.FormatJSON, manifest.FormatFor("a/b.JSON"))
	require.Equal(t, manifest.FormatYAML, manifest.FormatFor("a/b.yml"))
}

func TestBuild_RejectsKeysOutsideKind(t *testing.T) {
	const data = `
text: x
attachments:
  - kind: attachment
    title: Build
    fields:
      - {title: a, value: b}
  - kind: legacy
    header: {text: h}
    blocks:
      - type: divider
    image_url: "https://example.com/i.png"
  - kind: attachments
    header: {text: h}
    fields:
      - {title: a, value: b}
`
	m, err := manifest.Decode([]byte(data), manifest.FormatYAML)
	require.NoError(t, err)
	_, err = m.Build(context.Background())
	iss, ok := blockkit.AsIssues(err)
	require.True(t, ok)

	paths := make([]string, len(iss))
	for i, it := range iss {
		require.Equal(t, blockkit.CodeInvalidType, it.Code)
		paths[i] = it.Path
	}
	require.Equal(t, []string{
		"/attachments/0/title",
		"/attachments/0/fields",
		"/attachments/1/header",
		"/attachments/1/blocks",
		"/attachments/1/image_url",
		"/attachments/2/header",
	}, paths)
	require.Equal(t, "legacy", iss[2].Params["kind"])
}

func TestDecode_FooterRejectsUnknownKeys(t *testing.T) {
	const y = `
attachments:
  - kind: attachment
    footer: {text: x, icno: "https://example.com/i.png"}
`
	_, err := manifest.Decode([]byte(y), manifest.FormatYAML)
	require.ErrorContains(t, err, "icno")

	const j = `{"attachments":[{"kind":"legacy","footer":{"text":"x","icno":"u"}}]}`
	_, err = manifest.Decode([]byte(j), manifest.FormatJSON)
	require.Error(t, err)

	m, err := manifest.Decode([]byte(`{"attachments":[{"kind":"legacy","footer":"ci"}]}`), manifest.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "ci", m.Attachments[0].Footer.Text)
}
