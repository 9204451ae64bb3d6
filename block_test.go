package blockkit_test

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/reoring/blockkit"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestBlock_DividerThenSection(t *testing.T) {
	var b blockkit.Block
	b.Divider().Section(func(s *blockkit.SectionBlock) { s.Text("hi") })

	out, err := b.ToArray()
	require.NoError(t, err)
	require.Equal(t,
		`[{"type":"divider"},{"type":"section","text":{"type":"plain_text","text":"hi"}}]`,
		mustJSON(t, out))
}

func TestBlock_EmptyFails(t *testing.T) {
	_, err := blockkit.NewBlock().ToArray()
	var empty *blockkit.EmptyCollectionError
	require.ErrorAs(t, err, &empty)
	require.Equal(t, "blocks", empty.Collection)
}

func TestBlock_BlockLimit(t *testing.T) {
	b := blockkit.NewBlock()
	for i := 0; i < 25; i++ {
		b.Divider()
	}
	out, err := b.ToArray()
	require.NoError(t, err)
	require.Len(t, out, 25)

	b.Divider()
	_, err = b.ToArray()
	var limit *blockkit.CollectionLimitExceededError
	require.ErrorAs(t, err, &limit)
	require.Equal(t, 25, limit.Limit)
	require.Equal(t, 26, limit.Count)
	require.Equal(t, "/blocks", limit.Path)
}

func TestBlock_CallbackRunsBeforeAppend(t *testing.T) {
	b := blockkit.NewBlock()
	b.Header("Title", func(h *blockkit.HeaderBlock) { h.Emoji(true).ID("h1") })
	b.Context(func(c *blockkit.ContextBlock) {
		c.Image("https://example.com/i.png", "icon")
		c.Text("by bot").Markdown()
	})
	b.Image("https://example.com/a.png", "chart").Title("Chart")

	out, err := b.ToArray()
	require.NoError(t, err)
	require.Equal(t,
		`[{"type":"header","text":{"type":"plain_text","text":"Title","emoji":true},"block_id":"h1"},`+
			`{"type":"context","elements":[{"type":"image","image_url":"https://example.com/i.png","alt_text":"icon"},{"type":"mrkdwn","text":"by bot"}]},`+
			`{"type":"image","image_url":"https://example.com/a.png","alt_text":"chart","title":{"type":"plain_text","text":"Chart"}}]`,
		mustJSON(t, out))
}

func TestBlockID_Length(t *testing.T) {
	ok := blockkit.NewDividerBlock().ID(strings.Repeat("a", 255))
	_, err := ok.ToDocument()
	require.NoError(t, err)

	// counted in characters, not bytes
	multi := blockkit.NewDividerBlock().ID(strings.Repeat("é", 255))
	_, err = multi.ToDocument()
	require.NoError(t, err)

	long := blockkit.NewDividerBlock().ID(strings.Repeat("a", 256))
	_, err = long.ToDocument()
	var tooLong *blockkit.IdentifierTooLongError
	require.ErrorAs(t, err, &tooLong)
	require.Equal(t, 255, tooLong.Limit)
	require.Equal(t, 256, tooLong.Length)
	require.Equal(t, "/block_id", tooLong.Path)
}

func TestSection_NeedsTextOrFields(t *testing.T) {
	_, err := blockkit.NewSectionBlock().ToDocument()
	var empty *blockkit.EmptyCollectionError
	require.ErrorAs(t, err, &empty)
	require.Equal(t, "fields", empty.Collection)

	s := blockkit.NewSectionBlock()
	s.Field("*a*").Markdown()
	s.Field("b")
	s.Accessory("https://example.com/x.png", "x")
	d, err := s.ToDocument()
	require.NoError(t, err)
	require.Equal(t,
		`{"type":"section","fields":[{"type":"mrkdwn","text":"*a*"},{"type":"plain_text","text":"b"}],"accessory":{"type":"image","image_url":"https://example.com/x.png","alt_text":"x"}}`,
		mustJSON(t, d))
}

func TestSection_FieldLimit(t *testing.T) {
	s := blockkit.NewSectionBlock()
	for i := 0; i < 26; i++ {
		s.Field("f")
	}
	_, err := s.ToDocument()
	var limit *blockkit.CollectionLimitExceededError
	require.ErrorAs(t, err, &limit)
	require.Equal(t, "fields", limit.Collection)
}

func TestContext_ElementBounds(t *testing.T) {
	_, err := blockkit.NewContextBlock().ToDocument()
	var empty *blockkit.EmptyCollectionError
	require.ErrorAs(t, err, &empty)
	require.Equal(t, "elements", empty.Collection)

	c := blockkit.NewContextBlock()
	for i := 0; i < 11; i++ {
		c.Text("x")
	}
	_, err = c.ToDocument()
	var limit *blockkit.CollectionLimitExceededError
	require.ErrorAs(t, err, &limit)
	require.Equal(t, 10, limit.Limit)

	_, err = blockkit.Encoder{Limits: blockkit.Limits{MaxContextElements: 11}}.Encode(c)
	require.NoError(t, err)
}

func TestText_OptionalsOnlyWhenSet(t *testing.T) {
	d, err := blockkit.NewText("").ToDocument()
	require.NoError(t, err)
	require.Equal(t, `{"type":"plain_text","text":""}`, mustJSON(t, d))

	d, err = blockkit.NewMarkdown("x").Verbatim(false).ToDocument()
	require.NoError(t, err)
	require.Equal(t, `{"type":"mrkdwn","text":"x","verbatim":false}`, mustJSON(t, d))
}

func TestEncoder_CollectReturnsEveryViolation(t *testing.T) {
	b := blockkit.NewBlock()
	b.Section(nil)
	b.Context(nil)
	b.Add(blockkit.NewDividerBlock().ID(strings.Repeat("x", 300)))

	_, err := blockkit.Encoder{Collect: true}.EncodeBlocks(b)
	require.Error(t, err)
	iss, ok := blockkit.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 3)
	require.Equal(t, "/blocks/0", iss[0].Path)
	require.Equal(t, blockkit.CodeEmptyCollection, iss[0].Code)
	require.Equal(t, "/blocks/1", iss[1].Path)
	require.Equal(t, "/blocks/2/block_id", iss[2].Path)
	require.Equal(t, blockkit.CodeInvalidLength, iss[2].Code)

	var tooLong *blockkit.IdentifierTooLongError
	require.True(t, errors.As(err, &tooLong))
	require.Equal(t, 300, tooLong.Length)
}

func TestEncoder_FailFastStopsAtFirst(t *testing.T) {
	b := blockkit.NewBlock()
	b.Section(nil)
	b.Context(nil)

	_, err := blockkit.Encoder{}.EncodeBlocks(b)
	var empty *blockkit.EmptyCollectionError
	require.ErrorAs(t, err, &empty)
	require.Equal(t, "fields", empty.Collection)

	iss, ok := blockkit.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
}

func TestValidate(t *testing.T) {
	require.Empty(t, blockkit.Validate(blockkit.NewDividerBlock()))
	iss := blockkit.Validate(blockkit.NewMessage())
	require.Len(t, iss, 1)
	require.Equal(t, "/", iss[0].Path)
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := blockkit.Issues{
		{Path: "/a", Code: blockkit.CodeEmptyCollection},
		{Path: "/b", Code: blockkit.CodeLimitExceeded},
		{Path: "/c", Code: blockkit.CodeInvalidLength},
		{Path: "/d", Code: blockkit.CodeUnknownKind},
	}
	require.Equal(t, "empty_collection at /a; limit_exceeded at /b; invalid_length at /c; ... (total 4)", iss.Error())
}
