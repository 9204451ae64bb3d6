package blockkit_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/reoring/blockkit"
	js "github.com/reoring/blockkit/jsonschema"
)

func TestJSONSchema_AllKinds(t *testing.T) {
	for _, k := range blockkit.Kinds() {
		s, err := blockkit.JSONSchema(k, blockkit.Limits{})
		require.NoError(t, err, k)
		require.Equal(t, js.Draft, s.Schema)
		require.Equal(t, string(k), s.Title)
	}
}

func TestJSONSchema_LimitsFlowIntoBounds(t *testing.T) {
	s, err := blockkit.JSONSchema(blockkit.KindContext, blockkit.Limits{MaxContextElements: 4, MaxBlockIDLength: 64})
	require.NoError(t, err)
	require.Equal(t, 4, *s.Properties["elements"].MaxItems)
	require.Equal(t, 1, *s.Properties["elements"].MinItems)
	require.Equal(t, 64, *s.Properties["block_id"].MaxLength)
	require.Equal(t, []string{"type", "elements"}, s.Required)
}

func TestJSONSchema_AttachmentsIsUnion(t *testing.T) {
	s, err := blockkit.JSONSchema(blockkit.KindAttachments, blockkit.Limits{})
	require.NoError(t, err)
	require.Len(t, s.OneOf, 2)
	require.Contains(t, s.OneOf[0].Properties, "fields")
	require.Contains(t, s.OneOf[1].Properties, "blocks")
	require.Equal(t, 25, *s.OneOf[1].Properties["blocks"].MaxItems)
}

func TestJSONSchema_UnknownKind(t *testing.T) {
	_, err := blockkit.JSONSchema("carousel", blockkit.Limits{})
	require.Error(t, err)
}

// conforms is a small validator covering the keywords JSONSchema emits.
func conforms(s *js.Schema, v any) bool {
	if len(s.OneOf) > 0 {
		n := 0
		for _, b := range s.OneOf {
			if conforms(b, v) {
				n++
			}
		}
		return n == 1
	}
	if len(s.AnyOf) > 0 {
		for _, b := range s.AnyOf {
			if conforms(b, v) {
				return true
			}
		}
		return false
	}
	switch s.Type {
	case "object":
		obj, ok := v.(map[string]any)
		if !ok {
			return false
		}
		for _, k := range s.Required {
			if _, ok := obj[k]; !ok {
				return false
			}
		}
		for k, val := range obj {
			ps, ok := s.Properties[k]
			if !ok {
				if s.AdditionalProperties == false {
					return false
				}
				continue
			}
			if !conforms(ps, val) {
				return false
			}
		}
		return true
	case "array":
		arr, ok := v.([]any)
		if !ok {
			return false
		}
		if s.MinItems != nil && len(arr) < *s.MinItems {
			return false
		}
		if s.MaxItems != nil && len(arr) > *s.MaxItems {
			return false
		}
		for _, it := range arr {
			if !conforms(s.Items, it) {
				return false
			}
		}
		return true
	case "string":
		str, ok := v.(string)
		if !ok {
			return false
		}
		if s.Const != nil && s.Const != str {
			return false
		}
		if len(s.Enum) > 0 {
			found := false
			for _, e := range s.Enum {
				if e == str {
					found = true
				}
			}
			if !found {
				return false
			}
		}
		return s.MaxLength == nil || len([]rune(str)) <= *s.MaxLength
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "integer":
		f, ok := v.(float64)
		return ok && f == float64(int64(f))
	}
	return true
}

func decodeDoc(t *testing.T, d blockkit.Document) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, d)), &v))
	return v
}

func TestJSONSchema_MessageAcceptsEncodedAttachments(t *testing.T) {
	msg := blockkit.NewMessage().
		Text("x").
		Attachment(func(a *blockkit.AttachmentBlock) { a.Divider() }).
		LegacyAttachment(func(a *blockkit.AttachmentField) { a.Field("k", "v", false).Timestamp(1700000000) }).
		Attachments(func(a *blockkit.AttachmentsBlock) { a.FieldPair("k", "v") }).
		Attachments(func(a *blockkit.AttachmentsBlock) {
			a.Block(func(b *blockkit.Block) { b.Header("h", nil) })
		})
	d, err := msg.ToDocument()
	require.NoError(t, err)
	doc := decodeDoc(t, d)

	s, err := blockkit.JSONSchema(blockkit.KindMessage, blockkit.Limits{})
	require.NoError(t, err)
	require.True(t, conforms(s, doc))

	union := s.Properties["attachments"].Items
	require.Empty(t, union.OneOf)
	require.Len(t, union.AnyOf, 3)
	for i, att := range doc.(map[string]any)["attachments"].([]any) {
		require.True(t, conforms(union, att), "attachment %d", i)
	}
}

func TestJSONSchema_AttachmentsBranchesAreExclusive(t *testing.T) {
	s, err := blockkit.JSONSchema(blockkit.KindAttachments, blockkit.Limits{})
	require.NoError(t, err)

	fields, err := blockkit.NewAttachmentsBlock().FieldPair("k", "v").ToDocument()
	require.NoError(t, err)
	blocks, err := blockkit.NewAttachmentsBlock().Block(func(b *blockkit.Block) { b.Divider() }).ToDocument()
	require.NoError(t, err)
	require.True(t, conforms(s, decodeDoc(t, fields)))
	require.True(t, conforms(s, decodeDoc(t, blocks)))

	// the encoder rejects an attachments block with neither body
	var empty any
	require.NoError(t, json.Unmarshal([]byte(`{"blocks":[],"color":"#f2c744"}`), &empty))
	require.False(t, conforms(s, empty))
}
