// Package blockkit builds chat message payloads (blocks, attachments, fields)
// with fluent builders and compiles them into ordered wire documents.
//
// - Builders: Block, Message, AttachmentBlock, AttachmentField, AttachmentsBlock and the block variants
// - A closed set of Node variants, serialized by one dispatcher (Encoder)
// - Ordered Documents that encode to JSON (goccy/go-json) or YAML (yaml.v3)
// - Structural errors with JSON Pointer paths, fail-fast or collected into Issues
//
// Design policy:
//   - Nothing is validated at mutation time; limits are checked when encoding.
//   - Unset optional scalars are omitted. Presence is tracked explicitly (Opt),
//     so an explicitly set empty string is still emitted.
//   - No network I/O: a transport takes the Document from here.
//
// Typical usage:
//
//	msg := blockkit.NewMessage().
//	    Text("Deploy finished").
//	    Blocks(func(b *blockkit.Block) {
//	        b.Header("Deploy", nil).
//	            Divider().
//	            Section(func(s *blockkit.SectionBlock) { s.Text("*api* is live").Markdown() })
//	    }).
//	    Attachment(func(a *blockkit.AttachmentBlock) { a.Success().Footer("ci", "https://example.com/ci.png") })
//
//	doc, err := msg.ToDocument()
//	_ = blockkit.WriteJSON(os.Stdout, doc, true)
package blockkit
