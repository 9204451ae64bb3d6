package blockkit

// Kind tags a Node variant.
type Kind string

const (
	KindDivider         Kind = "divider"
	KindImage           Kind = "image"
	KindSection         Kind = "section"
	KindHeader          Kind = "header"
	KindContext         Kind = "context"
	KindAttachment      Kind = "attachment"       // *AttachmentBlock
	KindAttachments     Kind = "attachments"      // *AttachmentsBlock
	KindAttachmentField Kind = "attachment_field" // *AttachmentField
	KindField           Kind = "field"            // *FieldBlock
	KindFieldObject     Kind = "field_object"
	KindImageElement    Kind = "image_element"
	KindText            Kind = "text"
	KindMessage         Kind = "message"
)

// Kinds lists every Node variant in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindDivider, KindImage, KindSection, KindHeader, KindContext,
		KindAttachment, KindAttachments, KindAttachmentField,
		KindField, KindFieldObject, KindImageElement, KindText, KindMessage,
	}
}

// Node is any value that serializes to a Document. The set of variants is
// closed: only types declared in this package implement it, and the encoder
// dispatches on the concrete variant.
type Node interface {
	Kind() Kind
	sealed()
}

// BlockElement is a Node that may appear in a blocks list: a divider,
// image, section, header or context block.
type BlockElement interface {
	Node
	block()
}

// contextElement is a Node that may appear in a context block.
type contextElement interface {
	Node
	contextElement()
}

// attachmentNode is a Node that may appear in a message's attachments.
type attachmentNode interface {
	Node
	attachment()
}

func (*DividerBlock) Kind() Kind     { return KindDivider }
func (*ImageBlock) Kind() Kind       { return KindImage }
func (*SectionBlock) Kind() Kind     { return KindSection }
func (*HeaderBlock) Kind() Kind      { return KindHeader }
func (*ContextBlock) Kind() Kind     { return KindContext }
func (*AttachmentBlock) Kind() Kind  { return KindAttachment }
func (*AttachmentsBlock) Kind() Kind { return KindAttachments }
func (*AttachmentField) Kind() Kind  { return KindAttachmentField }
func (*FieldBlock) Kind() Kind       { return KindField }
func (*FieldObject) Kind() Kind      { return KindFieldObject }
func (*ImageElement) Kind() Kind     { return KindImageElement }
func (*TextObject) Kind() Kind       { return KindText }
func (*Message) Kind() Kind          { return KindMessage }

func (*DividerBlock) sealed()     {}
func (*ImageBlock) sealed()       {}
func (*SectionBlock) sealed()     {}
func (*HeaderBlock) sealed()      {}
func (*ContextBlock) sealed()     {}
func (*AttachmentBlock) sealed()  {}
func (*AttachmentsBlock) sealed() {}
func (*AttachmentField) sealed()  {}
func (*FieldBlock) sealed()       {}
func (*FieldObject) sealed()      {}
func (*ImageElement) sealed()     {}
func (*TextObject) sealed()       {}
func (*Message) sealed()          {}

func (*DividerBlock) block() {}
func (*ImageBlock) block()   {}
func (*SectionBlock) block() {}
func (*HeaderBlock) block()  {}
func (*ContextBlock) block() {}

func (*ImageElement) contextElement() {}
func (*TextObject) contextElement()   {}

func (*AttachmentBlock) attachment()  {}
func (*AttachmentsBlock) attachment() {}
func (*AttachmentField) attachment()  {}
