package blockkit

// AttachmentsBlock is an attachment whose body is either a list of fields or
// a list of blocks.
//
// Body selection: the document carries "fields" only when fields are
// present and blocks are not. In every other case, including both lists
// populated, it carries "blocks". An attachment with neither fails with
// EmptyCollectionError.
type AttachmentsBlock struct {
	attachmentMeta[*AttachmentsBlock]
	blocks []BlockElement
	fields []*FieldObject
}

// NewAttachmentsBlock returns an empty attachment with the default color.
func NewAttachmentsBlock() *AttachmentsBlock {
	a := &AttachmentsBlock{}
	a.attachmentMeta = newAttachmentMeta(a)
	return a
}

// Block appends the blocks built by cb on a fresh container.
func (a *AttachmentsBlock) Block(cb func(*Block)) *AttachmentsBlock {
	b := NewBlock()
	if cb != nil {
		cb(b)
	}
	a.blocks = append(a.blocks, b.blocks...)
	return a
}

// Field appends a field configured by cb.
func (a *AttachmentsBlock) Field(cb func(*FieldObject)) *AttachmentsBlock {
	f := NewFieldObject()
	if cb != nil {
		cb(f)
	}
	a.fields = append(a.fields, f)
	return a
}

// FieldPair appends a short field.
func (a *AttachmentsBlock) FieldPair(title, content string) *AttachmentsBlock {
	a.fields = append(a.fields, NewFieldObject().Title(title).Content(content))
	return a
}

// Fields replaces the field list.
func (a *AttachmentsBlock) Fields(fields ...*FieldObject) *AttachmentsBlock {
	a.fields = append([]*FieldObject(nil), fields...)
	return a
}

// Image sets a full-width image URL.
func (a *AttachmentsBlock) Image(url string) *AttachmentsBlock {
	a.imageURL = Some(url)
	return a
}

// ToDocument serializes the attachment with DefaultLimits.
func (a *AttachmentsBlock) ToDocument() (Document, error) { return Encoder{}.Encode(a) }

// body names the collection that goes on the wire.
func (a *AttachmentsBlock) body() string {
	if len(a.fields) > 0 && len(a.blocks) == 0 {
		return "fields"
	}
	return "blocks"
}

func (a *AttachmentsBlock) encode(s *encodeState, p PathRef) (Document, error) {
	if len(a.fields) == 0 {
		if err := s.requireElements(p, "blocks", len(a.blocks)); err != nil {
			return Document{}, err
		}
	}
	if err := s.checkCount(p, "blocks", len(a.blocks), s.limits.MaxBlocks); err != nil {
		return Document{}, err
	}
	if err := s.checkCount(p, "fields", len(a.fields), s.limits.MaxFields); err != nil {
		return Document{}, err
	}
	if err := s.checkBlockID(p, a.blockID); err != nil {
		return Document{}, err
	}

	var (
		items []Document
		err   error
	)
	key := a.body()
	if key == "fields" {
		items, err = encodeAll(s, a.fields, p.Field(key))
	} else {
		items, err = encodeAll(s, a.blocks, p.Field(key))
	}
	if err != nil {
		return Document{}, err
	}
	d := NewDocument(key, items)
	a.put(&d)
	return d, nil
}
