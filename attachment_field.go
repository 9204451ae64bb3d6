package blockkit

// AttachmentField is a legacy attachment: scalar metadata plus an ordered
// list of title/value fields. It always serializes its body under "fields";
// an attachment without fields is valid.
//
// Use NewAttachmentField or Message.LegacyAttachment; the zero value cannot
// chain.
type AttachmentField struct {
	attachmentMeta[*AttachmentField]
	fields []*FieldBlock
}

// NewAttachmentField returns an empty attachment with the default color.
func NewAttachmentField() *AttachmentField {
	a := &AttachmentField{}
	a.attachmentMeta = newAttachmentMeta(a)
	return a
}

// Field appends a field with the given title and content.
func (a *AttachmentField) Field(title, content string, long bool) *AttachmentField {
	f := NewFieldBlock().Title(title).Content(content)
	if long {
		f.Long()
	}
	a.fields = append(a.fields, f)
	return a
}

// Fields appends a field configured by cb.
func (a *AttachmentField) Fields(cb func(*FieldBlock)) *AttachmentField {
	f := NewFieldBlock()
	if cb != nil {
		cb(f)
	}
	a.fields = append(a.fields, f)
	return a
}

// ToDocument serializes the attachment with DefaultLimits.
func (a *AttachmentField) ToDocument() (Document, error) { return Encoder{}.Encode(a) }

func (a *AttachmentField) encode(s *encodeState, p PathRef) (Document, error) {
	if err := s.checkCount(p, "fields", len(a.fields), s.limits.MaxFields); err != nil {
		return Document{}, err
	}
	if err := s.checkBlockID(p, a.blockID); err != nil {
		return Document{}, err
	}
	fields, err := encodeAll(s, a.fields, p.Field("fields"))
	if err != nil {
		return Document{}, err
	}
	d := NewDocument("fields", fields)
	a.put(&d)
	return d, nil
}
