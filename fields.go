package blockkit

// FieldBlock is a title/value pair of a legacy attachment. Fields are short
// (side by side) unless Long is called.
type FieldBlock struct {
	title   string
	content string
	long    bool
}

// NewFieldBlock returns an empty short field.
func NewFieldBlock() *FieldBlock { return &FieldBlock{} }

// Title sets the field title.
func (f *FieldBlock) Title(title string) *FieldBlock {
	f.title = title
	return f
}

// Content sets the field value.
func (f *FieldBlock) Content(content string) *FieldBlock {
	f.content = content
	return f
}

// Long makes the field span a full row.
func (f *FieldBlock) Long() *FieldBlock {
	f.long = true
	return f
}

// ToDocument serializes the field.
func (f *FieldBlock) ToDocument() (Document, error) { return Encoder{}.Encode(f) }

func (f *FieldBlock) encode() Document { return fieldDocument(f.title, f.content, f.long) }

// FieldObject is the composition-object form of a field, used by
// AttachmentsBlock. It serializes exactly like FieldBlock.
type FieldObject struct {
	title   string
	content string
	long    bool
}

// NewFieldObject returns an empty short field.
func NewFieldObject() *FieldObject { return &FieldObject{} }

func (f *FieldObject) Title(title string) *FieldObject {
	f.title = title
	return f
}

func (f *FieldObject) Content(content string) *FieldObject {
	f.content = content
	return f
}

func (f *FieldObject) Long() *FieldObject {
	f.long = true
	return f
}

// ToDocument serializes the field.
func (f *FieldObject) ToDocument() (Document, error) { return Encoder{}.Encode(f) }

func (f *FieldObject) encode() Document { return fieldDocument(f.title, f.content, f.long) }

// fieldDocument always carries all three keys.
func fieldDocument(title, content string, long bool) Document {
	return NewDocument("title", title, "value", content, "short", !long)
}
