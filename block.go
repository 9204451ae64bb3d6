package blockkit

// Block is an ordered container of blocks. It serializes to a list rather
// than a mapping; insertion order is output order.
//
// The zero value is an empty container ready to use.
type Block struct {
	blocks []BlockElement
}

// NewBlock returns an empty container.
func NewBlock() *Block { return &Block{} }

// Image appends an image block and returns it.
func (b *Block) Image(url, alt string) *ImageBlock {
	img := NewImageBlock(url, alt)
	b.blocks = append(b.blocks, img)
	return img
}

// Context appends a context block configured by cb.
func (b *Block) Context(cb func(*ContextBlock)) *Block {
	c := NewContextBlock()
	if cb != nil {
		cb(c)
	}
	b.blocks = append(b.blocks, c)
	return b
}

// Divider appends a divider.
func (b *Block) Divider() *Block {
	b.blocks = append(b.blocks, NewDividerBlock())
	return b
}

// Section appends a section block configured by cb.
func (b *Block) Section(cb func(*SectionBlock)) *Block {
	sec := NewSectionBlock()
	if cb != nil {
		cb(sec)
	}
	b.blocks = append(b.blocks, sec)
	return b
}

// Header appends a header block; cb may further configure it.
func (b *Block) Header(text string, cb func(*HeaderBlock)) *Block {
	h := NewHeaderBlock(text)
	if cb != nil {
		cb(h)
	}
	b.blocks = append(b.blocks, h)
	return b
}

// Add appends pre-built blocks.
func (b *Block) Add(blocks ...BlockElement) *Block {
	b.blocks = append(b.blocks, blocks...)
	return b
}

// Len returns the number of blocks.
func (b *Block) Len() int { return len(b.blocks) }

// ToArray serializes the container with DefaultLimits.
func (b *Block) ToArray() ([]Document, error) { return Encoder{}.EncodeBlocks(b) }

func (b *Block) encode(s *encodeState, p PathRef) ([]Document, error) {
	if err := s.requireElements(p, "blocks", len(b.blocks)); err != nil {
		return nil, err
	}
	if err := s.checkCount(p, "blocks", len(b.blocks), s.limits.MaxBlocks); err != nil {
		return nil, err
	}
	return encodeAll(s, b.blocks, p.Field("blocks"))
}
