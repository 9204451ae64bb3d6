package blockkit

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// Limits bounds the structural size of a document. Zero fields fall back to
// DefaultLimits.
type Limits struct {
	MaxBlocks          int // blocks per container
	MaxFields          int // fields per attachment or section
	MaxBlockIDLength   int // characters in a block_id
	MaxContextElements int // elements per context block
}

// DefaultLimits returns the platform limits.
func DefaultLimits() Limits {
	return Limits{
		MaxBlocks:          25,
		MaxFields:          25,
		MaxBlockIDLength:   255,
		MaxContextElements: 10,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxBlocks <= 0 {
		l.MaxBlocks = d.MaxBlocks
	}
	if l.MaxFields <= 0 {
		l.MaxFields = d.MaxFields
	}
	if l.MaxBlockIDLength <= 0 {
		l.MaxBlockIDLength = d.MaxBlockIDLength
	}
	if l.MaxContextElements <= 0 {
		l.MaxContextElements = d.MaxContextElements
	}
	return l
}

// Encoder compiles a node graph into a Document. The zero value uses
// DefaultLimits and stops at the first violation.
//
// With Collect set, encoding walks the whole graph and returns every
// violation as Issues; each Issue's Cause keeps the typed error so errors.As
// still works on the aggregate.
type Encoder struct {
	Limits  Limits
	Collect bool
	Logger  *slog.Logger
}

// Encode serializes n.
func (e Encoder) Encode(n Node) (Document, error) {
	if n == nil {
		return Document{}, errors.New("blockkit: nil node")
	}
	s := e.state()
	s.log.Debug("encode", "kind", string(n.Kind()))
	doc, err := s.node(n, Root())
	if err != nil {
		return Document{}, err
	}
	if len(s.issues) > 0 {
		return Document{}, s.issues
	}
	return doc, nil
}

// EncodeBlocks serializes a block container into its ordered list.
func (e Encoder) EncodeBlocks(b *Block) ([]Document, error) {
	s := e.state()
	s.log.Debug("encode", "kind", "blocks")
	out, err := b.encode(s, Root())
	if err != nil {
		return nil, err
	}
	if len(s.issues) > 0 {
		return nil, s.issues
	}
	return out, nil
}

// Validate walks n with DefaultLimits and returns every violation found.
func Validate(n Node) Issues {
	_, err := Encoder{Collect: true}.Encode(n)
	iss, _ := AsIssues(err)
	return iss
}

func (e Encoder) state() *encodeState {
	log := e.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &encodeState{limits: e.Limits.withDefaults(), collect: e.Collect, log: log}
}

// encodeState is the per-call state of one Encode run.
type encodeState struct {
	limits  Limits
	collect bool
	issues  Issues
	log     *slog.Logger
}

// report records a violation. In fail-fast mode the error is returned and
// encoding stops; in collect mode it is queued and encoding continues.
func (s *encodeState) report(err structuralError) error {
	is := err.Issue()
	s.log.Warn("structural violation", "code", is.Code, "path", is.Path)
	if !s.collect {
		return err
	}
	s.issues = AppendIssues(s.issues, is)
	return nil
}

func (s *encodeState) requireElements(p PathRef, collection string, n int) error {
	if n > 0 {
		return nil
	}
	return s.report(&EmptyCollectionError{Path: p.Pointer(), Collection: collection})
}

func (s *encodeState) checkCount(p PathRef, collection string, n, max int) error {
	if n <= max {
		return nil
	}
	return s.report(&CollectionLimitExceededError{Path: p.Field(collection).Pointer(), Collection: collection, Limit: max, Count: n})
}

func (s *encodeState) checkBlockID(p PathRef, id Opt[string]) error {
	v, ok := id.Get()
	if !ok {
		return nil
	}
	if n := utf8.RuneCountInString(v); n > s.limits.MaxBlockIDLength {
		return s.report(&IdentifierTooLongError{Path: p.Field("block_id").Pointer(), Limit: s.limits.MaxBlockIDLength, Length: n})
	}
	return nil
}

// node dispatches on the variant. Typed nil nodes are rejected.
func (s *encodeState) node(n Node, p PathRef) (Document, error) {
	switch v := n.(type) {
	case *DividerBlock:
		if v != nil {
			return v.encode(s, p)
		}
	case *ImageBlock:
		if v != nil {
			return v.encode(s, p)
		}
	case *SectionBlock:
		if v != nil {
			return v.encode(s, p)
		}
	case *HeaderBlock:
		if v != nil {
			return v.encode(s, p)
		}
	case *ContextBlock:
		if v != nil {
			return v.encode(s, p)
		}
	case *AttachmentBlock:
		if v != nil {
			return v.encode(s, p)
		}
	case *AttachmentsBlock:
		if v != nil {
			return v.encode(s, p)
		}
	case *AttachmentField:
		if v != nil {
			return v.encode(s, p)
		}
	case *FieldBlock:
		if v != nil {
			return v.encode(), nil
		}
	case *FieldObject:
		if v != nil {
			return v.encode(), nil
		}
	case *ImageElement:
		if v != nil {
			return v.encode(), nil
		}
	case *TextObject:
		if v != nil {
			return v.encode(), nil
		}
	case *Message:
		if v != nil {
			return v.encode(s, p)
		}
	}
	return Document{}, fmt.Errorf("blockkit: nil or unsupported node %T at %s", n, p.Pointer())
}

// encodeAll maps every child through the dispatcher, preserving order.
func encodeAll[T Node](s *encodeState, nodes []T, p PathRef) ([]Document, error) {
	out := make([]Document, 0, len(nodes))
	for i, n := range nodes {
		d, err := s.node(n, p.Index(i))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
