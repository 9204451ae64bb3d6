package blockkit

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef locates a node inside an encoded document as a JSON Pointer and
// creates Issues anchored there.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// Root returns the PathRef of a document root.
func Root() PathRef { return pathRef(nil) }

// pathRef holds escaped reference tokens. Children copy the slice so
// siblings never share a backing array.
type pathRef []string

func (p pathRef) child(token string) PathRef {
	out := make(pathRef, len(p), len(p)+1)
	copy(out, p)
	return append(out, token)
}

func (p pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return p.child(escapeToken(name))
}

func (p pathRef) Index(i int) PathRef { return p.child(strconv.Itoa(i)) }

func (p pathRef) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	return "/" + strings.Join(p, "/")
}

// Issue builds an Issue at p; kv are alternating param keys and values.
func (p pathRef) Issue(code, msg string, kv ...any) Issue {
	var params map[string]any
	if len(kv) >= 2 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// tokenEscaper applies RFC 6901: '~' becomes "~0", '/' becomes "~1".
var tokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapeToken(s string) string { return tokenEscaper.Replace(s) }
