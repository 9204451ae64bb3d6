package blockkit

// Attachment palette.
const (
	ColorDefault = "#f2c744"
	ColorSuccess = "#28a745"
	ColorWarning = "#ffc107"
	ColorInfo    = "#17a2b8"
	ColorError   = "#dc3545"
)

// NamedColor resolves success, warning, info, error and default to their
// palette value. Any other input is returned unchanged.
func NamedColor(name string) string {
	switch name {
	case "success":
		return ColorSuccess
	case "warning":
		return ColorWarning
	case "info":
		return ColorInfo
	case "error", "danger":
		return ColorError
	case "default":
		return ColorDefault
	}
	return name
}

// colorable carries the attachment color and its semantic shortcuts. self
// is the embedding builder, returned for chaining.
type colorable[S any] struct {
	self  S
	color Opt[string]
}

// Color sets the attachment color.
func (c *colorable[S]) Color(color string) S {
	c.color = Some(color)
	return c.self
}

func (c *colorable[S]) Success() S { return c.Color(ColorSuccess) }
func (c *colorable[S]) Warning() S { return c.Color(ColorWarning) }
func (c *colorable[S]) Info() S    { return c.Color(ColorInfo) }

// Error sets the error color. It is a builder step, not an error value.
func (c *colorable[S]) Error() S { return c.Color(ColorError) }

// colorOrDefault is the color emitted on the wire.
func (c *colorable[S]) colorOrDefault() string { return c.color.Or(ColorDefault) }
