package parser

// Attribute is a single name/value pair on a start tag. It is built up
// one rune at a time while the tokenizer reads the tag.
type Attribute struct {
	name  string
	value string
}

// NewAttribute creates an attribute with an empty name and value.
func NewAttribute() *Attribute {
	return &Attribute{}
}

// MakeAttribute creates a finished attribute.
func MakeAttribute(name, value string) Attribute {
	return Attribute{name: name, value: value}
}

// AppendChar appends a rune to the name of the attribute if isName is
// set, otherwise to its value.
func (a *Attribute) AppendChar(r rune, isName bool) {
	if isName {
		a.name += string(r)
		return
	}
	a.value += string(r)
}

// Name returns the attribute name.
func (a Attribute) Name() string {
	return a.name
}

// Value returns the attribute value. Valueless attributes have an
// empty value.
func (a Attribute) Value() string {
	return a.value
}
