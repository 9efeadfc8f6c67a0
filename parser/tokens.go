package parser

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:generate stringer -type=TokenType
type TokenType uint

const (
	CharacterToken TokenType = iota
	StartTagToken
	EndTagToken
	EndOfInputToken
)

// Token is a concrete token that is ready to be emitted.
type Token struct {
	TokenType   TokenType
	TagName     string
	SelfClosing bool
	Attributes  []Attribute
	Char        rune
}

func (t Token) String() string {
	switch t.TokenType {
	case StartTagToken:
		var b strings.Builder
		fmt.Fprintf(&b, "StartTag{tag:%q, self_closing:%t, attributes:[", t.TagName, t.SelfClosing)
		for i, attr := range t.Attributes {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "{name:%q, value:%q}", attr.name, attr.value)
		}
		b.WriteString("]}")
		return b.String()
	case EndTagToken:
		return fmt.Sprintf("EndTag{tag:%q}", t.TagName)
	case CharacterToken:
		return fmt.Sprintf("Char(%q)", t.Char)
	default:
		return "EndOfInput"
	}
}

// MakeCharacterToken creates a character token.
func MakeCharacterToken(r rune) Token {
	return Token{
		TokenType: CharacterToken,
		Char:      r,
	}
}

// MakeEndOfInputToken creates an end of input token.
func MakeEndOfInputToken() Token {
	return Token{
		TokenType: EndOfInputToken,
	}
}

// TokenBuilder holds the tag token that is being assembled across
// several runes. The pending token is only ever changed through the
// builder methods.
type TokenBuilder struct {
	pending *Token
	log     logrus.FieldLogger
}

// MakeTokenBuilder creates a TokenBuilder with nothing pending.
func MakeTokenBuilder(log logrus.FieldLogger) *TokenBuilder {
	return &TokenBuilder{log: log}
}

// Pending reports whether a tag token is under construction.
func (t *TokenBuilder) Pending() bool {
	return t.pending != nil
}

// CreateTag starts a new, empty start or end tag token, replacing
// anything that was pending.
func (t *TokenBuilder) CreateTag(start bool) {
	if start {
		t.pending = &Token{TokenType: StartTagToken, Attributes: []Attribute{}}
		return
	}
	t.pending = &Token{TokenType: EndTagToken}
}

// AppendTagName appends a rune to the pending tag's name.
func (t *TokenBuilder) AppendTagName(r rune) {
	t.mustBePending("AppendTagName")
	t.pending.TagName += string(r)
}

// StartNewAttribute adds an empty attribute to the pending tag.
func (t *TokenBuilder) StartNewAttribute() {
	t.mustBePending("StartNewAttribute")
	t.pending.Attributes = append(t.pending.Attributes, *NewAttribute())
}

// AppendAttribute appends a rune to the name or value of the most
// recently started attribute.
func (t *TokenBuilder) AppendAttribute(r rune, isName bool) {
	t.mustBePending("AppendAttribute")
	n := len(t.pending.Attributes)
	if n == 0 {
		t.log.WithField("tag", t.pending.TagName).Panicf("AppendAttribute: no attribute started")
	}
	t.pending.Attributes[n-1].AppendChar(r, isName)
}

// SetSelfClosing changes the self-closing flag to "set".
func (t *TokenBuilder) SetSelfClosing() {
	t.mustBePending("SetSelfClosing")
	t.pending.SelfClosing = true
}

// TakeToken returns the pending token and leaves nothing pending. End
// tags never carry attributes or the self-closing flag, whatever the
// markup said.
func (t *TokenBuilder) TakeToken() Token {
	t.mustBePending("TakeToken")
	token := *t.pending
	t.pending = nil
	if token.TokenType == EndTagToken {
		token.Attributes = nil
		token.SelfClosing = false
	}
	return token
}

// TagName returns the name of the pending tag so far.
func (t *TokenBuilder) TagName() string {
	t.mustBePending("TagName")
	return t.pending.TagName
}

func (t *TokenBuilder) mustBePending(op string) {
	if !t.Pending() {
		t.log.Panicf("%s: no tag token pending", op)
	}
}
