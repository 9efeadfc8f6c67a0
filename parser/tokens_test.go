package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeAppendChar(t *testing.T) {
	a := NewAttribute()
	assert.Equal(t, "", a.Name())
	assert.Equal(t, "", a.Value())

	for _, r := range "class" {
		a.AppendChar(r, true)
	}
	for _, r := range "a b" {
		a.AppendChar(r, false)
	}
	assert.Equal(t, "class", a.Name())
	assert.Equal(t, "a b", a.Value())
	assert.Equal(t, MakeAttribute("class", "a b"), *a)
}

func TestTokenBuilder(t *testing.T) {
	b := MakeTokenBuilder(testLogger())
	assert.False(t, b.Pending())

	b.CreateTag(true)
	require.True(t, b.Pending())
	b.AppendTagName('d')
	b.AppendTagName('i')
	b.AppendTagName('v')
	b.StartNewAttribute()
	b.AppendAttribute('i', true)
	b.AppendAttribute('d', true)
	b.AppendAttribute('x', false)
	b.StartNewAttribute()
	b.AppendAttribute('h', true)
	b.SetSelfClosing()

	token := b.TakeToken()
	assert.False(t, b.Pending())
	assert.Equal(t, StartTagToken, token.TokenType)
	assert.Equal(t, "div", token.TagName)
	assert.True(t, token.SelfClosing)
	assert.Equal(t, []Attribute{MakeAttribute("id", "x"), MakeAttribute("h", "")}, token.Attributes)
}

func TestTokenBuilderEndTagDropsAttributes(t *testing.T) {
	b := MakeTokenBuilder(testLogger())
	b.CreateTag(false)
	b.AppendTagName('p')
	b.StartNewAttribute()
	b.AppendAttribute('x', true)
	b.SetSelfClosing()

	assert.Equal(t, Token{TokenType: EndTagToken, TagName: "p"}, b.TakeToken())
}

func TestTokenBuilderInvariants(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*TokenBuilder)
		op    func(*TokenBuilder)
	}{
		{"append tag name without tag", nil, func(b *TokenBuilder) { b.AppendTagName('a') }},
		{"start attribute without tag", nil, func(b *TokenBuilder) { b.StartNewAttribute() }},
		{"append attribute without tag", nil, func(b *TokenBuilder) { b.AppendAttribute('a', true) }},
		{"set self-closing without tag", nil, func(b *TokenBuilder) { b.SetSelfClosing() }},
		{"take without tag", nil, func(b *TokenBuilder) { b.TakeToken() }},
		{"take twice", func(b *TokenBuilder) {
			b.CreateTag(true)
			b.TakeToken()
		}, func(b *TokenBuilder) { b.TakeToken() }},
		{"append attribute before starting one", func(b *TokenBuilder) { b.CreateTag(true) }, func(b *TokenBuilder) { b.AppendAttribute('a', false) }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := MakeTokenBuilder(testLogger())
			if tt.setup != nil {
				tt.setup(b)
			}
			assert.Panics(t, func() { tt.op(b) })
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
	}{
		{startTag("div", false, MakeAttribute("class", "a b")), `StartTag{tag:"div", self_closing:false, attributes:[{name:"class", value:"a b"}]}`},
		{startTag("br", true), `StartTag{tag:"br", self_closing:true, attributes:[]}`},
		{endTag("p"), `EndTag{tag:"p"}`},
		{MakeCharacterToken('H'), `Char('H')`},
		{MakeEndOfInputToken(), `EndOfInput`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.token.String())
	}
	assert.Equal(t, "EndTagToken", EndTagToken.String())
	assert.Equal(t, "ScriptDataEndTagNameState", ScriptDataEndTagNameState.String())
}
