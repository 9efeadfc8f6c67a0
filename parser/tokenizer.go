package parser

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tdewolff/parse/v2"
)

//go:generate stringer -type=TokenizerState
type TokenizerState uint

const (
	DataState TokenizerState = iota
	TagOpenState
	EndTagOpenState
	TagNameState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	ScriptDataState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	TemporaryBufferState
)

type parserStateHandler func(r rune, eof bool) (bool, TokenizerState)

// HTMLTokenizer holds state for the various state of the tokenizer.
type HTMLTokenizer struct {
	done         bool
	reconsume    bool
	currentState TokenizerState
	pos          int
	input        []rune
	tempBuffer   []rune
	tokenBuilder *TokenBuilder
	emitted      *Token
	log          logrus.FieldLogger
}

// Option configures an HTMLTokenizer.
type Option func(*HTMLTokenizer)

// WithLogger sets the logger state transitions are traced to. The
// default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *HTMLTokenizer) {
		p.log = log
	}
}

// WithInitialState starts the tokenizer in another entry state. States
// that are not entry states are ignored and the tokenizer starts in the
// data state.
func WithInitialState(state TokenizerState) Option {
	return func(p *HTMLTokenizer) {
		p.currentState = state
	}
}

// IsEntryState reports whether a tokenizer can be started in, or switched
// to, the state from outside. All other states work on a tag that is
// already under construction.
func (s TokenizerState) IsEntryState() bool {
	return s == DataState || s == ScriptDataState
}

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NewHTMLTokenizer creates an HTML tokenizer that can be used to process
// an HTML string.
func NewHTMLTokenizer(html string, opts ...Option) *HTMLTokenizer {
	p := &HTMLTokenizer{
		currentState: DataState,
		input:        []rune(newlineNormalizer.Replace(html)),
		log:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.currentState.IsEntryState() {
		p.log.WithField("state", p.currentState).Warn("[TOKEN]: not an entry state, starting in data")
		p.currentState = DataState
	}
	p.tokenBuilder = MakeTokenBuilder(p.log)
	return p
}

// NewHTMLTokenizerFromReader reads the whole document from r and creates
// a tokenizer for it.
func NewHTMLTokenizerFromReader(r io.Reader, opts ...Option) (*HTMLTokenizer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading html input")
	}
	return NewHTMLTokenizer(string(b), opts...), nil
}

func (p *HTMLTokenizer) stateToParser(state TokenizerState) parserStateHandler {
	switch state {
	case DataState:
		return p.dataStateParser
	case TagOpenState:
		return p.tagOpenStateParser
	case EndTagOpenState:
		return p.endTagOpenStateParser
	case TagNameState:
		return p.tagNameStateParser
	case BeforeAttributeNameState:
		return p.beforeAttributeNameStateParser
	case AttributeNameState:
		return p.attributeNameStateParser
	case AfterAttributeNameState:
		return p.afterAttributeNameStateParser
	case BeforeAttributeValueState:
		return p.beforeAttributeValueStateParser
	case AttributeValueDoubleQuotedState:
		return p.attributeValueDoubleQuotedStateParser
	case AttributeValueSingleQuotedState:
		return p.attributeValueSingleQuotedStateParser
	case AttributeValueUnquotedState:
		return p.attributeValueUnquotedStateParser
	case AfterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateParser
	case SelfClosingStartTagState:
		return p.selfClosingStartTagStateParser
	case ScriptDataState:
		return p.scriptDataStateParser
	case ScriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateParser
	case ScriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateParser
	case ScriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateParser
	case TemporaryBufferState:
		return p.temporaryBufferStateParser
	}

	p.log.Panicf("no handler for tokenizer state %s", state)
	return nil
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func toASCIILower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 0x20
	}
	return r
}

// emit hands a token back to the caller of Token. A state emits at most
// one token per rune.
func (p *HTMLTokenizer) emit(token Token) {
	if p.emitted != nil {
		p.log.Panicf("emit %s: %s still waiting to be taken", token, *p.emitted)
	}
	if token.TokenType == EndOfInputToken {
		p.done = true
	}
	p.emitted = &token
}

func (p *HTMLTokenizer) emitCurrentTag() TokenizerState {
	p.emit(p.tokenBuilder.TakeToken())
	return DataState
}

func (p *HTMLTokenizer) dataStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch r {
	case '<':
		return false, TagOpenState
	default:
		p.emit(MakeCharacterToken(r))
		return false, DataState
	}
}

func (p *HTMLTokenizer) tagOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch {
	case r == '/':
		return false, EndTagOpenState
	case isASCIIAlpha(r):
		p.tokenBuilder.CreateTag(true)
		return true, TagNameState
	default:
		// a stray '<' is dropped
		return true, DataState
	}
}

func (p *HTMLTokenizer) endTagOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	if isASCIIAlpha(r) {
		p.tokenBuilder.CreateTag(false)
		return true, TagNameState
	}
	return true, DataState
}

func (p *HTMLTokenizer) tagNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, BeforeAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '>':
		return false, p.emitCurrentTag()
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		r += 0x20
		p.tokenBuilder.AppendTagName(r)
		return false, TagNameState
	default:
		p.tokenBuilder.AppendTagName(r)
		return false, TagNameState
	}
}

func (p *HTMLTokenizer) beforeAttributeNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return true, AfterAttributeNameState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, BeforeAttributeNameState
	case '/', '>':
		return true, AfterAttributeNameState
	default:
		p.tokenBuilder.StartNewAttribute()
		return true, AttributeNameState
	}
}

func (p *HTMLTokenizer) attributeNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return true, AfterAttributeNameState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ', '/', '>':
		return true, AfterAttributeNameState
	case '=':
		return false, BeforeAttributeValueState
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		r += 0x20
		p.tokenBuilder.AppendAttribute(r, true)
		return false, AttributeNameState
	default:
		p.tokenBuilder.AppendAttribute(r, true)
		return false, AttributeNameState
	}
}

func (p *HTMLTokenizer) afterAttributeNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, AfterAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '=':
		return false, BeforeAttributeValueState
	case '>':
		return false, p.emitCurrentTag()
	default:
		p.tokenBuilder.StartNewAttribute()
		return true, AttributeNameState
	}
}

func (p *HTMLTokenizer) beforeAttributeValueStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return true, AttributeValueUnquotedState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, BeforeAttributeValueState
	case '"':
		return false, AttributeValueDoubleQuotedState
	case '\'':
		return false, AttributeValueSingleQuotedState
	default:
		return true, AttributeValueUnquotedState
	}
}

func (p *HTMLTokenizer) attributeValueDoubleQuotedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch r {
	case '"':
		return false, AfterAttributeValueQuotedState
	default:
		p.tokenBuilder.AppendAttribute(r, false)
		return false, AttributeValueDoubleQuotedState
	}
}

func (p *HTMLTokenizer) attributeValueSingleQuotedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch r {
	case '\'':
		return false, AfterAttributeValueQuotedState
	default:
		p.tokenBuilder.AppendAttribute(r, false)
		return false, AttributeValueSingleQuotedState
	}
}

func (p *HTMLTokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, BeforeAttributeNameState
	case '>':
		return false, p.emitCurrentTag()
	default:
		p.tokenBuilder.AppendAttribute(r, false)
		return false, AttributeValueUnquotedState
	}
}

func (p *HTMLTokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, BeforeAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '>':
		return false, p.emitCurrentTag()
	default:
		return true, BeforeAttributeValueState
	}
}

func (p *HTMLTokenizer) selfClosingStartTagStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch r {
	case '>':
		p.tokenBuilder.SetSelfClosing()
		return false, p.emitCurrentTag()
	default:
		return true, BeforeAttributeNameState
	}
}

func (p *HTMLTokenizer) scriptDataStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emit(MakeEndOfInputToken())
		return false, DataState
	}
	switch r {
	case '<':
		return false, ScriptDataLessThanSignState
	default:
		p.emit(MakeCharacterToken(r))
		return false, ScriptDataState
	}
}

// Only the '<' is emitted when the less-than sign does not start an end
// tag; a pull yields one token, so a following '/' is dropped.
func (p *HTMLTokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && r == '/' {
		p.tempBuffer = p.tempBuffer[:0]
		return false, ScriptDataEndTagOpenState
	}
	p.emit(MakeCharacterToken('<'))
	return true, ScriptDataState
}

func (p *HTMLTokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.tokenBuilder.CreateTag(false)
		return true, ScriptDataEndTagNameState
	}
	p.emit(MakeCharacterToken('<'))
	return true, ScriptDataState
}

func (p *HTMLTokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	switch {
	case eof:
	case isASCIIAlpha(r):
		p.tempBuffer = append(p.tempBuffer, r)
		p.tokenBuilder.AppendTagName(toASCIILower(r))
		return false, ScriptDataEndTagNameState
	case r == '>':
		return false, p.emitCurrentTag()
	}

	// not the closing tag after all, give the consumed text back as
	// character data
	p.log.WithField("tag", p.tokenBuilder.TagName()).Trace("[TOKEN]: abandoned end tag")
	buf := make([]rune, 0, len(p.tempBuffer)+3)
	buf = append(buf, '<', '/')
	buf = append(buf, p.tempBuffer...)
	if !eof {
		buf = append(buf, r)
	}
	p.tempBuffer = buf
	return false, TemporaryBufferState
}

func (p *HTMLTokenizer) temporaryBufferStateParser(r rune, eof bool) (bool, TokenizerState) {
	if len(p.tempBuffer) == 0 {
		return true, ScriptDataState
	}
	c := p.tempBuffer[0]
	p.tempBuffer = p.tempBuffer[1:]
	p.emit(MakeCharacterToken(c))
	return true, TemporaryBufferState
}

// consume reads the next rune and advances the cursor, or re-reads the
// previous one when the last state asked for it to be reconsumed. The
// cursor moving past the end of the input means end of input.
func (p *HTMLTokenizer) consume() (rune, bool) {
	if p.reconsume {
		p.reconsume = false
		return p.peekPrevious()
	}
	p.pos++
	return p.peekPrevious()
}

func (p *HTMLTokenizer) peekPrevious() (rune, bool) {
	if p.pos > len(p.input) {
		return 0, true
	}
	return p.input[p.pos-1], false
}

// Next reports whether there are tokens left to take.
func (p *HTMLTokenizer) Next() bool {
	return !p.done
}

// Token runs the state machine until it produces a token. It returns
// nil once the end of input token has been taken.
func (p *HTMLTokenizer) Token() *Token {
	if p.done {
		return nil
	}

	for {
		r, eof := p.consume()
		var next TokenizerState
		p.reconsume, next = p.stateToParser(p.currentState)(r, eof)
		p.log.WithFields(logrus.Fields{
			"rune": string(r),
			"eof":  eof,
			"from": p.currentState,
			"to":   next,
		}).Trace("[TOKEN]")
		p.currentState = next

		if token := p.emitted; token != nil {
			p.emitted = nil
			return token
		}
	}
}

// SwitchTo moves the tokenizer into another entry state before the next
// token is pulled. The tree builder uses it to enter the script data
// state after a <script> start tag. It reports false and leaves the
// state alone for anything that is not an entry state.
func (p *HTMLTokenizer) SwitchTo(state TokenizerState) bool {
	if !state.IsEntryState() {
		p.log.WithField("state", state).Warn("[TOKEN]: refusing to switch to a non-entry state")
		return false
	}
	p.currentState = state
	return true
}

// State returns the state the tokenizer will continue from.
func (p *HTMLTokenizer) State() TokenizerState {
	return p.currentState
}

// Position returns the 1-based line and column of the cursor.
func (p *HTMLTokenizer) Position() (int, int) {
	pos := p.pos
	if pos > len(p.input) {
		pos = len(p.input)
	}
	offset := len(string(p.input[:pos]))
	line, col, _ := parse.Position(strings.NewReader(string(p.input)), offset)
	return line, col
}
