package parser

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/atom"
)

// Parser pulls tokens out of an HTMLTokenizer the way the tree builder
// does. Its only tree-building duty is telling the tokenizer when a
// raw text element has been opened.
type Parser struct {
	Tokenizer *HTMLTokenizer
	log       logrus.FieldLogger
}

// NewParser creates a Parser reading the whole document from htmlIn.
func NewParser(htmlIn io.Reader, opts ...Option) (*Parser, error) {
	tokenizer, err := NewHTMLTokenizerFromReader(htmlIn, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "creating parser")
	}
	return &Parser{
		Tokenizer: tokenizer,
		log:       tokenizer.log,
	}, nil
}

// isRawTextElement reports whether the contents of the element are
// tokenized in the script data state.
func isRawTextElement(name string) bool {
	switch atom.Lookup([]byte(name)) {
	case atom.Script, atom.Style, atom.Xmp, atom.Iframe, atom.Noembed, atom.Noframes:
		return true
	default:
		return false
	}
}

// Progress is what the tree builder hands back to the tokenizer after
// processing a token. TokenizerState is nil when the tokenizer should
// carry on in its current state.
type Progress struct {
	TokenizerState *TokenizerState
}

// ProcessToken looks at a token the way the tree builder would and
// reports how the tokenizer has to continue.
func (p *Parser) ProcessToken(t *Token) *Progress {
	if t.TokenType != StartTagToken || t.SelfClosing || !isRawTextElement(t.TagName) {
		return &Progress{}
	}
	state := ScriptDataState
	line, col := p.Tokenizer.Position()
	p.log.WithFields(logrus.Fields{
		"tag":  t.TagName,
		"line": line,
		"col":  col,
	}).Debug("[TREE]: entering script data")
	return &Progress{TokenizerState: &state}
}

// Start tokenizes the whole document and returns every token, ending
// with the end of input token.
func (p *Parser) Start() ([]Token, error) {
	tokens := []Token{}
	for p.Tokenizer.Next() {
		t := p.Tokenizer.Token()
		if t == nil {
			return nil, errors.New("tokenizer stopped before the end of input")
		}
		tokens = append(tokens, *t)
		progress := p.ProcessToken(t)
		if progress.TokenizerState != nil {
			p.Tokenizer.SwitchTo(*progress.TokenizerState)
		}
	}

	return tokens, nil
}
