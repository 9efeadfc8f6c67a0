package parser

import "strings"

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

// SerializeTokens writes a token stream back out as markup. Character
// data inside raw text elements is written as is.
func SerializeTokens(tokens []Token) string {
	var (
		ret     strings.Builder
		text    strings.Builder
		rawText string
	)
	flushText := func() {
		if rawText != "" {
			ret.WriteString(text.String())
		} else {
			ret.WriteString(escapeString(text.String(), false))
		}
		text.Reset()
	}

	for _, t := range tokens {
		switch t.TokenType {
		case CharacterToken:
			text.WriteRune(t.Char)
		case StartTagToken:
			flushText()
			ret.WriteString("<" + t.TagName)
			for _, attr := range t.Attributes {
				ret.WriteString(" " + attr.Name())
				if attr.Value() != "" {
					ret.WriteString("=\"" + escapeString(attr.Value(), true) + "\"")
				}
			}
			if t.SelfClosing {
				ret.WriteString("/>")
				continue
			}
			ret.WriteString(">")
			if isRawTextElement(t.TagName) {
				rawText = t.TagName
			}
		case EndTagToken:
			flushText()
			ret.WriteString("</" + t.TagName + ">")
			if t.TagName == rawText {
				rawText = ""
			}
		case EndOfInputToken:
			flushText()
		}
	}
	flushText()

	return ret.String()
}

// fragmentStartState picks the state markup is tokenized in when it is
// the contents of the context element.
func fragmentStartState(context string) TokenizerState {
	if isRawTextElement(context) {
		return ScriptDataState
	}
	return DataState
}

// TokenizeFragment tokenizes input as if it were the contents of a
// context element, e.g. the text between <script> and </script>.
func TokenizeFragment(context, input string, opts ...Option) ([]Token, error) {
	context = strings.ToLower(context)
	opts = append(opts, WithInitialState(fragmentStartState(context)))
	p, err := NewParser(strings.NewReader(input), opts...)
	if err != nil {
		return nil, err
	}
	return p.Start()
}
