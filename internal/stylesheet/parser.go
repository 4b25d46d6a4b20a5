// Package stylesheet parses CSS text into rules with their media context.
package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is one property: value pair
type Declaration struct {
	Property string
	Value    string
}

// Rule is a ruleset with its position in the source file
type Rule struct {
	Selectors    []string      // [".container .columns.one-half", ".container .columns.six"]
	Declarations []Declaration // In source order
	Context      string        // Enclosing at-rules, "" at top level
	Line         int           // 1-based line of the opening brace
	Column       int
}

// Sheet is a parsed stylesheet
type Sheet struct {
	Filename string
	Rules    []Rule
	classes  map[string]bool
}

// parserState maintains context while parsing CSS
type parserState struct {
	content string
	sheet   *Sheet
	atRules []string // Stack of open at-rule preludes
}

// Parse parses CSS content. Parse errors carry the line and column.
func Parse(content, filename string) (*Sheet, error) {
	state := &parserState{
		content: content,
		sheet: &Sheet{
			Filename: filename,
			classes:  make(map[string]bool),
		},
	}

	p := css.NewParser(parse.NewInputString(content), false)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse %s: %w", filename, err)
			}
			return state.sheet, nil
		case css.BeginAtRuleGrammar:
			prelude := joinTokens(p.Values())
			state.atRules = append(state.atRules, strings.TrimSpace(string(data)+" "+prelude))
		case css.EndAtRuleGrammar:
			if len(state.atRules) > 0 {
				state.atRules = state.atRules[:len(state.atRules)-1]
			}
		case css.BeginRulesetGrammar:
			state.beginRule(p.Values(), p.Offset())
		case css.DeclarationGrammar:
			state.addDeclaration(string(data), joinTokens(p.Values()))
		}
	}
}

// beginRule splits the selector tokens on commas and records class names
func (s *parserState) beginRule(tokens []css.Token, offset int) {
	var selectors []string
	var current strings.Builder

	for i, tok := range tokens {
		if tok.TokenType == css.CommaToken {
			selectors = append(selectors, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		if tok.TokenType == css.DelimToken && string(tok.Data) == "." &&
			i+1 < len(tokens) && tokens[i+1].TokenType == css.IdentToken {
			s.sheet.classes[string(tokens[i+1].Data)] = true
		}
		current.Write(tok.Data)
	}
	selectors = append(selectors, strings.TrimSpace(current.String()))

	line, col, _ := parse.Position(strings.NewReader(s.content), offset)
	s.sheet.Rules = append(s.sheet.Rules, Rule{
		Selectors: selectors,
		Context:   strings.Join(s.atRules, " "),
		Line:      line,
		Column:    col,
	})
}

func (s *parserState) addDeclaration(property, value string) {
	if len(s.sheet.Rules) == 0 {
		return
	}
	rule := &s.sheet.Rules[len(s.sheet.Rules)-1]
	rule.Declarations = append(rule.Declarations, Declaration{
		Property: property,
		Value:    strings.TrimSpace(value),
	})
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.Write(tok.Data)
	}
	return strings.TrimSpace(b.String())
}

// Classes returns every class name referenced by a selector, sorted
func (s *Sheet) Classes() []string {
	classes := make([]string, 0, len(s.classes))
	for c := range s.classes {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

// Contexts returns the distinct at-rule contexts in order of first appearance
func (s *Sheet) Contexts() []string {
	var contexts []string
	seen := make(map[string]bool)
	for _, r := range s.Rules {
		if !seen[r.Context] {
			seen[r.Context] = true
			contexts = append(contexts, r.Context)
		}
	}
	return contexts
}

// Value returns the value of property in the last rule matching selector
// within context, and whether one was found.
func (s *Sheet) Value(context, selector, property string) (string, bool) {
	for i := len(s.Rules) - 1; i >= 0; i-- {
		r := s.Rules[i]
		if r.Context != context || !containsString(r.Selectors, selector) {
			continue
		}
		for j := len(r.Declarations) - 1; j >= 0; j-- {
			if r.Declarations[j].Property == property {
				return r.Declarations[j].Value, true
			}
		}
	}
	return "", false
}

// containsString checks if a string slice contains a value
func containsString(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}
