// Package intent provides lightweight lexical intent detection for
// infrastructure provisioning requests. It classifies a free-text sentence
// into cloud-resource categories via keyword tables, resolves negated
// mentions through a fixed five-token lookback window, and normalizes
// provider and operating-system keywords. It performs no syntactic parsing
// and calls no external NLP services.
package intent

import (
	"regexp"
	"slices"
	"strings"
)

// negationWindow is the number of whitespace tokens inspected before a
// keyword occurrence when deciding whether the mention is negated.
const negationWindow = 5

// Parser matches sentences against immutable category and action tables.
// All patterns are compiled at construction, so a Parser is safe for
// concurrent use and each Detect call is independent.
type Parser struct {
	categories []Category
	actions    []ActionEntry

	keywordPatterns [][]*regexp.Regexp
	verbPatterns    [][]*regexp.Regexp
	negations       []*regexp.Regexp
}

// NewParser builds a parser over the built-in tables.
func NewParser() *Parser {
	return NewParserWithTables(defaultCategories, defaultActions)
}

// NewParserWithTables builds a parser over caller-supplied tables. The
// tables are copied; the caller may reuse or mutate its slices afterwards.
// Keywords and verbs are matched case-insensitively on whole-word
// boundaries, so "db" never matches inside "adbc" while "vpc," still
// matches "vpc".
func NewParserWithTables(categories []Category, actions []ActionEntry) *Parser {
	p := &Parser{
		categories: cloneCategories(categories),
		actions:    cloneActions(actions),
	}

	p.keywordPatterns = make([][]*regexp.Regexp, len(p.categories))
	for i, cat := range p.categories {
		patterns := make([]*regexp.Regexp, len(cat.Keywords))
		for j, keyword := range cat.Keywords {
			patterns[j] = wordPattern(keyword)
		}
		p.keywordPatterns[i] = patterns
	}

	p.verbPatterns = make([][]*regexp.Regexp, len(p.actions))
	for i, entry := range p.actions {
		patterns := make([]*regexp.Regexp, len(entry.Verbs))
		for j, verb := range entry.Verbs {
			patterns[j] = wordPattern(verb)
		}
		p.verbPatterns[i] = patterns
	}

	p.negations = make([]*regexp.Regexp, len(negationPatterns))
	for i, pattern := range negationPatterns {
		p.negations[i] = regexp.MustCompile("(?i)" + pattern)
	}

	return p
}

// wordPattern compiles a whole-word (or whole-phrase) matcher for a single
// lowercase keyword. QuoteMeta keeps table entries like "don't" literal.
func wordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`)
}

// Categories returns a copy of the parser's category table for
// introspection (listing valid categories and keyword samples).
func (p *Parser) Categories() []Category {
	return cloneCategories(p.categories)
}

// Actions returns a copy of the parser's action lexicon.
func (p *Parser) Actions() []ActionEntry {
	return cloneActions(p.actions)
}

// Detect scans a sentence against every category keyword and splits matches
// into affirmed and negated categories. Categories are evaluated in table
// order and keywords in declared order, so results are reproducible. Every
// keyword occurrence is negation-tested individually: a negated occurrence
// flags the category as negated, a non-negated one records the keyword
// (deduplicated) as an affirmed match. Malformed or empty input yields an
// empty result, never an error.
func (p *Parser) Detect(sentence string) Result {
	lower := strings.ToLower(sentence)

	result := Result{
		Action:            p.ExtractAction(sentence),
		Categories:        make(map[string][]string),
		NegatedCategories: make(map[string]bool),
		RawSentence:       sentence,
	}

	for i, cat := range p.categories {
		for j, keyword := range cat.Keywords {
			for _, loc := range p.keywordPatterns[i][j].FindAllStringIndex(lower, -1) {
				if p.hasNegation(lower, loc[0]) {
					result.NegatedCategories[cat.Name] = true
					continue
				}
				if !slices.Contains(result.Categories[cat.Name], keyword) {
					result.Categories[cat.Name] = append(result.Categories[cat.Name], keyword)
				}
			}
		}
	}

	return result
}

// hasNegation reports whether any of the negationWindow whitespace tokens
// preceding offset contains a negation cue. The lookback is a heuristic: it
// ignores clause boundaries, so a cue scoped to an earlier clause still
// negates a nearby keyword.
func (p *Parser) hasNegation(lower string, offset int) bool {
	words := strings.Fields(lower[:offset])
	if len(words) > negationWindow {
		words = words[len(words)-negationWindow:]
	}
	for _, word := range words {
		for _, negation := range p.negations {
			if negation.MatchString(word) {
				return true
			}
		}
	}
	return false
}

// ExtractAction returns the first action kind, in lexicon order, with a
// whole-word verb hit anywhere in the sentence. Kind priority decides ties,
// not textual position; ambiguous sentences therefore resolve to the
// earliest declared kind. Defaults to create.
func (p *Parser) ExtractAction(sentence string) ActionKind {
	lower := strings.ToLower(sentence)
	for i, entry := range p.actions {
		for _, pattern := range p.verbPatterns[i] {
			if pattern.MatchString(lower) {
				return entry.Kind
			}
		}
	}
	return ActionCreate
}

// Validate reports whether a detection is actionable: at least one category
// affirmed and no category simultaneously affirmed and negated. A false
// return means the caller should re-prompt or disambiguate; nothing is
// auto-resolved here.
func (p *Parser) Validate(result Result) bool {
	for name := range result.Categories {
		if result.NegatedCategories[name] {
			return false
		}
	}
	return len(result.Categories) > 0
}
