package intent

// ActionKind is the inferred operation type for a sentence.
type ActionKind string

const (
	ActionCreate ActionKind = "create"
	ActionDelete ActionKind = "delete"
	ActionModify ActionKind = "modify"
	ActionQuery  ActionKind = "query"
)

// Category describes one cloud-resource domain: the keywords that trigger it
// and the Terraform resource identifiers it maps to per provider.
type Category struct {
	Name           string
	Keywords       []string
	CloudResources map[string][]string
}

// ActionEntry binds an action kind to the verbs that trigger it. Entries are
// evaluated in declared order, so earlier kinds win ties.
type ActionEntry struct {
	Kind  ActionKind
	Verbs []string
}

// Result is the detection outcome for a single sentence. Categories maps a
// category name to the distinct keywords that matched outside a negated
// context, in first-seen order. NegatedCategories holds categories that had
// at least one keyword occurrence inside a negation window. A category can
// appear in both; Validate reports that as a contradiction.
type Result struct {
	Action            ActionKind
	Categories        map[string][]string
	NegatedCategories map[string]bool
	RawSentence       string
}

// Negated reports whether the named category had a negated occurrence.
func (r Result) Negated(category string) bool {
	return r.NegatedCategories[category]
}

// Matched reports whether the named category had a non-negated match.
func (r Result) Matched(category string) bool {
	return len(r.Categories[category]) > 0
}
