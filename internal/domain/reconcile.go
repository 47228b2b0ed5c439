package domain

import "sort"

// Reconcile brings the question map in line with a new category selection.
//
// Categories that enter the selection get an empty question list unless they
// already have one. Categories that leave the selection lose their entry, and
// with it every question drafted for them; re-selecting them later starts from
// an empty list. Categories present in both selections are untouched, as are
// map entries for categories that were never selected.
//
// Neither input is modified. The third result lists the removed category ids, sorted.
func Reconcile(selection SelectionSet, questions CategoryQuestionMap, next SelectionSet) (SelectionSet, CategoryQuestionMap, []string) {
	out := questions.shallowCopy()

	for id := range next {
		if selection.Has(id) {
			continue
		}
		if _, ok := out[id]; !ok {
			out[id] = []QuestionDraft{}
		}
	}

	var removed []string
	for id := range selection {
		if next.Has(id) {
			continue
		}
		delete(out, id)
		removed = append(removed, id)
	}
	sort.Strings(removed)

	return NewSelectionSet(next.IDs()...), out, removed
}

// WithSelection returns the draft reconciled against next.
func (d FormDraft) WithSelection(next SelectionSet) FormDraft {
	d.Selection, d.QuestionsByCategory, _ = Reconcile(d.Selection, d.QuestionsByCategory, next)
	return d
}

// DiscardedQuestions returns, sorted, the categories whose drafted questions
// would be lost if the selection changed to next.
func DiscardedQuestions(d FormDraft, next SelectionSet) []string {
	var ids []string
	for id := range d.Selection {
		if next.Has(id) {
			continue
		}
		if len(d.QuestionsByCategory[id]) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
