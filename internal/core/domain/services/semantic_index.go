package services

import (
	"strings"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/pkg/errs"
)

const (
	textMatchScore    = 1.0
	conceptMatchScore = 3.0
)

// Suggestion is the best catalog match for a query the parser could not map.
type Suggestion struct {
	Name        string
	Description string
	Score       float64
}

type indexedEntry struct {
	entry    catalog.Entry
	document string
	concepts []string
}

// SemanticIndex scores catalog entries by keyword overlap and concept tags.
//
// Each query token adds 1 for every entry whose "name description" text
// contains it, and 3 for every concept whose label contains the token and
// lists the entry as related.
type SemanticIndex struct {
	entries []indexedEntry
}

// NewSemanticIndex indexes the menu in catalog order. Concept members that
// are not on the menu are skipped.
func NewSemanticIndex(menu *catalog.Catalog, concepts []Concept) (*SemanticIndex, error) {
	if menu == nil {
		return nil, errs.NewValueIsRequiredError("menu")
	}

	byItem := make(map[string][]string)
	for _, c := range concepts {
		for _, item := range c.Related {
			labels := byItem[item]
			if !menu.Contains(item) || (len(labels) > 0 && labels[len(labels)-1] == c.Label) {
				continue
			}
			byItem[item] = append(labels, c.Label)
		}
	}

	idx := &SemanticIndex{}
	for _, e := range menu.Entries() {
		idx.entries = append(idx.entries, indexedEntry{
			entry:    e,
			document: e.SearchText(),
			concepts: byItem[e.Name()],
		})
	}
	return idx, nil
}

// Suggest returns the highest scoring entry. Ties go to the entry listed
// first in the catalog. Nothing is returned when every score is zero.
func (idx *SemanticIndex) Suggest(query string) (Suggestion, bool) {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return Suggestion{}, false
	}

	var (
		best      Suggestion
		bestScore float64
	)
	for _, ie := range idx.entries {
		score := idx.score(ie, tokens)
		if score > bestScore {
			bestScore = score
			best = Suggestion{Name: ie.entry.Name(), Description: ie.entry.Description(), Score: score}
		}
	}
	if bestScore == 0 {
		return Suggestion{}, false
	}
	return best, true
}

func (idx *SemanticIndex) score(ie indexedEntry, tokens []string) float64 {
	var score float64
	for _, tok := range tokens {
		if strings.Contains(ie.document, tok) {
			score += textMatchScore
		}
		for _, label := range ie.concepts {
			if strings.Contains(label, tok) {
				score += conceptMatchScore
			}
		}
	}
	return score
}
