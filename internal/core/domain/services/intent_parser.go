package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/pkg/errs"
)

const (
	addressMarker = "address is"

	// PlaceholderAddress is returned when an utterance mentions a street
	// without saying "address is". It is a guess, not a parse.
	PlaceholderAddress = "308 Negra Arroyo Lane"
)

var streetKeywords = []string{"lane", "street"}

// Intent is what a single utterance asked for.
type Intent struct {
	Items []cart.Line
	// Address is empty when the utterance carried none.
	Address string
}

type compiledTrigger struct {
	phrase   string
	quantity *regexp.Regexp
}

type compiledRule struct {
	item     string
	triggers []compiledTrigger
}

// IntentParser turns free text into order lines and an optional address
// using an ordered keyword table. It keeps no state between calls.
type IntentParser struct {
	rules []compiledRule
}

// NewIntentParser compiles rules against menu.
//
// Parameters:
//   - menu: the catalog every rule must point into
//   - rules: keyword rules in priority order, each naming a menu item
//
// Returns:
//   - *IntentParser: the compiled parser
//   - error: ErrValueIsRequired for a nil menu or no rules, ErrObjectNotFound
//     for every rule whose item is not on the menu
func NewIntentParser(menu *catalog.Catalog, rules []IntentRule) (*IntentParser, error) {
	if menu == nil {
		return nil, errs.NewValueIsRequiredError("menu")
	}
	if len(rules) == 0 {
		return nil, errs.NewValueIsRequiredError("rules")
	}

	p := &IntentParser{rules: make([]compiledRule, 0, len(rules))}
	var errList []error
	for _, r := range rules {
		if !menu.Contains(r.Item) {
			errList = append(errList, errs.NewObjectNotFoundError("item", r.Item))
			continue
		}
		cr := compiledRule{item: r.Item}
		for _, phrase := range r.Triggers {
			cr.triggers = append(cr.triggers, compiledTrigger{
				phrase:   phrase,
				quantity: regexp.MustCompile(`\b(\d+)\s+` + regexp.QuoteMeta(phrase)),
			})
		}
		p.rules = append(p.rules, cr)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, fmt.Errorf("intent rules: %w", err)
	}
	return p, nil
}

// Parse extracts at most one line per rule, in rule order.
//
// Example:
//
//	intent := parser.Parse("2 fried chicken and a coke")
//	// intent.Lines: [{fried chicken 2} {coke 1}]
func (p *IntentParser) Parse(utterance string) Intent {
	text := strings.ToLower(utterance)

	var intent Intent
	for _, r := range p.rules {
		for _, t := range r.triggers {
			if !strings.Contains(text, t.phrase) {
				continue
			}
			intent.Items = append(intent.Items, cart.Line{Item: r.item, Quantity: quantityFor(t.quantity, text)})
			break
		}
	}
	intent.Address = extractAddress(text)
	return intent
}

// quantityFor reads the number right before the trigger. Missing or zero
// numbers count as one; anything above cart.MaxQuantity, including numbers
// too long for an int, counts as cart.MaxQuantity.
func quantityFor(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 1
	}
	qty, err := strconv.Atoi(m[1])
	switch {
	case errors.Is(err, strconv.ErrRange):
		return cart.MaxQuantity
	case err != nil || qty < 1:
		return 1
	default:
		return min(qty, cart.MaxQuantity)
	}
}

func extractAddress(text string) string {
	if _, after, found := strings.Cut(text, addressMarker); found {
		return strings.TrimSpace(after)
	}
	for _, kw := range streetKeywords {
		if strings.Contains(text, kw) {
			return PlaceholderAddress
		}
	}
	return ""
}
