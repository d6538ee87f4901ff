package catalog

import "orderdesk/internal/core/domain/model/kernel"

type seedItem struct {
	name        string
	id          string
	cents       kernel.Money
	description string
}

var defaultMenu = []seedItem{
	{"fried chicken", "LPH-001", 1500, "Signature spiced fried chicken (Bucket)."},
	{"curly fries", "LPH-002", 450, "Twisted potato fries seasoned with paprika."},
	{"pizza (pepperoni, small)", "LPH-003A", 800, "Small 8 inch pizza with pepperoni."},
	{"pizza (pepperoni, medium)", "LPH-003B", 1200, "Medium Pepperoni pizza."},
	{"pizza (margherita, small)", "LPH-003D", 750, "Small vegetarian pizza."},
	{"coffee", "LPH-004", 300, "Hot, black brewed coffee."},
	{"blue candy", "LPH-005", 5000, "Crystal blue rock candy. 99.1% pure."},
	{"coke", "LPH-006", 250, "Carbonated sweet cola soda."},
	{"chicken wings (6 pcs)", "LPH-007", 800, "Crispy fried wings."},
	{"spicy fried chicken", "LPH-010", 1600, "Extra-hot crispy fried chicken bucket."},
	{"grilled chicken", "LPH-011", 1300, "Healthy charcoal grilled chicken."},
	{"family chicken combo", "LPH-022", 2800, "8 pieces of chicken, sides and drinks."},
}

// Default returns the house menu.
func Default() *Catalog {
	entries := make([]Entry, 0, len(defaultMenu))
	for _, item := range defaultMenu {
		e, err := NewEntry(item.name, item.id, item.cents, item.description)
		if err != nil {
			panic(err)
		}
		entries = append(entries, e)
	}

	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}
