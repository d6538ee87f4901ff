package inventory

// DefaultLevels is the opening stock of the restaurant.
func DefaultLevels() map[string]int {
	return map[string]int{
		"LPH-001":  50,
		"LPH-002":  100,
		"LPH-003A": 10,
		"LPH-003B": 10,
		"LPH-003D": 10,
		"LPH-004":  20,
		"LPH-005":  5,
		"LPH-006":  2,
		"LPH-007":  40,
		"LPH-010":  15,
		"LPH-011":  25,
		"LPH-022":  10,
	}
}

// Default returns a Stock seeded with DefaultLevels.
func Default() *Stock {
	s, err := NewStock(DefaultLevels())
	if err != nil {
		panic(err)
	}
	return s
}
