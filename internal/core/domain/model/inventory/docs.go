// Package inventory tracks how many units of each menu item are on hand.
//
// Stock is keyed by catalog item id (for example "LPH-001"), not by item
// name. Levels never go below zero: Decrement refuses a request it cannot
// satisfy in full and leaves the level untouched.
package inventory
