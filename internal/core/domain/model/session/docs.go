// Package session holds one customer conversation: the cart being built,
// the transcript and where the order is in its lifecycle.
//
// Status transitions:
//
//	taking_order ──BeginFinalize──> processing ──Confirm──> confirmed
//	      ^                             │                       │
//	      └───────────Reopen────────────┘                       │
//	      └──────────────────StartNewOrder──────────────────────┘
//
// Several sessions can exist side by side; nothing here is global.
package session
