// Package fleet models the delivery agents the restaurant can dispatch.
//
// Every agent drives a vehicle with a Capacity. Orders are sized on the same
// scale (see ClassifyLoad) and an agent can carry an order when its capacity
// rank is at least the order's. Agents are idle until dispatched; a
// dispatched agent is en route until its busy window has passed and it is
// released.
//
//	idle ──Dispatch(until)──> en_route ──Release()──> idle
package fleet
