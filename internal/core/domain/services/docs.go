// Package services holds the domain services of the order desk.
//
// The package includes:
//   - IntentParser: keyword rules that turn an utterance into cart lines and an address
//   - SemanticIndex: the fallback suggestion when the parser finds nothing
//   - DispatchPlanner: nearest eligible agent and ETA for an order
//   - OrderFinalizer: all-or-nothing checkout of a session's cart
//
// Matching policy (rules and concepts) is data, loaded as a RuleBook from
// YAML. None of these services perform I/O; callers load and persist the
// aggregates they operate on.
package services
