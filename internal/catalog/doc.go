// Package catalog merges per-page action records into per-service record
// sets and reconciles them against authoritative action lists.
//
// Responsibilities:
//   - reconcile: first-documented-wins merge across a service's pages, plus
//     synthesis of placeholder records for undocumented actions
//   - builder: concurrent page harvesting across all services with a
//     deterministic, fully sorted diagnostics list
//
// Harvesting is embarrassingly parallel and runs under a bounded worker
// pool; the merge itself is order-sensitive and always executes serially in
// configured page order.
package catalog
