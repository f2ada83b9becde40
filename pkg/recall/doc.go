// Package recall provides a client for the NHTSA vehicle recall API.
//
// # Overview
//
// The NHTSA recall registry is a free government API (no key required) that
// reports safety recall campaigns per vehicle or per campaign number. This
// package exposes it through:
//
//   - [Record]: one recall campaign, normalized from the registry's
//     inconsistently-cased payloads
//   - [Client]: lookups by vehicle or campaign number, with memoization and
//     optional response caching
//   - [FilterCritical], [FilterByComponent], [GroupByYear]: pure helpers over
//     already-fetched records
//
// # Client Pattern
//
//	client := recall.New()
//	records := client.FetchVehicleRecalls(ctx, "Honda", "CR-V", "2019")
//	critical := recall.FilterCritical(records)
//
// # Fail-Soft Contract
//
// Lookups never return an error: transport failures, timeouts, and malformed
// responses are logged and collapse into an empty result, exactly like a
// vehicle with no recalls. Callers that need to tell the two apart must watch
// the client's logger. This mirrors the registry tooling this library
// replaces and is a deliberate availability-over-visibility trade-off.
package recall
