// Package seating implements the core seating-organisation engine.
//
// The engine assigns a roster of named people to fixed-capacity tables,
// honoring pairwise social constraints: people who must sit together
// ("with") and people who must not ("without"). Re-running an organisation
// after people, tables, or preferences change can preserve the existing
// arrangement ("persistent" mode), minimizing disruption.
//
// # Pipeline
//
// [Organiser.Organise] runs a strict one-way pipeline:
//
//  1. Build an undirected compatibility graph from "with" preferences
//     (the relation is forced symmetric).
//  2. Prune edges forbidden by "without" preferences; "without" strictly
//     overrides "with". Severed pairs are recorded and exposed via
//     [Organiser.RemovedEdges].
//  3. Compute connected components of the pruned graph in roster order.
//     Each multi-member component is a cluster that must share a table.
//  4. Place clusters largest-first into the first table with enough free
//     seats, creating new tables on overflow. Clusters are never split.
//  5. Shuffle the remaining individuals with the injected random source
//     and seat each at the first table with a free seat that hosts no one
//     from their "without" set, again creating tables on overflow.
//  6. Softly balance occupancy by relocating unconstrained individuals
//     until table sizes differ by at most one (best effort).
//  7. Refresh the derived seating state.
//
// The engine never fails for "too many people": table creation is the
// overflow policy, so every organisation seats the complete roster.
//
// # Determinism
//
// Graph construction, pruning, and clustering are deterministic for
// identical inputs. The individual-placement shuffle uses a seedable
// source ([Config.Seed]), so full runs reproduce under a fixed seed.
//
// # Limitations
//
// People are identified solely by display name. Two people with the same
// name are indistinguishable; callers that need stronger identity must
// disambiguate names before calling the engine.
//
// # Concurrency
//
// An Organiser is not safe for concurrent use. Callers must serialize
// Organise, AddPerson, and AddTable against the same instance.
package seating
