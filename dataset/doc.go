// Package dataset produces point-cloud distance matrices for filtration
// builds, and caches them on disk.
//
// 🌀 Samplers (deterministic per seed):
//
//	circle     S¹ in ℝ²
//	sphere     S² in ℝ³
//	torus      T² in ℝ³ (R = 2, r = 1)
//	swissroll  rolled sheet in ℝ³
//	uniform    unit square in ℝ²
//
// 💾 Cache: a pebble store keyed by Spec.Key, fronted by an in-memory LRU.
// Entries carry an xxhash checksum; a mismatch surfaces as ErrCorrupt.
package dataset
