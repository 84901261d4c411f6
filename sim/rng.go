package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation replication.
// Two replications with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical event logs.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// ReplicationKey derives the key for replication idx of a trial whose base
// seed is key. The derivation is order-independent, so replications may be
// executed in parallel and still draw identical streams.
func ReplicationKey(key SimulationKey, idx int) SimulationKey {
	return SimulationKey(int64(key) ^ fnv1a64(fmt.Sprintf("replication_%d", idx)))
}

// === Subsystem Constants ===

const (
	// SubsystemArrivals is the RNG stream driving the thinning arrival process.
	// Nothing else may draw from it; this isolation is what keeps common
	// random numbers valid across scenario comparisons.
	SubsystemArrivals = "arrivals"

	// SubsystemClassification is the RNG stream for the long-stay/short-stay
	// uniform draw made once per patient.
	SubsystemClassification = "classification"

	// SubsystemStay is the RNG stream for length-of-stay duration draws.
	SubsystemStay = "stay"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Each replication owns its own instance and
// must call it from a single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
