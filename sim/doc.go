// Package sim provides the core discrete-event simulation engine for ward
// bed occupancy.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - patient.go: the Patient lifecycle (waiting → occupying → discharged)
//   - event.go: the event types that drive the simulation and their tie order
//   - simulator.go: the event loop and the handlers that mutate ward state
//
// # Architecture
//
// The sim package owns the clock, event heap, bed pool, and run lifecycle;
// stochastic inputs and analysis live in sub-packages:
//   - sim/workload/: arrival-rate profiles, thinning arrival process,
//     length-of-stay model and the overnight rounding rule
//   - sim/stats/: pure-function aggregation over RunResults (occupancy,
//     waits, utilization, cross-replication confidence intervals)
//
// Randomness is partitioned: each replication owns a PartitionedRNG whose
// arrivals, classification, and stay streams are derived independently from
// the master seed, so replications are reproducible and parallel-safe.
package sim
