// Package sim provides the discrete-event simulation engine for grocery-sim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - customer.go: the Customer lifecycle (join → begin → finish) and its
//     one-shot timestamps
//   - event.go: the five event kinds that drive a run (join, begin, finish,
//     line open, line close)
//   - simulator.go: the event loop that drains the queue to exhaustion
//
// # Architecture
//
// A run is assembled from a Config: the GroceryStore holds the fixed line
// topology, a SelectionPolicy decides which line each arriving customer
// joins, and a CheckoutModel decides how long each checkout takes. Initial
// events come from ParseEvents (or programmatic construction); everything
// after that is spawned by executing events. Statistics are computed after
// the run from the per-line served histories (stats.go).
//
// # Key Interfaces
//
// The extension points are single-method interfaces:
//   - SelectionPolicy: pick the checkout line an arriving customer joins
//   - CheckoutModel: estimate the duration of a customer's checkout
//
// Both are chosen by name through NewSelectionPolicy and NewCheckoutModel.
//
// # Determinism
//
// Runs are reproducible: the event queue breaks timestamp ties by insertion
// order, and every randomized component draws from a subsystem stream derived
// from the master seed (rng.go).
package sim
