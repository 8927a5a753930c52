// Package octopus simulates a cavern of flashing octopuses.
//
// Each step raises every energy level by one. Any octopus above Threshold
// flashes: its level resets to 0 and each of its eight neighbours that has
// not flashed this step gains one energy, which may push them over the
// threshold in turn. An octopus flashes at most once per step; flashed
// octopuses stay at 0 until the next step begins.
//
// Two propagation strategies are available and produce identical grids:
//
//   - Rescan (default): sweep the grid in row-major order until a sweep finds
//     nothing above Threshold. O(W×H×k) per step for k sweeps.
//   - Worklist (WithWorklist): enqueue each octopus the moment it crosses
//     Threshold and drain the queue. O(W×H + 8F) per step for F flashes.
//
// Errors:
//
//   - ErrNeverSynchronized if FirstSynchronized exhausts its step limit.
package octopus
