// Package population models an exponentially growing population of
// lanternfish-like entities without materialising individuals.
//
// Every entity carries a timer counting days until it reproduces. Instead of
// a slice of timers, Counter keeps a ring of seven day-buckets addressed by a
// rotating index plus two staging slots for the first two days of a newborn's
// life. Advancing one day touches a constant number of slots, so 256 days of
// a population in the tens of billions cost the same as 256 days of five fish.
//
// Timer semantics:
//
//   - A timer in 0..6 lives in the ring; 7 and 8 live in the staging slots.
//   - An entity at 0 resets to 6 and spawns a newborn at 8 on the next day.
//
// Complexity: AdvanceOneDay O(1), Count O(1), memory O(1).
package population
