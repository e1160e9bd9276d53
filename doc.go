// Package ringbuffer provides generic circular buffers that retain the most
// recent elements within a bound, for sliding-window style workloads such as
// last-N-items caches, position history, and recent packet buffers.
//
// Three shapes are provided:
//   - RingT: capacity-bounded, index-addressable, resizable. The general
//     purpose container.
//   - RingP: fixed-size, preallocated, add and peek only. The lean shape for
//     embedding in tracking state.
//   - WeightedRingT: bounded by total element weight rather than count.
//
// None of the containers are safe for concurrent use.
package ringbuffer
