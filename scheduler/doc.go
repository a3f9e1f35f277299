// Package scheduler drives the repeated shuffle/copy/match cycle that
// turns one frozen template graph into a set of independent matching
// attempts, harvests their results through a completion channel, and
// keeps a running best scored by the configured metric.
//
// One spawning goroutine owns the template, the spawn count and the random
// source; the goroutine that called Run owns the running best; worker
// goroutines each own a single graph copy and touch nothing else. The
// first iteration never shuffles the template, matching the reference
// engine's behavior of trying the declared order before any randomized
// attempt.
package scheduler
