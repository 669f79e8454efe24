// Package assign resolves many-to-many classified candidate pairs into a
// 1:1 sponsor→ticker matching.
//
// Two interchangeable strategies sit behind the Solver interface. Greedy
// sorts by score descending (ties broken lexicographically) and accepts a
// pair iff neither endpoint is claimed; it is O(P log P) and locally
// optimal. Optimal solves the assignment problem exactly with the
// Kuhn-Munkres algorithm, O(N³) in the larger partition, and its total
// score is greater than or equal to greedy's on every input.
//
// Pairs absent from the candidate set are forbidden edges: the optimal
// solver can never invent a match between entities that blocking excluded.
// Unmatched entities are simply omitted from the output.
package assign
