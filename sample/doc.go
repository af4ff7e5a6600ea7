// Package sample builds complete single-elimination brackets.
//
// Play turns a seeded field into the games of a full bracket under the
// standard seeding convention (1 vs N, 8 vs 9, …), deciding each game
// with a caller-supplied rule. Generate produces a whole synthetic dataset
// (schools with coordinates plus brackets for every year, sport and
// division) from a fixed seed using gofakeit, for demos, tests and
// benchmarks.
//
// Both are deterministic: the same inputs always yield the same games in
// the same order, and the output always passes bracket.New.
package sample
