// Package gridpath finds walkable routes across 2D walkability grids.
//
// It exposes three entry points:
//
//   - FindPath: run an A* search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - FindPaths: run many independent queries concurrently over one shared grid.
//
// Grids (see package grid) only hold walkability. Every search owns a private
// Space with the per-cell search state, so a grid can serve concurrent searches
// as long as nobody mutates it while they run.
package gridpath
