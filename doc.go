// Package ifgnet selects interferogram networks for InSAR time-series work.
//
// Given a stack of co-registered interferograms sharing one pixel grid, it:
//
//	epoch/    : derives the distinct acquisition dates, repeat counts and spans
//	refpixel/ : finds the reference pixel with the steadiest well-covered chip
//	network/  : models epochs and interferograms as a toggleable weighted graph
//	mstselect/: computes a minimum spanning tree of that graph for every pixel
//
// Supporting packages:
//
//	ifg/         : the Interferogram type and stack checks
//	core/        : thread-safe weighted undirected graph primitives
//	prim_kruskal/: Prim and Kruskal spanning forests with deterministic ties
//	bfs/         : breadth-first traversal and component rooting
//	config/      : YAML options, validation and logger setup
//
// Quick picture of one pixel:
//
//	2006-06-19 ──0.1── 2006-07-24
//	        \              │
//	        0.3           0.2
//	          \            │
//	           2006-08-28 ─┘
//
// All three interferograms valid: the tree keeps the 0.1 and 0.2 edges. If the
// 0.1 interferogram is missing at that pixel, the tree falls back to 0.2 and 0.3.
//
//	go run ./examples -config run.yaml
package ifgnet
