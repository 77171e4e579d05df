// Package rpq evaluates regular path queries over a graph.Graph: Intersect
// implements the tensor/intersection pipeline (spec §4.D) and BFS
// implements the multi-source front-propagation variant (spec §4.E). BFS
// takes no options; its traversal is boolean-matrix fixed-point
// propagation, not a literal queue-based walk.
package rpq
