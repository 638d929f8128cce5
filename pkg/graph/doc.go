// Package graph provides the immutable, undirected graph values
// built from graph expressions.
//
// A graph is a set of named vertices and a set of unordered edges
// between two distinct vertices. Graphs are never modified after
// creation, all operations return new graphs:
//
//   - Vertex creates a graph with a single vertex.
//   - Union (operator +) merges the vertex and edge sets.
//   - Join (operator *) merges both graphs and additionally connects
//     every vertex of the first operand with every distinct vertex of
//     the second one.
//   - Induce restricts a graph to a given set of vertex names.
package graph
