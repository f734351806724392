// Package relationship finds and classifies the shortest relationship
// between two individuals in a pedigree.Store via bidirectional BFS over
// the undirected union of parent<->child and spouse<->spouse edges.
package relationship
