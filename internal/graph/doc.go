// Package graph turns an Analysis tree into renderable mind map data.
//
// ToGraph assigns ids and edges, Layout places nodes on concentric rings
// around the main node, and Relax nudges apart nodes that ended up too
// close. Simple builds the keyword-circle map used when nothing else
// produced a tree.
package graph
