// Package grafo is a small toolkit for building, inspecting, and querying
// weighted graphs — directed or undirected — entirely in memory.
//
// What's inside:
//
//	core/      — the Graph type: insertion-ordered adjacency lists,
//	             weighted edges keyed by (from, to) pairs
//	euler/     — Eulerian / semi-Eulerian classification by odd-degree count
//	dijkstra/  — single-source shortest distances and path reconstruction
//	edgelist/  — flat "source target weight" text import
//	graphspec/ — YAML/JSON graph documents and Mermaid export
//	commands/  — the grafo CLI, including an interactive shell
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      5   2
//	       \  │
//	        ──C
//
//	the shortest path A→C runs through B at total cost 3.
//
// Library packages are synchronous and assume one caller at a time;
// wrap a Graph in your own mutex if you need concurrent access.
//
//	go get github.com/avelyra/grafo
package grafo
