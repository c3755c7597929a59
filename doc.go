// Package aco provides a Go implementation of Ant Colony Optimization for the
// shortest open Hamiltonian path over a complete weighted graph.
//
// A fixed number of ants walk a symmetric distance matrix for a fixed number
// of generations. Each ant picks its next vertex by scoring unvisited
// candidates with pheromone^α · (1/distance)^β; after every generation but
// the last, pheromone evaporates by ρ and each ant deposits L_min/cost on
// the edges it used, L_min being the cost of one greedy nearest-neighbour
// path. The path does not return to its start, and the result is an
// approximation.
//
// Basic usage:
//
//	// Load configuration
//	config, err := aco.LoadConfig("path/to/aco-config.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Build or load the distance model
//	dist, err := aco.NewDistances(config)
//	if err != nil {
//		log.Fatalf("Error building distances: %v", err)
//	}
//
//	// Create the colony and run every generation
//	colony, err := aco.NewColony(config, dist, aco.NewLogReporter(nil))
//	if err != nil {
//		log.Fatalf("Error creating colony: %v", err)
//	}
//	defer colony.Close()
//
//	best, err := colony.Run()
//	if err != nil {
//		log.Fatalf("Error running colony: %v", err)
//	}
//	fmt.Println(best.Cost, best.Path)
package aco
