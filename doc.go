// Package cvrp is a toolkit for the Capacitated Vehicle Routing Problem:
// instances, a linked-list solution representation with O(1) moves, and a
// savings constructor to seed local search.
//
// 🚀 What is in the box?
//
//	• Instances: X (TSPLIB), Golden and Zachariadis–Kiranoudis readers,
//	  TSPLIB/JSON writers, random generation and customer sub-views
//	• Solutions: routes as circular doubly-linked lists through the depot,
//	  exact incremental costs, change tracking and a full invariant audit
//	• Construction: Clarke & Wright savings with YAML-loadable options
//
// Everything is organized under five subpackages:
//
//	pool/         fixed-capacity LIFO id pool
//	matrix/       dense cost matrices, Euclidean builder and validators
//	instance/     Provider interface, Instance, SubInstance, parsers & writers
//	solution/     Solution, moves, audit, load/save
//	clarkewright/ savings construction
//
// Quick example:
//
//	in := instance.Load("X-n101-k25.vrp")
//	if !in.IsValid() {
//		log.Fatal(in.Err())
//	}
//	s := solution.New(in)
//	if err := clarkewright.Run(s, clarkewright.DefaultOptions()); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(s)
//
// Installation:
//
//	go get github.com/katalvlaran/cvrp
package cvrp
