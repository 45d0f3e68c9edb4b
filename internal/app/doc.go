// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the validation run, decoupled from any
// specific entrypoint like a CLI.
//
// A run moves through a fixed sequence of stages:
//
//	Loading -> Parsing -> GraphBuilt -> ConsistencyChecked -> CyclesScanned
//	        -> SectionsChecked -> LinksChecked -> CodeChecked
//
// The first failure ends the run and is returned as a *StageError naming the
// stage it happened in.
package app
