/*
Package grd defines the domain model for Guided Reasoning Diagrams: the
Node/Edge/Structure graph types, the derived execution Step, and the error
taxonomy shared by the parsing pipeline.

A GRD is a directed acyclic flowchart describing an ordered set of reasoning
sub-steps and their dependencies. Structures are immutable once built;
everything in this package is safe for concurrent use.
*/
package grd
