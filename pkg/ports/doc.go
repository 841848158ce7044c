/*
Package ports defines the driven ports (interfaces) for the Braid serve
surfaces.

The core pipeline is pure and needs no ports; these interfaces exist for
the adapters around it, currently plan caching. Each port ships with a
contract suite in the tests subpackage that every implementation must
pass.
*/
package ports
