// SPDX-License-Identifier: MIT

// Package archive is the persisted-state bridge of symkernel.
//
// An expression is saved as a tree of Nodes. Every node carries a class
// name, scalar properties and named child lists:
//
//	class: mul
//	children:
//	  op:
//	    - class: symbol
//	      props: {name: x}
//	    - class: num
//	      props: {re: "1/2", im: "0"}
//
// Substrate classes (num, symbol, add, mul, ncmul, power, idx, indexed,
// delta) are handled here. Any other value participates by implementing
// Archiver and registering a Factory for its class name:
//
//	func init() {
//		archive.Register("su3t", loadBase)
//	}
//
// Loading rebuilds values through the canonicalizing constructors, so a
// loaded expression is in the same canonical form as a freshly built one.
// Symbols are resolved by name against a caller-provided Symbols table;
// names the table does not know create new symbols.
//
// Encode and Decode write and read the YAML text form (gopkg.in/yaml.v3).
// Properties are decoded into typed headers with mapstructure, so integers
// written as strings (or the reverse) are accepted.
package archive
