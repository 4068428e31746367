// Package typespec parses YAML type-descriptor definitions.
//
// The compiler front-end normally hands type descriptors to the runtime in
// memory. For tooling and tests it is convenient to write them down; this
// package defines that syntax:
//
//	types:
//	  vote: int
//	  ballot:
//	    seq: int
//	  tally:
//	    map:
//	      key: machine
//	      val: int
//	  pair:
//	    tuple: [int, bool]
//	  request:
//	    ntuple:
//	      - name: from
//	        type: machine
//	      - name: votes
//	        type: {seq: vote}
//	  blob:
//	    foreign: text
//
// Scalar entries name a primitive (any, bool, int, event, machine, model) or
// refer to another declaration. Foreign entries are resolved against an
// explicit types.Registry. Unknown references and reference cycles are
// parse errors.
package typespec
