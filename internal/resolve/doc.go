// Package resolve decides which target type a schema node denotes.
//
// Resolution pipeline:
//  1. Dispatch on the node shape: dictionary, array or scalar
//  2. Resolve the element/value kind through a closed switch over the
//     primitive type tags; unknown tags fail with NotImplemented
//  3. Synthesize the enum declaration a string or integer enum requires,
//     naming integer members through the symbol registry
//  4. Coerce the declared default to the resolved kind
//  5. Attach validator constraints (numeric bounds, array and item lengths)
//
// Resolution is side-effect free apart from the registry build it may
// trigger, and a Resolver is safe for concurrent use.
package resolve
