// Package types defines the core value types shared across superlink:
// artifacts, categories, installation status, operation results, and the
// filesystem interface the engine mutates through.
//
// These types carry no behavior beyond derived accessors. Status is always
// computed by pkg/status from the live filesystem and never assigned from
// outside a discovery or reconcile pass.
package types
