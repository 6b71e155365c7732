/*
File    : gomix-core/eval/signal.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Non-local control flow (return/break/continue) is represented as an
explicit signal value bubbled up through execute, rather than as a
thrown/panicked sentinel: each Block and loop inspects the signal kind
returned by its last executed statement and reacts accordingly. This
keeps every unwind path an ordinary Go return, so environment
restoration via defer runs uniformly whether a block finishes normally,
returns, breaks, continues, or fails with a runtime error.
*/
package eval

import "github.com/akashmaji946/gomix-core/objects"

// SignalKind tags what kind of non-local control transfer, if any, a
// statement produced.
type SignalKind int

const (
	SignalNone SignalKind = iota
	SignalReturn
	SignalBreak
	SignalContinue
)

// Signal carries a control-transfer kind and, for SignalReturn, the
// returned Value.
type Signal struct {
	Kind  SignalKind
	Value objects.Value
}

var normalSignal = Signal{Kind: SignalNone}
