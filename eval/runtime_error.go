/*
File    : gomix-core/eval/runtime_error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/gomix-core/lexer"
)

// RuntimeError is an ordinary Go error carrying the token whose line
// should be reported alongside it, formatted as "M\n[line L]". Runtime
// errors unwind the evaluator as normal Go error returns; they are never
// panicked.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
