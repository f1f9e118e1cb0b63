package pluck

import (
	"fmt"
	"strings"
)

// Tracer is a function that is used to log or report extraction traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Println or log.Println, etc.
type Tracer func(v ...any)

type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
)

// trace reports one step of an extraction through TraceFunc, if set. Each
// line carries the stage, the strategy operation, the consumed count at the
// time, and the operation's arguments; a trailing error renders after the
// close paren.
func (c *Cursor[T]) trace(stage Stage, name string, args ...any) {
	if c.TraceFunc == nil {
		return
	}

	out := &strings.Builder{}
	switch stage {
	case StageFail:
		fmt.Fprint(out, "ERR ")
	case StageGot:
		fmt.Fprint(out, "GOT ")
	case StageTry:
		fmt.Fprint(out, "TRY ")
	}

	fmt.Fprint(out, name)
	fmt.Fprintf(out, "@%d(", c.count)

	for i, arg := range args {
		if i == len(args)-1 {
			if err, isErr := arg.(error); isErr {
				fmt.Fprintf(out, "): %v", err)
				c.TraceFunc(out.String())
				return
			}
		}

		if i > 0 {
			fmt.Fprint(out, ", ")
		}

		fmt.Fprintf(out, "%v", arg)
	}

	fmt.Fprint(out, ")")

	c.TraceFunc(out.String())
}
