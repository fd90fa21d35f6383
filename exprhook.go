package gridmap

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// NewExprHook compiles an expr-lang expression into an IndexTransform. The
// expression sees the translated index as the variable "index" and must
// yield an integer, e.g. "index + 10" or "index == 3 ? 0 : index".
//
// An unmapped index bypasses the expression and is returned as-is, so
// expressions never have to special-case the sentinel.
func NewExprHook(expression string) (IndexTransform, error) {
	program, err := expr.Compile(expression,
		expr.Env(map[string]any{"index": 0}),
		expr.AsInt(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile hook expression %q: %w", expression, err)
	}
	return func(index int) int {
		if index == Unmapped {
			return Unmapped
		}
		out, err := expr.Run(program, map[string]any{"index": index})
		if err != nil {
			// Runtime failure leaves the index unadjusted; hook transforms
			// have no error channel.
			return index
		}
		result, ok := out.(int)
		if !ok {
			return index
		}
		return result
	}, nil
}
