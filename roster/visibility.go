package roster

import (
	"github.com/cockroachdb/errors"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/log"
)

// VisibilityFilter decides which users a caller can see, from an expression
// over the maps `caller` and `candidate`. Both carry the keys id, name,
// label, vanished, admin and console; a nil caller is the console.
//
//	!candidate.vanished || caller.admin || caller.id == candidate.id
type VisibilityFilter struct {
	expr    string
	program *vm.Program
}

// CompileVisibility compiles src. An empty src lets everyone see everyone.
func CompileVisibility(src string) (*VisibilityFilter, error) {
	if src == "" {
		return &VisibilityFilter{}, nil
	}
	program, err := expr.Compile(src, expr.Env(env(nil, nil)), expr.AsBool())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile visibility expression %q", src)
	}
	return &VisibilityFilter{expr: src, program: program}, nil
}

// Match evaluates the expression for caller and candidate.
func (f *VisibilityFilter) Match(caller, candidate *User) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}
	output, err := expr.Run(f.program, env(caller, candidate))
	if err != nil {
		return false, err
	}
	visible, ok := output.(bool)
	if !ok {
		return false, errors.Newf("visibility expression result not bool, actual result: %v", output)
	}
	return visible, nil
}

// Visible adapts Match to the caller type used by argument trees. Callers
// that are not users are treated as the console. Evaluation errors hide the
// candidate.
func (f *VisibilityFilter) Visible(caller any, candidate *User) bool {
	u, _ := caller.(*User)
	visible, err := f.Match(u, candidate)
	if err != nil {
		log.Warn("visibility expression failed", zap.String("expr", f.expr), zap.Error(err))
		return false
	}
	return visible
}

// String returns the source expression.
func (f *VisibilityFilter) String() string {
	return f.expr
}

func env(caller, candidate *User) map[string]any {
	return map[string]any{
		"caller":    attributes(caller),
		"candidate": attributes(candidate),
	}
}

func attributes(u *User) map[string]any {
	if u == nil {
		return map[string]any{
			"id": "", "name": "", "label": "", "vanished": false, "admin": true, "console": true,
		}
	}
	return map[string]any{
		"id":       u.UUID,
		"name":     u.Nick,
		"label":    u.Label,
		"vanished": u.Vanished,
		"admin":    u.Admin,
		"console":  false,
	}
}
