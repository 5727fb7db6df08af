package table

import (
	"strings"

	"github.com/Knetic/govaluate"

	"spaceevents/internal/model"
)

// Filter keeps the events matching a govaluate expression over the event's
// columns, e.g. `webcast_live == true && location =~ 'Florida'`.
type Filter struct {
	src  string
	expr *govaluate.EvaluableExpression
}

// NewFilter compiles expr. A blank expression yields a nil filter that keeps everything.
func NewFilter(expr string) (*Filter, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	e, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, err
	}
	return &Filter{src: expr, expr: e}, nil
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.src
}

// Match reports whether e satisfies the expression. Evaluation errors and
// non-boolean results count as a miss.
func (f *Filter) Match(e model.Event) bool {
	if f == nil {
		return true
	}
	params := e.Fields()
	// govaluate only does arithmetic on float64
	params["id"] = float64(e.ID)
	result, err := f.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// Apply returns the matching events in their original order.
func (f *Filter) Apply(events []model.Event) []model.Event {
	if f == nil {
		return events
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}
