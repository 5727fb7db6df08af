package table

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// DescriptionWidth is the column at which free text is wrapped.
const DescriptionWidth = 40

func anyToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64, float32, int, int32, int64, uint, uint32, uint64, bool:
		return fmt.Sprint(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// wrapText folds whitespace and wraps s at width, breaking words that are
// longer than a whole line.
func wrapText(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return wrap.String(wordwrap.String(s, width), width)
}
