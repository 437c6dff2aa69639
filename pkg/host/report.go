package host

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// RenderReport formats a run summary: every path's final load state and
// every capability object's invocation result.
func RenderReport(states []PathState, results []InvokeResult) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("modules:\n")
	for _, st := range states {
		_, _ = fmt.Fprintf(buf, "  %s: %s, %d registered\n", st.Path, st.State, st.Registered)
	}
	_, _ = buf.WriteString("invocations:\n")
	for _, r := range results {
		_, _ = fmt.Fprintf(buf, "  plugin %d: compute(%d) = %d\n", r.Index, r.Input, r.Output)
	}
	return buf.String()
}
