package app

import (
	"fmt"
	"strings"

	"cydpanel/hal"
)

// logKV writes one "# msg key=value ..." line. The leading '#' keeps log
// output that shares the UART with telemetry from parsing as JSON.
func logKV(l hal.Logger, msg string, kv ...any) {
	if l == nil {
		return
	}
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		b.WriteByte(' ')
		fmt.Fprint(&b, kv[i])
		b.WriteByte('=')
		switch v := kv[i+1].(type) {
		case string:
			if strings.ContainsAny(v, " \t\"=") || v == "" {
				fmt.Fprintf(&b, "%q", v)
			} else {
				b.WriteString(v)
			}
		case error:
			fmt.Fprintf(&b, "%q", v.Error())
		default:
			fmt.Fprint(&b, v)
		}
	}
	l.WriteLineString(b.String())
}
