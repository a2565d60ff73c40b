package mayo

import (
	"fmt"
	"io"
	"os"
)

var debugOn = os.Getenv("MAYO_DEBUG") == "1"

// dbg writes diagnostic text when MAYO_DEBUG=1. It only narrates control
// flow the scheme already treats as public (retry counts, trial numbers),
// never secret values.
func dbg(w io.Writer, f string, a ...any) {
	if debugOn {
		fmt.Fprintf(w, f, a...)
	}
}
