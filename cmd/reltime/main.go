// Command reltime resolves relative time expressions from the command
// line and prints the resulting instants, one per line.
//
//	reltime 'now+1d/d' 'now-2h'
//	reltime -now 2023-08-21T05:40:00Z 'now+1w'
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	reltime "github.com/nos-digital/relative-time-str"
)

var nowFlag = flag.String("now", "", "reference instant as RFC 3339 instead of the system clock")

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		logrus.Fatal("usage: reltime [-now RFC3339] EXPRESSION...")
	}

	now := time.Now()
	if *nowFlag != "" {
		t, err := time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			logrus.Fatal(errors.Wrap(err, "invalid -now value"))
		}
		now = t
	}

	for _, expr := range flag.Args() {
		t, err := reltime.ParseWithNow(expr, now)
		if err != nil {
			logrus.Fatal(errors.Wrapf(err, "cannot resolve %q", expr))
		}
		fmt.Println(t.Format(time.RFC3339Nano))
	}
}
