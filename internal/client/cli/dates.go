package cli

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/olebedev/when"
	whencommon "github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var dateParser = newDateParser()

func newDateParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(whencommon.All...)
	return w
}

// parseDay accepts YYYY-MM-DD or an English expression such as
// "yesterday" or "2 weeks ago", resolved against now.
func parseDay(s string, now time.Time) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}
	r, err := dateParser.Parse(s, now)
	if err != nil {
		return civil.Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	if r == nil {
		return civil.Date{}, fmt.Errorf("unrecognized date %q", s)
	}
	return civil.DateOf(r.Time), nil
}

// parseOptionalDay is parseDay for flags that may be left empty.
func parseOptionalDay(s string, now time.Time) (*civil.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseDay(s, now)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
