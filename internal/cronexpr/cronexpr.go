// Package cronexpr explains cron expressions and lists their upcoming
// activation times. Five-field expressions, an optional leading seconds
// field and @-descriptors are accepted; day-of-week 7 means Sunday.
package cronexpr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	crondesc "github.com/lnquy/cron"
	"github.com/robfig/cron/v3"
)

// DefaultRuns is the number of activations returned when none is requested.
const DefaultRuns = 5

var (
	ErrEmptyExpression   = errors.New("cron expression is empty")
	ErrInvalidExpression = errors.New("invalid cron expression")
)

// Preset is a named, commonly used expression.
type Preset struct {
	Label string `json:"label"`
	Expr  string `json:"expr"`
}

// Presets returns the built-in expressions in display order.
func Presets() []Preset {
	return []Preset{
		{Label: "Every Minute", Expr: "* * * * *"},
		{Label: "Every 5 Minutes", Expr: "*/5 * * * *"},
		{Label: "Hourly", Expr: "0 * * * *"},
		{Label: "Daily", Expr: "0 0 * * *"},
		{Label: "Weekly", Expr: "0 0 * * 0"},
		{Label: "Monthly", Expr: "0 0 1 * *"},
	}
}

var descriptors = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@midnight": "0 0 * * *",
	"@hourly":   "0 * * * *",
}

var parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Parse validates expr and returns its schedule.
func Parse(expr string) (cron.Schedule, error) {
	expr = normalize(expr)
	if expr == "" {
		return nil, ErrEmptyExpression
	}
	sched, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return sched, nil
}

// normalize trims expr and rewrites day-of-week 7 to 0, which both
// parsers below only know as Sunday.
func normalize(expr string) string {
	expr = strings.TrimSpace(expr)
	fields := strings.Fields(expr)
	if len(fields) != 5 && len(fields) != 6 {
		return expr
	}
	last := len(fields) - 1
	items := strings.Split(fields[last], ",")
	for i, item := range items {
		switch {
		case item == "7":
			items[i] = "0"
		case strings.HasSuffix(item, "-7") && !strings.Contains(item, "/"):
			if from := strings.TrimSuffix(item, "-7"); from == "7" {
				items[i] = "0"
			} else {
				items[i] = from + "-6,0"
			}
		}
	}
	fields[last] = strings.Join(items, ",")
	return strings.Join(fields, " ")
}

// Describe returns an English description of expr.
func Describe(expr string) (string, error) {
	if _, err := Parse(expr); err != nil {
		return "", err
	}
	expr = normalize(expr)
	if strings.HasPrefix(expr, "@every ") {
		return "Every " + strings.TrimSpace(strings.TrimPrefix(expr, "@every ")), nil
	}
	if full, ok := descriptors[strings.ToLower(expr)]; ok {
		expr = full
	}
	d, err := crondesc.NewDescriptor()
	if err != nil {
		return "", err
	}
	desc, err := d.ToDescription(expr, crondesc.Locale_en)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return desc, nil
}

// Next returns up to n activation times strictly after from. n <= 0 means
// DefaultRuns. Fewer times are returned when the schedule never fires again.
func Next(expr string, from time.Time, n int) ([]time.Time, error) {
	sched, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultRuns
	}
	out := make([]time.Time, 0, n)
	t := from
	for len(out) < n {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		out = append(out, t)
	}
	return out, nil
}
