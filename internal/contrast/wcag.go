package contrast

// WCAG 2.x minimum contrast ratios.
const (
	AANormalThreshold  = 4.5
	AALargeThreshold   = 3.0
	AAANormalThreshold = 7.0
	AAALargeThreshold  = 4.5
)

// Compliance holds the four independent WCAG verdicts for a ratio.
type Compliance struct {
	AANormal  bool `json:"aaNormal"`
	AALarge   bool `json:"aaLarge"`
	AAANormal bool `json:"aaaNormal"`
	AAALarge  bool `json:"aaaLarge"`
}

// Classify evaluates ratio against every WCAG level. A ratio exactly at a
// threshold passes it.
func Classify(ratio float64) Compliance {
	return Compliance{
		AANormal:  ratio >= AANormalThreshold,
		AALarge:   ratio >= AALargeThreshold,
		AAANormal: ratio >= AAANormalThreshold,
		AAALarge:  ratio >= AAALargeThreshold,
	}
}

// Level is a named WCAG requirement.
type Level struct {
	Name      string
	Threshold float64
}

// Levels returns the four levels in display order.
func Levels() []Level {
	return []Level{
		{Name: "AA - Normal Text", Threshold: AANormalThreshold},
		{Name: "AA - Large Text", Threshold: AALargeThreshold},
		{Name: "AAA - Normal Text", Threshold: AAANormalThreshold},
		{Name: "AAA - Large Text", Threshold: AAALargeThreshold},
	}
}

// Passes reports the verdicts in the same order as Levels.
func (c Compliance) Passes() []bool {
	return []bool{c.AANormal, c.AALarge, c.AAANormal, c.AAALarge}
}

// Rating is a coarse quality label for a pair.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingPoor      Rating = "Poor"
)

// Rate labels a classification: AAA normal text is Excellent, AA normal
// text is Good, anything below is Poor.
func Rate(c Compliance) Rating {
	switch {
	case c.AAANormal:
		return RatingExcellent
	case c.AANormal:
		return RatingGood
	default:
		return RatingPoor
	}
}
