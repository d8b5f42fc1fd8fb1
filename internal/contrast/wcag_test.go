package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Thresholds(t *testing.T) {
	c := Classify(4.5)
	assert.True(t, c.AANormal)
	assert.True(t, c.AALarge)
	assert.False(t, c.AAANormal)
	assert.True(t, c.AAALarge)

	c = Classify(3.0)
	assert.True(t, c.AALarge)
	assert.False(t, c.AANormal)
	assert.False(t, c.AAALarge)

	c = Classify(7.0)
	assert.Equal(t, Compliance{true, true, true, true}, c)

	assert.Equal(t, Compliance{}, Classify(1.0))
	assert.Equal(t, Compliance{}, Classify(2.999))
}

func TestClassify_Monotonic(t *testing.T) {
	prev := Classify(1.0)
	for r := 1.0; r <= 21.0; r += 0.01 {
		cur := Classify(r)
		for i, was := range prev.Passes() {
			if was {
				assert.True(t, cur.Passes()[i], "level %d regressed at ratio %.2f", i, r)
			}
		}
		// AAA normal implies AA normal; normal-text passes imply large-text passes.
		if cur.AAANormal {
			assert.True(t, cur.AANormal)
		}
		if cur.AANormal {
			assert.True(t, cur.AALarge)
		}
		if cur.AAANormal {
			assert.True(t, cur.AAALarge)
		}
		prev = cur
	}
}

func TestLevels_MatchPasses(t *testing.T) {
	levels := Levels()
	assert.Len(t, levels, 4)
	c := Classify(5.0)
	for i, lv := range levels {
		assert.Equal(t, 5.0 >= lv.Threshold, c.Passes()[i], lv.Name)
	}
}

func TestRate(t *testing.T) {
	assert.Equal(t, RatingExcellent, Rate(Classify(7.0)))
	assert.Equal(t, RatingGood, Rate(Classify(4.5)))
	assert.Equal(t, RatingGood, Rate(Classify(6.99)))
	assert.Equal(t, RatingPoor, Rate(Classify(4.49)))
	assert.Equal(t, RatingPoor, Rate(Classify(1)))
}
