package recommend

import (
	"math"
	"testing"
)

func TestWeightsSumToOne(t *testing.T) {
	for _, crossDept := range []bool{false, true} {
		for _, exploring := range []bool{false, true} {
			for _, hasTopics := range []bool{false, true} {
				w := weightsFor(crossDept, exploring, hasTopics)
				sum := w.Interest + w.Topic + w.Career + w.Difficulty +
					w.Prerequisite + w.Popularity + w.Level + w.Bonus
				if math.Abs(sum-1.0) > 1e-9 {
					t.Fatalf("weights for cross=%v exploring=%v topics=%v sum to %v, want 1.0",
						crossDept, exploring, hasTopics, sum)
				}
			}
		}
	}
}

func TestWeightsModeShifts(t *testing.T) {
	// Specific topics shift weight onto the semantic topic match.
	withTopics := weightsFor(false, false, true)
	without := weightsFor(false, false, false)
	if withTopics.Topic <= without.Topic {
		t.Fatalf("topic weight should rise with specific topics: %v vs %v", withTopics.Topic, without.Topic)
	}

	// Cross-department mode leans on interest match.
	cross := weightsFor(true, false, false)
	if cross.Interest <= without.Interest {
		t.Fatalf("interest weight should rise in cross-department mode: %v vs %v", cross.Interest, without.Interest)
	}

	// Exploring mode shifts toward career alignment.
	exploring := weightsFor(false, true, false)
	if exploring.Career <= without.Career {
		t.Fatalf("career weight should rise in exploring mode: %v vs %v", exploring.Career, without.Career)
	}
}
