package recommend

// weights is one row of the mode-dependent weight table. The Bonus weight
// multiplies (1 + course number bonus) so the bonus nudges rather than
// dominates.
type weights struct {
	Interest     float64
	Topic        float64
	Career       float64
	Difficulty   float64
	Prerequisite float64
	Popularity   float64
	Level        float64
	Bonus        float64
}

// weightsFor selects the weight vector for the current query mode. With
// specific topics present, semantic topic match dominates; otherwise
// interest match does. Cross-department mode leans harder on both, and
// exploring mode shifts weight toward career alignment.
func weightsFor(crossDept, exploring, hasTopics bool) weights {
	switch {
	case crossDept && hasTopics && exploring:
		return weights{Interest: 0.20, Topic: 0.50, Career: 0.15, Difficulty: 0.03, Prerequisite: 0.06, Popularity: 0.02, Level: 0.03, Bonus: 0.01}
	case crossDept && hasTopics:
		return weights{Interest: 0.25, Topic: 0.55, Career: 0.08, Difficulty: 0.02, Prerequisite: 0.05, Popularity: 0.02, Level: 0.02, Bonus: 0.01}
	case crossDept && exploring:
		return weights{Interest: 0.40, Topic: 0.25, Career: 0.15, Difficulty: 0.04, Prerequisite: 0.08, Popularity: 0.02, Level: 0.04, Bonus: 0.02}
	case crossDept:
		return weights{Interest: 0.50, Topic: 0.25, Career: 0.10, Difficulty: 0.03, Prerequisite: 0.06, Popularity: 0.02, Level: 0.03, Bonus: 0.01}
	case hasTopics && exploring:
		return weights{Interest: 0.05, Topic: 0.45, Career: 0.20, Difficulty: 0.05, Prerequisite: 0.12, Popularity: 0.03, Level: 0.08, Bonus: 0.02}
	case hasTopics:
		return weights{Interest: 0.08, Topic: 0.50, Career: 0.15, Difficulty: 0.05, Prerequisite: 0.10, Popularity: 0.03, Level: 0.07, Bonus: 0.02}
	case exploring:
		return weights{Interest: 0.10, Topic: 0.25, Career: 0.25, Difficulty: 0.06, Prerequisite: 0.14, Popularity: 0.04, Level: 0.12, Bonus: 0.04}
	default:
		return weights{Interest: 0.15, Topic: 0.30, Career: 0.20, Difficulty: 0.06, Prerequisite: 0.14, Popularity: 0.04, Level: 0.08, Bonus: 0.03}
	}
}
