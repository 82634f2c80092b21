package recommend

import (
	"regexp"
	"strings"

	"courserec-backend/internal/catalog"
)

// difficultyVocab maps the categorical difficulty vocabulary onto the
// numeric 2.0-4.5 scale shared by courses and preferences.
var difficultyVocab = map[string]float64{
	"low":    2.0,
	"easy":   2.0,
	"medium": 3.5,
	"high":   4.5,
	"hard":   4.5,
	"any":    3.5,
}

// difficultyScore compares course difficulty with the stated preference:
// 1.0 at an exact match, falling off linearly to 0 at a gap of 2 points.
func (e *Engine) difficultyScore(course catalog.Course, preference string) float64 {
	courseDifficulty := course.DifficultyRating
	if courseDifficulty <= 0 {
		courseDifficulty = 3.0
	}
	preferred, ok := difficultyVocab[strings.ToLower(preference)]
	if !ok {
		preferred = 3.5
	}

	diff := courseDifficulty - preferred
	if diff < 0 {
		diff = -diff
	}
	score := 1 - diff/2.0
	if score < 0 {
		return 0
	}
	return score
}

var courseCodePattern = regexp.MustCompile(`[A-Z]{2,4}\d{3}`)

// prerequisiteScore checks completed prerequisites permissively. Courses the
// student hasn't reached yet still score 0.6 so they remain visible as
// something to work toward.
func (e *Engine) prerequisiteScore(course catalog.Course, completedCourses []string) float64 {
	prereqs := strings.TrimSpace(course.Prerequisites)
	if prereqs == "" {
		return 1.0
	}
	switch strings.ToLower(prereqs) {
	case "none", "n/a":
		return 1.0
	}

	codes := courseCodePattern.FindAllString(strings.ToUpper(prereqs), -1)
	if len(codes) == 0 {
		// Standing or restriction prose without course codes.
		lower := strings.ToLower(prereqs)
		switch {
		case containsAny(lower, []string{"senior standing", "senior", "capstone"}):
			return 0.2
		case containsAny(lower, []string{"junior standing", "junior"}):
			return 0.5
		case containsAny(lower, []string{"majors only", "restriction", "approval"}):
			return 0.8
		default:
			return 1.0
		}
	}

	completed := make(map[string]bool, len(completedCourses))
	for _, id := range completedCourses {
		completed[strings.ToUpper(id)] = true
	}
	satisfied := 0
	for _, code := range codes {
		if completed[code] {
			satisfied++
		}
	}
	if satisfied == 0 {
		return 0.6
	}
	return 0.6 + 0.4*float64(satisfied)/float64(len(codes))
}

// popularityScore blends the course's rating with a confidence term that
// saturates at 10 student ratings. Courses without student ratings fall back
// to the estimated rating at half weight.
func (e *Engine) popularityScore(course catalog.Course) float64 {
	ratingBasis := course.AvgRating
	if ratingBasis <= 0 {
		ratingBasis = course.Rating
		if ratingBasis <= 0 {
			ratingBasis = 3.0
		}
	}
	ratingScore := (ratingBasis - 1) / 4

	if course.TotalRatings > 0 {
		confidence := float64(course.TotalRatings) / 10
		if confidence > 1.0 {
			confidence = 1.0
		}
		return 0.8*ratingScore + 0.2*confidence
	}
	return 0.5 * ratingScore
}

// levelScore rates how appropriate the course level is for the student. The
// student level comes from the stated academic level, or is estimated from
// the number of completed courses.
func (e *Engine) levelScore(course catalog.Course, completedCourses []string, academicLevel string) float64 {
	studentLevel := strings.ToLower(academicLevel)
	if studentLevel == "" {
		switch n := len(completedCourses); {
		case n == 0:
			studentLevel = "freshman"
		case n < 5:
			studentLevel = "sophomore"
		case n < 10:
			studentLevel = "junior"
		default:
			studentLevel = "senior"
		}
	}

	level := strings.ToLower(course.Level)
	switch {
	case strings.Contains(level, "freshman") || strings.Contains(level, "intro"):
		switch studentLevel {
		case "freshman":
			return 1.0
		case "sophomore":
			return 0.8
		case "junior":
			return 0.6
		case "senior":
			return 0.4
		default:
			return 0.7
		}
	case strings.Contains(level, "sophomore"):
		switch studentLevel {
		case "freshman":
			return 0.7
		case "sophomore":
			return 1.0
		case "junior":
			return 0.8
		case "senior":
			return 0.6
		default:
			return 0.7
		}
	case strings.Contains(level, "junior"):
		switch studentLevel {
		case "freshman":
			return 0.3
		case "sophomore":
			return 0.6
		case "junior":
			return 1.0
		case "senior":
			return 0.9
		default:
			return 0.8
		}
	case strings.Contains(level, "senior") || strings.Contains(level, "graduate"):
		switch studentLevel {
		case "freshman":
			return 0.1
		case "sophomore":
			return 0.2
		case "junior":
			return 0.5
		case "senior", "graduate":
			return 1.0
		default:
			return 0.6
		}
	default:
		return 0.8
	}
}

var courseNumberPattern = regexp.MustCompile(`\d{3}`)

// levelNumberBands lists the preferred course-number bands per academic
// level; each entry is the start of a 100-wide band.
var levelNumberBands = map[string][]int{
	"freshman":  {100, 200},
	"sophomore": {200, 300},
	"junior":    {300, 400},
	"senior":    {400, 500},
	"graduate":  {500, 600, 700},
}

// numberBonus nudges the final score toward courses whose catalog number
// fits the student's level: +0.15 for advanced students taking 300+ courses
// in band, +0.10 otherwise in band, -0.05 for juniors and seniors on sub-200
// courses.
func (e *Engine) numberBonus(course catalog.Course, academicLevel string) float64 {
	if academicLevel == "" {
		return 0
	}
	match := courseNumberPattern.FindString(course.ID)
	if match == "" {
		return 0
	}
	num := int(match[0]-'0')*100 + int(match[1]-'0')*10 + int(match[2]-'0')

	level := strings.ToLower(academicLevel)
	advanced := level == "sophomore" || level == "junior" || level == "senior"
	for _, band := range levelNumberBands[level] {
		if num >= band && num < band+100 {
			if advanced && num >= 300 {
				return 0.15
			}
			return 0.10
		}
	}
	if (level == "junior" || level == "senior") && num < 200 {
		return -0.05
	}
	return 0
}
