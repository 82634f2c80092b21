package recommend

import "testing"

func TestRelatedDepartmentsAlwaysIncludesFilter(t *testing.T) {
	e := newTestEngine()
	got := e.RelatedDepartments("Computer Science", nil, "", "")
	if len(got) != 1 || !got["Computer Science"] {
		t.Fatalf("unmatched query should return just the filter, got %v", got)
	}
}

func TestRelatedDepartmentsExpandsOnKeywords(t *testing.T) {
	e := newTestEngine()
	got := e.RelatedDepartments("Computer Science", []string{"psychology"}, "", "")
	if !got["Computer Science"] {
		t.Fatalf("filter department dropped: %v", got)
	}
	if !got["Psychology"] {
		t.Fatalf("psychology interest should pull in the Psychology department: %v", got)
	}
}

func TestRelatedDepartmentsUnionOfMatches(t *testing.T) {
	e := newTestEngine()
	narrow := e.RelatedDepartments("Computer Science", []string{"web development"}, "", "")
	wide := e.RelatedDepartments("Computer Science", []string{"web development"}, "environmental sustainability", "finance")
	if len(wide) <= len(narrow) {
		t.Fatalf("more matching keyword groups should expand the set: narrow=%v wide=%v", narrow, wide)
	}
}

func TestRelatedDepartmentsUsesAllQueryFields(t *testing.T) {
	e := newTestEngine()
	fromGoals := e.RelatedDepartments("", nil, "", "cybersecurity analyst")
	found := false
	for dept := range fromGoals {
		if dept != "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("career goals alone should drive expansion, got %v", fromGoals)
	}
}
