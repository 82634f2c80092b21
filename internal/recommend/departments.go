package recommend

import "strings"

// RelatedDepartments expands a department filter using the student's own
// words. Every rule whose keywords appear in the combined query text appends
// its departments; the filter department is always included. There is no
// negative case, an unmatched query simply returns the filter alone.
func (e *Engine) RelatedDepartments(filter string, interests []string, specificTopics, careerGoals string) map[string]bool {
	related := map[string]bool{filter: true}

	queryText := strings.ToLower(strings.Join(interests, " ") + " " + specificTopics + " " + careerGoals)
	for _, rule := range e.tables.DepartmentRules {
		if !containsAny(queryText, rule.Keywords) {
			continue
		}
		for _, dept := range rule.Departments {
			related[dept] = true
		}
	}
	return related
}
