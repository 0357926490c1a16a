package matching

// Candidate carries the profile fields the engine reads. CGPA is on a 0-10
// scale and nil when the student has not filled it in.
type Candidate struct {
	Skills         []string
	CGPA           *float64
	GraduationYear int
	Department     string
}

// EligibilityRules is a posting's optional hard gate. A nil pointer or an
// empty block means the posting is open to everyone.
type EligibilityRules struct {
	MinCGPA         *float64
	GraduationYears []int
	Departments     []string
}

// IsEligible evaluates the three criteria independently and ANDs them.
// An absent criterion never fails a candidate, and neither does an absent
// profile field (unknown CGPA or department passes).
func IsEligible(c Candidate, rules *EligibilityRules) bool {
	if rules == nil {
		return true
	}

	if rules.MinCGPA != nil && c.CGPA != nil && *c.CGPA < *rules.MinCGPA {
		return false
	}

	if len(rules.GraduationYears) > 0 && !containsInt(rules.GraduationYears, c.GraduationYear) {
		return false
	}

	if len(rules.Departments) > 0 && c.Department != "" && !containsString(rules.Departments, c.Department) {
		return false
	}

	return true
}

func containsInt(items []int, v int) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}

func containsString(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}
