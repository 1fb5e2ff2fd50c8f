package domain

type RootCauseCategory string

const (
	CauseExternalDependency RootCauseCategory = "external_dependency"
	CauseResourcing         RootCauseCategory = "resourcing"
	CauseScopeChange        RootCauseCategory = "scope_change"
	CauseTechnicalDebt      RootCauseCategory = "technical_debt"
	CauseCommunication      RootCauseCategory = "communication"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// RootCause classifies why an item became a roadblock. Factor is optional
// but, when present, must belong to the category's factor set.
type RootCause struct {
	Category RootCauseCategory
	Factor   string
	Severity Severity
}

// CauseFactors maps each category to its accepted factor strings.
var CauseFactors = map[RootCauseCategory][]string{
	CauseExternalDependency: {"vendor_delay", "upstream_team", "third_party_outage", "approval_pending"},
	CauseResourcing:         {"understaffed", "competing_priorities", "absence", "skill_gap"},
	CauseScopeChange:        {"requirements_changed", "underestimated", "hidden_complexity"},
	CauseTechnicalDebt:      {"legacy_system", "missing_tooling", "flaky_infrastructure"},
	CauseCommunication:      {"unclear_ownership", "missing_handoff", "late_feedback"},
}

// ValidSeverities is the canonical set of accepted severity strings.
var ValidSeverities = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}

// ValidCauseCategory reports whether c names a known category.
func ValidCauseCategory(c RootCauseCategory) bool {
	_, ok := CauseFactors[c]
	return ok
}

// ValidCauseFactor reports whether factor belongs to the category's set.
// The empty factor is always accepted.
func ValidCauseFactor(c RootCauseCategory, factor string) bool {
	if factor == "" {
		return true
	}
	for _, f := range CauseFactors[c] {
		if f == factor {
			return true
		}
	}
	return false
}
