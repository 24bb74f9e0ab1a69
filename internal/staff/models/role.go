package models

import (
	"fmt"
	"strings"

	e "github.com/gartstein/staff/internal/staff/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// JobRole represents a role in a software company.
// The catalog is a sample, not an exhaustive list.
type JobRole string

const (
	EngineeringManager     JobRole = "ENGINEERING_MANAGER"
	MarketingContributor   JobRole = "MARKETING_CONTRIBUTOR"
	MarketingManager       JobRole = "MARKETING_MANAGER"
	Accountant             JobRole = "ACCOUNTANT"
	FinanceContributor     JobRole = "FINANCE_CONTRIBUTOR"
	FinanceManager         JobRole = "FINANCE_MANAGER"
	SoftwareEngineer       JobRole = "SOFTWARE_ENGINEER"
	SeniorSoftwareEngineer JobRole = "SENIOR_SOFTWARE_ENGINEER"
	SoftwareArchitect      JobRole = "SOFTWARE_ARCHITECT"
	SoftwareDeveloper      JobRole = "SOFTWARE_DEVELOPER"
	FrontendDeveloper      JobRole = "FRONTEND_DEVELOPER"
	BackendDeveloper       JobRole = "BACKEND_DEVELOPER"
	FullStackDeveloper     JobRole = "FULL_STACK_DEVELOPER"
	DevOpsEngineer         JobRole = "DEVOPS_ENGINEER"
	TestAutomationEngineer JobRole = "TEST_AUTOMATION_ENGINEER"
	SoftwareTester         JobRole = "SOFTWARE_TESTER"
	SystemsAnalyst         JobRole = "SYSTEMS_ANALYST"
	DatabaseAdministrator  JobRole = "DATABASE_ADMINISTRATOR"
	TechnicalLead          JobRole = "TECHNICAL_LEAD"
	ProjectManager         JobRole = "PROJECT_MANAGER"
)

var roleDisplayNames = map[JobRole]string{
	EngineeringManager:     "Engineering Manager",
	MarketingContributor:   "Marketing Contributor",
	MarketingManager:       "Marketing Manager",
	Accountant:             "Accountant",
	FinanceContributor:     "Finance Contributor",
	FinanceManager:         "Finance Manager",
	SoftwareEngineer:       "Software Engineer",
	SeniorSoftwareEngineer: "Senior Software Engineer",
	SoftwareArchitect:      "Software Architect",
	SoftwareDeveloper:      "Software Developer",
	FrontendDeveloper:      "Frontend Developer",
	BackendDeveloper:       "Backend Developer",
	FullStackDeveloper:     "Full Stack Developer",
	DevOpsEngineer:         "DevOps Engineer",
	TestAutomationEngineer: "Test Automation Engineer",
	SoftwareTester:         "Software Tester",
	SystemsAnalyst:         "Systems Analyst",
	DatabaseAdministrator:  "Database Administrator",
	TechnicalLead:          "Technical Lead",
	ProjectManager:         "Project Manager",
}

// display names keyed in upper case so lookups ignore case
var rolesByDisplayName = lo.MapKeys(lo.Invert(roleDisplayNames), func(_ JobRole, name string) string {
	return strings.ToUpper(name)
})

// DisplayName returns the user-friendly role name.
func (r JobRole) DisplayName() string {
	return roleDisplayNames[r]
}

func (r JobRole) IsValid() bool {
	_, ok := roleDisplayNames[r]
	return ok
}

// ParseJobRole resolves a role from its enum name ("TECHNICAL_LEAD") or its
// display name ("Technical Lead"), ignoring case.
func ParseJobRole(s string) (JobRole, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	if role := JobRole(s); role.IsValid() {
		return role, nil
	}
	if role, ok := rolesByDisplayName[s]; ok {
		return role, nil
	}
	return "", fmt.Errorf("%w: unknown job role %q", e.ErrInvalidArgument, s)
}

func (r *JobRole) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	role, err := ParseJobRole(raw)
	if err != nil {
		return err
	}
	*r = role
	return nil
}
