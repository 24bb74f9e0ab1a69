// Package fixtures holds the sample data used by the demo, embedded at
// build time so nothing is read from disk when the program runs.
package fixtures

import (
	_ "embed"
	"fmt"

	"github.com/gartstein/staff/internal/staff/models"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// AddressData is the raw address section of a sample document.
type AddressData struct {
	StreetAddress string         `yaml:"STREET_ADDRESS"`
	City          string         `yaml:"CITY"`
	State         models.USState `yaml:"STATE"`
	ZipCode       string         `yaml:"ZIP_CODE"`
}

// EmployeeData is the raw employee section of a sample document.
// The employee always references the document's address.
type EmployeeData struct {
	Name    string         `yaml:"NAME"`
	JobRole models.JobRole `yaml:"JOB_ROLE"`
}

// Sample is a decoded sample document.
type Sample struct {
	Address  AddressData  `yaml:"ADDRESS"`
	Employee EmployeeData `yaml:"EMPLOYEE"`
}

// Load decodes the embedded sample document.
func Load() (*Sample, error) {
	return Decode(sampleYAML)
}

// Decode decodes a sample document from YAML.
func Decode(data []byte) (*Sample, error) {
	var s Sample
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode sample: %w", err)
	}
	return &s, nil
}

// NewAddress builds the sample's address.
func (s *Sample) NewAddress() (*models.Address, error) {
	return models.NewAddress(s.Address.StreetAddress, s.Address.City, s.Address.State, s.Address.ZipCode)
}

// NewEmployee builds the sample's employee around addr.
func (s *Sample) NewEmployee(addr *models.Address) (*models.Employee, error) {
	return models.NewEmployee(s.Employee.Name, s.Employee.JobRole, addr)
}
