package models

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Employee defines an immutable employee. The address is aggregated:
// the employee holds the caller's *Address and never copies it.
type Employee struct {
	name string
	// jobRole may be unset.
	jobRole JobRole
	address *Address
}

// EmployeeKey is a comparable snapshot of an employee, with the address
// held by value, for use as a map key.
type EmployeeKey struct {
	Name    string
	JobRole JobRole
	Address Address
}

// NewEmployee creates a fully initialized employee referencing address.
// Name and address are required; the job role may be unset.
func NewEmployee(name string, jobRole JobRole, address *Address) (*Employee, error) {
	if err := validateParams("an employee", employeeParams{
		Name:    name,
		JobRole: jobRole,
		Address: address,
	}); err != nil {
		return nil, err
	}
	return &Employee{
		name:    name,
		jobRole: jobRole,
		address: address,
	}, nil
}

func (emp *Employee) Name() string { return emp.name }

func (emp *Employee) JobRole() JobRole { return emp.jobRole }

// Address returns the same *Address the employee was created with.
func (emp *Employee) Address() *Address { return emp.address }

// String renders the employee as a multi-line block.
func (emp *Employee) String() string {
	role := emp.jobRole.DisplayName()
	if role == "" {
		role = unsetPlaceholder
	}

	var b strings.Builder
	b.WriteString("Employee{\n")
	b.WriteString("\tname='" + emp.name + "',\n")
	b.WriteString("\tjobRole=" + role + ",\n")
	b.WriteString("\taddress=" + emp.address.streetAddress + "\n")
	b.WriteString("\t\t\t" + emp.address.cityLine() + "\n")
	b.WriteString("}")
	return b.String()
}

// Equal compares name, job role and address, the address by value.
func (emp *Employee) Equal(other *Employee) bool {
	if emp == nil || other == nil {
		return emp == other
	}
	return emp.name == other.name &&
		emp.jobRole == other.jobRole &&
		emp.address.Equal(other.address)
}

// Hash returns a hash consistent with Equal.
func (emp *Employee) Hash() uint64 {
	if emp == nil {
		return 0
	}
	d := xxhash.New()
	_, _ = d.WriteString(emp.name)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(string(emp.jobRole))
	_, _ = d.Write([]byte{0})
	emp.address.writeTo(d)
	return d.Sum64()
}

func (emp *Employee) Key() EmployeeKey {
	return EmployeeKey{
		Name:    emp.name,
		JobRole: emp.jobRole,
		Address: *emp.address,
	}
}
