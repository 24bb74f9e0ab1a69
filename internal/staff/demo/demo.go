// Package demo runs the aggregation demonstration: one address is printed,
// shared with a new employee, and printed again unchanged.
package demo

import (
	"fmt"
	"io"

	"github.com/gartstein/staff/internal/staff/fixtures"
	"github.com/gartstein/staff/internal/staff/models"
	"go.uber.org/zap"
)

// Runner writes the demonstration output to out.
type Runner struct {
	out    io.Writer
	logger *zap.Logger
}

// NewRunner constructs a Runner writing to out.
func NewRunner(out io.Writer, logger *zap.Logger) *Runner {
	return &Runner{
		out:    out,
		logger: logger.Named("demo"),
	}
}

// Run builds the sample address, prints it, hands it to an employee,
// then prints the address again.
func (r *Runner) Run(sample *fixtures.Sample) error {
	address, err := sample.NewAddress()
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	r.logger.Debug("Address created", zap.String("street_address", address.StreetAddress()))

	if err := r.println("Printing the address before creating an employee instance:", address, ""); err != nil {
		return err
	}

	if err := r.runEmployeeDemo(sample, address); err != nil {
		return err
	}

	return r.println("Printing the address again after the demo method has finished:", address)
}

// runEmployeeDemo creates an employee locally around the shared address.
func (r *Runner) runEmployeeDemo(sample *fixtures.Sample, address *models.Address) error {
	employee, err := sample.NewEmployee(address)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	r.logger.Debug("Employee created",
		zap.String("name", employee.Name()),
		zap.String("job_role", string(employee.JobRole())),
	)

	return r.println("Printing the employee's details:", employee, "")
}

func (r *Runner) println(lines ...any) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
