package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	artifacts BundleVerifier
}

// New creates a Service.
func New(artifacts BundleVerifier) *Service {
	return &Service{artifacts: artifacts}
}

// Check runs health checks against all components. The artifact check
// re-verifies the bundle on disk, so it catches files replaced or corrupted
// after startup, not just at boot.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := ctx.Err(); err != nil {
		checks["artifacts"] = CheckError
	} else if err := s.artifacts.Verify(); err != nil {
		checks["artifacts"] = CheckError
	} else {
		checks["artifacts"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
