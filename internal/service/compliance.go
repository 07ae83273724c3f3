package service

import (
	"context"
	"fmt"

	"pump_sizing"
	"pump_sizing/internal/engine"
	"pump_sizing/internal/repository"
)

type ComplianceService struct {
	runs      repository.RunRepo
	standards *engine.StandardsChecker
}

func NewComplianceService(runs repository.RunRepo, standards *engine.StandardsChecker) *ComplianceService {
	return &ComplianceService{runs: runs, standards: standards}
}

// Check evaluates the rules against the standards tables and records the
// run. A single invalid rule fails the whole batch.
func (s *ComplianceService) Check(ctx context.Context, rules []Rule) ([]pump_sizing.ComplianceResult, error) {
	results, err := s.standards.Check(rules)
	if err != nil {
		return nil, err
	}

	passed := 0
	for _, r := range results {
		if r.Pass {
			passed++
		}
	}
	summary := fmt.Sprintf("%d rules checked, %d passed", len(results), passed)
	if err := recordRun(ctx, s.runs, pump_sizing.RunCompliance, summary, rules, results); err != nil {
		return nil, err
	}
	return results, nil
}
