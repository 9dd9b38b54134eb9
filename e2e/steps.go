package e2e

import (
	"github.com/cucumber/godog"

	"veristub/e2e/steps/common"
	"veristub/e2e/steps/inquiry"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (generic requests, assertions)
	common.RegisterSteps(ctx, tc)

	// Register inquiry lifecycle and simulation steps
	inquiry.RegisterSteps(ctx, tc)
}
