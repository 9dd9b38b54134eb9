package inquiry

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string) error
	POST(path string, body any) error
	PATCH(path string, body any) error
	LastStatus() int
	ResponseField(path string) (any, error)
	Capture(name, path string) error
	Captured(name string) string
}

// RegisterSteps registers inquiry lifecycle and simulation step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &inquirySteps{tc: tc}

	ctx.Step(`^I create an inquiry for customer "([^"]*)"$`, steps.createInquiry)
	ctx.Step(`^I submit a government id with number "([^"]*)"$`, steps.submitGovernmentID)
	ctx.Step(`^I submit a selfie$`, steps.submitSelfie)
	ctx.Step(`^I run a liveness check$`, steps.runLivenessCheck)
	ctx.Step(`^I force the inquiry status to "([^"]*)"$`, steps.forceStatus)
	ctx.Step(`^I trigger automatic verification with id number "([^"]*)"$`, steps.triggerAutomaticVerification)
	ctx.Step(`^I approve the inquiry$`, steps.approveInquiry)

	ctx.Step(`^the inquiry status should be "([^"]*)"$`, steps.inquiryStatusShouldBe)
	ctx.Step(`^the inquiry status should become "([^"]*)" within (\d+) seconds$`, steps.inquiryStatusShouldBecome)
}

type inquirySteps struct {
	tc TestContext
}

func (s *inquirySteps) createInquiry(ctx context.Context, referenceID string) error {
	if err := s.tc.POST("/inquiries", map[string]string{"reference_id": referenceID}); err != nil {
		return err
	}
	if s.tc.LastStatus() != 201 {
		return fmt.Errorf("expected 201 creating inquiry, got %d", s.tc.LastStatus())
	}
	return s.tc.Capture("inquiry_id", "id")
}

func (s *inquirySteps) submitGovernmentID(ctx context.Context, idNumber string) error {
	return s.tc.POST("/inquiries/{inquiry_id}/government-id", map[string]string{
		"front_photo":  "front.jpg",
		"country_code": "US",
		"id_class":     "dl",
	})
}

func (s *inquirySteps) submitSelfie(ctx context.Context) error {
	return s.tc.POST("/inquiries/{inquiry_id}/selfie", map[string]string{"image": "selfie.jpg"})
}

func (s *inquirySteps) runLivenessCheck(ctx context.Context) error {
	return s.tc.POST("/inquiries/{inquiry_id}/liveness", nil)
}

func (s *inquirySteps) forceStatus(ctx context.Context, status string) error {
	return s.tc.PATCH("/inquiries/{inquiry_id}/status", map[string]string{"status": status})
}

func (s *inquirySteps) triggerAutomaticVerification(ctx context.Context, idNumber string) error {
	return s.tc.POST("/inquiries/{inquiry_id}/process", map[string]string{"id_number": idNumber})
}

func (s *inquirySteps) approveInquiry(ctx context.Context) error {
	return s.tc.POST("/inquiries/{inquiry_id}/approve", nil)
}

func (s *inquirySteps) inquiryStatusShouldBe(ctx context.Context, expected string) error {
	if err := s.tc.GET("/inquiries/{inquiry_id}"); err != nil {
		return err
	}
	status, err := s.tc.ResponseField("status")
	if err != nil {
		return err
	}
	if status != expected {
		return fmt.Errorf("expected inquiry status %q, got %v", expected, status)
	}
	return nil
}

// inquiryStatusShouldBecome polls until the status lands or the deadline
// passes, covering the simulated processing latency of automatic decisions.
func (s *inquirySteps) inquiryStatusShouldBecome(ctx context.Context, expected string, seconds int) error {
	deadline := time.Now().Add(time.Duration(seconds) * time.Second)
	for {
		if err := s.tc.GET("/inquiries/{inquiry_id}"); err != nil {
			return err
		}
		status, err := s.tc.ResponseField("status")
		if err != nil {
			return err
		}
		if status == expected {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("inquiry status stayed %v, expected %q within %ds", status, expected, seconds)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
