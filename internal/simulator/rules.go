package simulator

import "strings"

// Decision is the outcome of the automatic verification rules.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDecline Decision = "decline"
	// DecisionManual means no scheduled action: the inquiry stays pending
	// for manual review.
	DecisionManual Decision = "manual"
)

// DeclineReason accompanies every automatic decline.
const DeclineReason = "Document verification failed"

// Suffixes recognized by the rule set.
const (
	approveSuffix = "0000"
	declineSuffix = "9999"
)

// Decide applies the pattern rules to a submitted id number. Rules are
// evaluated in order, first match wins:
//  1. suffix 0000 -> approve
//  2. suffix 9999 -> decline
//  3. otherwise   -> manual review
//
// This is pure domain logic - no I/O, no side effects.
func Decide(idNumber string) Decision {
	switch {
	case strings.HasSuffix(idNumber, approveSuffix):
		return DecisionApprove
	case strings.HasSuffix(idNumber, declineSuffix):
		return DecisionDecline
	default:
		return DecisionManual
	}
}
