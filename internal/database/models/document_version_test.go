package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pendingApproval(userIDs ...string) *Approval {
	a := &Approval{IsRequired: true, FinalStatus: ApprovalPending}
	for _, id := range userIDs {
		a.AddApprover(id, "User "+id)
	}
	return a
}

func TestAddApproverDeduplicates(t *testing.T) {
	a := pendingApproval()

	assert.True(t, a.AddApprover("u1", "User One"))
	assert.False(t, a.AddApprover("u1", "User One Again"))
	assert.Len(t, a.Approvers, 1)
	assert.Equal(t, ApprovalPending, a.Approvers[0].Status)
}

func TestApproveRequiresAllApprovers(t *testing.T) {
	a := pendingApproval("u1", "u2")

	assert.True(t, a.Approve("u1", "looks good"))
	assert.Equal(t, ApprovalPending, a.FinalStatus)

	assert.True(t, a.Approve("u2", ""))
	assert.Equal(t, ApprovalApproved, a.FinalStatus)

	assert.NotNil(t, a.Approvers[0].ApprovedAt)
	assert.Equal(t, "looks good", a.Approvers[0].Comment)
}

func TestApproveUnknownApprover(t *testing.T) {
	a := pendingApproval("u1")
	assert.False(t, a.Approve("stranger", ""))
	assert.Equal(t, ApprovalPending, a.FinalStatus)
}

func TestRejectSettlesImmediately(t *testing.T) {
	a := pendingApproval("u1", "u2", "u3")

	assert.True(t, a.Reject("u2", "needs work"))
	assert.Equal(t, ApprovalRejected, a.FinalStatus)
}

func TestRejectionIsTerminal(t *testing.T) {
	a := pendingApproval("u1", "u2")

	assert.True(t, a.Reject("u1", "no"))
	assert.True(t, a.Approve("u2", "yes"))

	// Every approver approving afterwards never reopens the round
	assert.True(t, a.Approve("u1", "changed my mind"))
	assert.Equal(t, ApprovalRejected, a.FinalStatus)
}

func TestApprovalProgress(t *testing.T) {
	entry := &DocumentVersion{Approval: *pendingApproval("u1", "u2", "u3", "u4")}
	assert.Equal(t, 0.0, entry.ApprovalProgress())

	entry.Approval.Approve("u1", "")
	entry.Approval.Approve("u2", "")
	assert.Equal(t, 0.5, entry.ApprovalProgress())

	empty := &DocumentVersion{}
	assert.Equal(t, 0.0, empty.ApprovalProgress())
}

func TestIsApproved(t *testing.T) {
	entry := &DocumentVersion{Approval: Approval{FinalStatus: ApprovalApproved}}
	assert.True(t, entry.IsApproved())

	entry.Approval.FinalStatus = ApprovalPending
	assert.False(t, entry.IsApproved())
}
