package service

import (
	"context"
	"fmt"

	"github.com/coverdesk/coverdesk/internal/models"
)

// PredefinedWorkflows returns the built-in workflow catalog. Trigger
// conditions are stored with each definition; the engine evaluates them only
// when a trigger request opts in.
func PredefinedWorkflows() []models.Workflow {
	return []models.Workflow{
		{
			WorkflowID: "CLAIM_APPROVAL",
			Name:       "Automatic Claim Approval",
			Type:       models.WorkflowClaimApproval,
			Triggers: map[string]models.TriggerCondition{
				"claim_amount": {Op: models.OpLte, Value: 50000},
				"claim_type":   {Op: models.OpEq, Value: "cashless"},
			},
			Actions: []models.Action{
				{Type: models.ActionUpdateStatus, Params: map[string]any{"target": "claim", "new_status": "approved"}},
				{Type: models.ActionSendNotification, Params: map[string]any{"recipient": "customer", "message": "Your claim has been approved"}},
				{Type: models.ActionSendEmail, Params: map[string]any{"template": "claim_approved"}},
			},
			IsActive: true,
		},
		{
			WorkflowID: "POLICY_RENEWAL_REMINDER",
			Name:       "Policy Renewal Reminder",
			Type:       models.WorkflowPolicyRenewal,
			Triggers: map[string]models.TriggerCondition{
				"days_until_expiry": {Op: models.OpLte, Value: 30},
			},
			Actions: []models.Action{
				{Type: models.ActionSendNotification, Params: map[string]any{"recipient": "customer", "message": "Your policy is expiring soon. Please renew it."}},
				{Type: models.ActionSendEmail, Params: map[string]any{"template": "renewal_reminder"}},
				{Type: models.ActionSendSMS, Params: map[string]any{"template": "renewal_reminder_sms"}},
			},
			IsActive: true,
		},
		{
			WorkflowID: "PAYMENT_REMINDER",
			Name:       "Payment Due Reminder",
			Type:       models.WorkflowPaymentReminder,
			Triggers: map[string]models.TriggerCondition{
				"days_until_due": {Op: models.OpLte, Value: 5},
				"status":         {Op: models.OpEq, Value: "pending"},
			},
			Actions: []models.Action{
				{Type: models.ActionSendNotification, Params: map[string]any{"recipient": "customer", "message": "Your payment is due soon"}},
				{Type: models.ActionSendSMS, Params: map[string]any{"template": "payment_reminder"}},
			},
			IsActive: true,
		},
	}
}

// SeedCatalog inserts the predefined workflows that do not exist yet.
// Idempotent: existing definitions are never overwritten.
func (s *WorkflowService) SeedCatalog(ctx context.Context) error {
	for _, w := range PredefinedWorkflows() {
		if err := s.store.UpsertWorkflow(ctx, w); err != nil {
			return fmt.Errorf("seeding workflow %s: %w", w.WorkflowID, err)
		}
	}

	return nil
}
