package models

import "time"

// Workflow types. Closed enumeration.
const (
	WorkflowClaimApproval   = "claim_approval"
	WorkflowPolicyRenewal   = "policy_renewal"
	WorkflowPaymentReminder = "payment_reminder"
	WorkflowKYCVerification = "kyc_verification"
)

// Workflow action types. Closed enumeration: adding a value requires updating
// the engine's dispatch switch.
const (
	ActionSendNotification = "send_notification"
	ActionUpdateStatus     = "update_status"
	ActionSendEmail        = "send_email"
	ActionCreateTask       = "create_task"
	ActionSendSMS          = "send_sms"
)

// Execution statuses. pending transitions once to completed or failed;
// executions are never retried or resumed.
const (
	ExecutionPending    = "pending"
	ExecutionInProgress = "in_progress"
	ExecutionCompleted  = "completed"
	ExecutionFailed     = "failed"
)

// Trigger condition operators.
const (
	OpEq  = "eq"
	OpLt  = "lt"
	OpLte = "lte"
	OpGt  = "gt"
	OpGte = "gte"
)

// TriggerCondition is a single predicate over one field of the entity payload.
type TriggerCondition struct {
	Op    string `json:"op"`
	Value any    `json:"value"`
}

// Action is one step of a workflow. Type selects the handler; Params carries
// handler-specific settings (recipient, template, new status, ...).
type Action struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params,omitempty"`
}

// Workflow is a named, statically configured sequence of actions associated
// with a business event type. Triggers are stored conditions; the engine does
// not poll them — callers decide when to trigger, and may ask the engine to
// enforce the conditions against the supplied payload.
type Workflow struct {
	WorkflowID string                      `json:"workflow_id"`
	Name       string                      `json:"name"`
	Type       string                      `json:"type"`
	Triggers   map[string]TriggerCondition `json:"triggers,omitempty"`
	Actions    []Action                    `json:"actions"`
	IsActive   bool                        `json:"is_active"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

// Matches evaluates the stored trigger conditions against an entity payload.
// Every condition must hold; a missing payload field fails the condition.
// Numeric comparisons coerce both sides to float64 (JSON numbers decode as
// float64); eq falls back to direct comparison for non-numeric values.
func (w *Workflow) Matches(data map[string]any) bool {
	for field, cond := range w.Triggers {
		if !cond.holds(data[field]) {
			return false
		}
	}

	return true
}

func (c TriggerCondition) holds(got any) bool {
	if got == nil {
		return false
	}

	gn, gok := toFloat(got)
	wn, wok := toFloat(c.Value)

	if c.Op == OpEq {
		if gok && wok {
			return gn == wn
		}

		return got == c.Value
	}

	if !gok || !wok {
		return false
	}

	switch c.Op {
	case OpLt:
		return gn < wn
	case OpLte:
		return gn <= wn
	case OpGt:
		return gn > wn
	case OpGte:
		return gn >= wn
	default:
		return false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// ActionResult is the outcome of one executed action.
type ActionResult struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ExecutionResult is the aggregate outcome persisted on the execution record.
// On failure, Results still includes the failing action's result; actions
// after the failure never ran.
type ExecutionResult struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Results []ActionResult `json:"results"`
}

// WorkflowExecution is one concrete run of a workflow against an entity.
type WorkflowExecution struct {
	ExecutionID string           `json:"execution_id"`
	WorkflowID  string           `json:"workflow_id"`
	EntityType  string           `json:"entity_type"`
	EntityID    string           `json:"entity_id"`
	Status      string           `json:"status"`
	Result      *ExecutionResult `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// TriggerRequest is the payload for triggering a workflow against an entity.
type TriggerRequest struct {
	EntityType      string         `json:"entity_type"`
	EntityID        string         `json:"entity_id"`
	Data            map[string]any `json:"data,omitempty"`
	EnforceTriggers bool           `json:"enforce_triggers,omitempty"`
}

// Validate checks required TriggerRequest fields.
func (r *TriggerRequest) Validate() error {
	if r.EntityType == "" {
		return ErrMissingEntityType
	}

	if r.EntityID == "" {
		return ErrMissingEntityID
	}

	return nil
}

// TriggerResult is returned by the trigger endpoint.
type TriggerResult struct {
	ExecutionID string           `json:"execution_id"`
	Status      string           `json:"status"`
	Result      *ExecutionResult `json:"result"`
}
