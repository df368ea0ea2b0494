package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/models"
)

// ActionFunc performs one workflow action against an entity payload and
// returns a human-readable outcome message.
type ActionFunc func(action models.Action, entityType, entityID string, data map[string]any) (string, error)

// ActionSet maps action types to their handlers. The enumeration is closed:
// a type absent from the set fails the action immediately.
type ActionSet map[string]ActionFunc

// DefaultActions returns the built-in action set. The handlers log the intent
// and succeed; delivery integrations (mail, SMS, push) live outside this
// subsystem and consume the dashboard change feed instead.
func DefaultActions(log *logrus.Logger) ActionSet {
	stub := func(verb, message string) ActionFunc {
		return func(action models.Action, entityType, entityID string, _ map[string]any) (string, error) {
			log.WithFields(logrus.Fields{
				"action":      action.Type,
				"entity_type": entityType,
				"entity_id":   entityID,
				"params":      action.Params,
			}).Info("workflow." + verb)

			return message, nil
		}
	}

	return ActionSet{
		models.ActionSendNotification: stub("send_notification", "Notification sent"),
		models.ActionUpdateStatus:     stub("update_status", "Status updated"),
		models.ActionSendEmail:        stub("send_email", "Email sent"),
		models.ActionCreateTask:       stub("create_task", "Task created"),
		models.ActionSendSMS:          stub("send_sms", "SMS sent"),
	}
}

// execute dispatches a single action by type. A panic inside a handler is
// converted into a failed result rather than unwinding the engine.
func (a ActionSet) execute(
	action models.Action, entityType, entityID string, data map[string]any,
) (result models.ActionResult) {
	result.Type = action.Type

	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Message = ""
			result.Error = fmt.Sprintf("action panicked: %v", r)
		}
	}()

	fn, ok := a[action.Type]
	if !ok {
		result.Error = fmt.Sprintf("unknown action type: %s", action.Type)
		return result
	}

	msg, err := fn(action, entityType, entityID, data)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Message = msg

	return result
}
