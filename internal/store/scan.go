package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coverdesk/coverdesk/internal/models"
)

// documentColumns lists the columns selected for document queries.
const documentColumns = `document_id, file_name, file_type, file_size, file_url,
	entity_type, entity_id, document_type, uploaded_by, version, is_active,
	metadata, uploaded_at, created_at, updated_at`

// leadColumns lists the columns selected for lead queries.
const leadColumns = `lead_id, agent_id, customer_name, email, phone, stage,
	value, probability, last_contact_date, created_at, updated_at`

// taskColumns lists the columns selected for task queries.
const taskColumns = `task_id, agent_id, title, description, priority, status,
	due_date, created_at, updated_at`

// workflowColumns lists the columns selected for workflow queries.
const workflowColumns = `workflow_id, name, type, triggers, actions, is_active,
	created_at, updated_at`

// executionColumns lists the columns selected for workflow execution queries.
const executionColumns = `execution_id, workflow_id, entity_type, entity_id,
	status, result, error, started_at, completed_at`

// nullable converts an empty string to a NULL parameter.
func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// scanDocument scans a single row into a models.Document.
func scanDocument(scan func(dest ...any) error) (*models.Document, error) {
	var d models.Document
	var metadata []byte

	err := scan(
		&d.DocumentID,
		&d.FileName,
		&d.FileType,
		&d.FileSize,
		&d.FileURL,
		&d.EntityType,
		&d.EntityID,
		&d.DocumentType,
		&d.UploadedBy,
		&d.Version,
		&d.IsActive,
		&metadata,
		&d.UploadedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metadata != nil {
		if err := json.Unmarshal(metadata, &d.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshalling document metadata: %w", err)
		}
	}

	return &d, nil
}

// scanLead scans a single row into a models.Lead.
func scanLead(scan func(dest ...any) error) (*models.Lead, error) {
	var l models.Lead
	var email, phone *string
	var lastContact *time.Time

	err := scan(
		&l.LeadID,
		&l.AgentID,
		&l.CustomerName,
		&email,
		&phone,
		&l.Stage,
		&l.Value,
		&l.Probability,
		&lastContact,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email != nil {
		l.Email = *email
	}
	if phone != nil {
		l.Phone = *phone
	}
	l.LastContactDate = lastContact

	return &l, nil
}

// scanTask scans a single row into a models.Task.
func scanTask(scan func(dest ...any) error) (*models.Task, error) {
	var t models.Task
	var description *string

	err := scan(
		&t.TaskID,
		&t.AgentID,
		&t.Title,
		&description,
		&t.Priority,
		&t.Status,
		&t.DueDate,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description != nil {
		t.Description = *description
	}

	return &t, nil
}

// scanWorkflow scans a single row into a models.Workflow.
func scanWorkflow(scan func(dest ...any) error) (*models.Workflow, error) {
	var w models.Workflow
	var triggers, actions []byte

	err := scan(
		&w.WorkflowID,
		&w.Name,
		&w.Type,
		&triggers,
		&actions,
		&w.IsActive,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if triggers != nil {
		if err := json.Unmarshal(triggers, &w.Triggers); err != nil {
			return nil, fmt.Errorf("unmarshalling workflow triggers: %w", err)
		}
	}

	if err := json.Unmarshal(actions, &w.Actions); err != nil {
		return nil, fmt.Errorf("unmarshalling workflow actions: %w", err)
	}

	return &w, nil
}

// scanExecution scans a single row into a models.WorkflowExecution.
func scanExecution(scan func(dest ...any) error) (*models.WorkflowExecution, error) {
	var e models.WorkflowExecution
	var result []byte
	var execErr *string
	var completedAt *time.Time

	err := scan(
		&e.ExecutionID,
		&e.WorkflowID,
		&e.EntityType,
		&e.EntityID,
		&e.Status,
		&result,
		&execErr,
		&e.StartedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := json.Unmarshal(result, &e.Result); err != nil {
			return nil, fmt.Errorf("unmarshalling execution result: %w", err)
		}
	}

	if execErr != nil {
		e.Error = *execErr
	}
	e.CompletedAt = completedAt

	return &e, nil
}
