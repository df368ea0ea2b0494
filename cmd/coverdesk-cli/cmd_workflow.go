package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coverdesk/coverdesk/client"
)

func newWorkflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Manage workflows",
	}
	cmd.AddCommand(workflowListCmd())
	cmd.AddCommand(workflowGetCmd())
	cmd.AddCommand(workflowTriggerCmd())
	cmd.AddCommand(workflowExecutionsCmd())
	cmd.AddCommand(workflowExecutionCmd())
	return cmd
}

func workflowListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workflows",
		Run: func(cmd *cobra.Command, args []string) {
			workflows, err := apiClient.Workflows.List(context.Background())
			if err != nil {
				fatal("list workflows", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "TYPE", "ACTIVE"}
				var rows [][]string
				for _, w := range workflows {
					rows = append(rows, []string{
						w.WorkflowID, w.Name, w.Type, fmt.Sprintf("%t", w.IsActive),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, w := range workflows {
					fmt.Println(w.WorkflowID)
				}
				return
			}
			output(workflows, "")
		},
	}
}

func workflowGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a workflow by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			wf, err := apiClient.Workflows.Get(context.Background(), args[0])
			if err != nil {
				fatal("get workflow", err)
			}
			output(wf, wf.WorkflowID)
		},
	}
}

func workflowTriggerCmd() *cobra.Command {
	var entityType, entityID, dataJSON string
	var enforce bool
	cmd := &cobra.Command{
		Use:   "trigger <id>",
		Short: "Trigger a workflow against an entity",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.TriggerRequest{
				EntityType:      entityType,
				EntityID:        entityID,
				EnforceTriggers: enforce,
			}
			if dataJSON != "" {
				if err := json.Unmarshal([]byte(dataJSON), &req.Data); err != nil {
					fatal("parse data", err)
				}
			}
			result, err := apiClient.Workflows.Trigger(context.Background(), args[0], req)
			if err != nil {
				fatal("trigger workflow", err)
			}
			output(result, result.ExecutionID)
		},
	}
	cmd.Flags().StringVar(&entityType, "entity-type", "", "Entity type (lead, claim, ...)")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "Entity ID")
	cmd.Flags().StringVar(&dataJSON, "data", "", "Entity payload as JSON")
	cmd.Flags().BoolVar(&enforce, "enforce-triggers", false, "Fail if trigger conditions do not match the payload")
	cmd.MarkFlagRequired("entity-type") //nolint:errcheck
	cmd.MarkFlagRequired("entity-id")   //nolint:errcheck
	return cmd
}

func workflowExecutionsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "executions <id>",
		Short: "List recent executions of a workflow",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			executions, err := apiClient.Workflows.ListExecutions(context.Background(), args[0], limit)
			if err != nil {
				fatal("list executions", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "ENTITY", "STATUS", "STARTED"}
				var rows [][]string
				for _, e := range executions {
					rows = append(rows, []string{
						e.ExecutionID, e.EntityType + "/" + e.EntityID, e.Status,
						e.StartedAt.Format("2006-01-02 15:04:05"),
					})
				}
				formatTable(headers, rows)
				return
			}
			output(executions, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	return cmd
}

func workflowExecutionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "execution <execution-id>",
		Short: "Get a single workflow execution",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exec, err := apiClient.Workflows.GetExecution(context.Background(), args[0])
			if err != nil {
				fatal("get execution", err)
			}
			output(exec, exec.Status)
		},
	}
}
