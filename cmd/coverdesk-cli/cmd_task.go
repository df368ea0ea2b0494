package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/coverdesk/coverdesk/client"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(taskCreateCmd())
	cmd.AddCommand(taskListCmd())
	return cmd
}

func taskCreateCmd() *cobra.Command {
	var agentID, description, priority, due string
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dueDate, err := time.Parse(time.RFC3339, due)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: --due must be RFC3339 (e.g. 2026-09-15T09:00:00Z)\n")
				os.Exit(1)
			}
			task, err := apiClient.Tasks.Create(context.Background(), &client.CreateTaskRequest{
				AgentID:     agentID,
				Title:       args[0],
				Description: description,
				DueDate:     dueDate,
				Priority:    priority,
			})
			if err != nil {
				fatal("create task", err)
			}
			output(task, task.TaskID)
		},
	}
	cmd.Flags().StringVar(&agentID, "agent", "", "Agent ID")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low|medium|high|urgent")
	cmd.Flags().StringVar(&due, "due", "", "Due date (RFC3339)")
	cmd.MarkFlagRequired("due") //nolint:errcheck
	return cmd
}

func taskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your tasks with status counts",
		Run: func(cmd *cobra.Command, args []string) {
			agg, err := apiClient.Tasks.List(context.Background())
			if err != nil {
				fatal("list tasks", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "TITLE", "PRIORITY", "STATUS", "DUE"}
				var rows [][]string
				for _, t := range agg.Tasks {
					rows = append(rows, []string{
						t.TaskID, t.Title, t.Priority, t.Status,
						t.DueDate.Format("2006-01-02 15:04"),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, t := range agg.Tasks {
					fmt.Println(t.TaskID)
				}
				return
			}
			output(agg, "")
		},
	}
}
