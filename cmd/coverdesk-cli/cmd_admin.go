package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coverdesk/coverdesk/client"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative commands",
	}
	cmd.AddCommand(adminHealthCmd())
	cmd.AddCommand(adminStatsCmd())
	return cmd
}

func adminHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			output(resp, resp.Status)
		},
	}
}

func adminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show portal statistics",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Stats(context.Background())
			if err != nil {
				fatal("stats", err)
			}
			if flagFmt == "table" {
				formatTable(
					[]string{"METRIC", "VALUE"},
					[][]string{
						{"Leads", fmt.Sprintf("%d", resp.Leads)},
						{"Tasks", fmt.Sprintf("%d", resp.Tasks)},
						{"Documents", fmt.Sprintf("%d", resp.Documents)},
						{"Quotes", fmt.Sprintf("%d", resp.Quotes)},
						{"Proposals", fmt.Sprintf("%d", resp.Proposals)},
						{"Workflows", fmt.Sprintf("%d", resp.Workflows)},
						{"Executions", fmt.Sprintf("%d", resp.WorkflowExecutions)},
						{"Audit Entries", fmt.Sprintf("%d", resp.AuditEntries)},
					},
				)
				return
			}
			output(resp, "")
		},
	}
}

func newAuditCmd() *cobra.Command {
	var entityType, entityID, action string
	var limit int
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Query audit logs",
		Run: func(cmd *cobra.Command, args []string) {
			opts := &client.AuditQueryOptions{
				EntityType: entityType,
				EntityID:   entityID,
				Action:     action,
				Limit:      limit,
			}
			entries, _, err := apiClient.Audit.Query(context.Background(), opts)
			if err != nil {
				fatal("audit query", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "ACTION", "ENTITY_TYPE", "ENTITY_ID", "USER", "CREATED_AT"}
				var rows [][]string
				for _, e := range entries {
					rows = append(rows, []string{
						fmt.Sprintf("%d", e.ID), e.Action, e.EntityType, e.EntityID,
						e.UserID, e.CreatedAt.Format("2006-01-02 15:04:05"),
					})
				}
				formatTable(headers, rows)
				return
			}
			output(entries, "")
		},
	}
	cmd.Flags().StringVar(&entityType, "entity-type", "", "Filter by entity type")
	cmd.Flags().StringVar(&entityID, "entity", "", "Filter by entity ID")
	cmd.Flags().StringVar(&action, "action", "", "Filter by action")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")

	cmd.AddCommand(auditPurgeCmd())
	return cmd
}

func auditPurgeCmd() *cobra.Command {
	var retentionDays int
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Purge old audit entries",
		Run: func(cmd *cobra.Command, args []string) {
			deleted, err := apiClient.Audit.Purge(context.Background(), retentionDays)
			if err != nil {
				fatal("audit purge", err)
			}
			output(map[string]int{"deleted": deleted}, fmt.Sprintf("%d", deleted))
		},
	}
	cmd.Flags().IntVar(&retentionDays, "retention-days", 365, "Delete entries older than N days")
	return cmd
}
