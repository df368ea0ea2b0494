package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coverdesk/coverdesk/client"
)

func newLeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Manage leads",
	}
	cmd.AddCommand(leadCreateCmd())
	cmd.AddCommand(leadListCmd())
	cmd.AddCommand(leadStageCmd())
	cmd.AddCommand(leadScoreCmd())
	return cmd
}

func leadCreateCmd() *cobra.Command {
	var agentID, email, phone string
	var value float64
	cmd := &cobra.Command{
		Use:   "create <customer-name>",
		Short: "Create a lead",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			lead, err := apiClient.Leads.Create(context.Background(), &client.CreateLeadRequest{
				AgentID:      agentID,
				CustomerName: args[0],
				Email:        email,
				Phone:        phone,
				Value:        value,
			})
			if err != nil {
				fatal("create lead", err)
			}
			output(lead, lead.LeadID)
		},
	}
	cmd.Flags().StringVar(&agentID, "agent", "", "Agent ID")
	cmd.Flags().StringVar(&email, "email", "", "Customer email")
	cmd.Flags().StringVar(&phone, "phone", "", "Customer phone")
	cmd.Flags().Float64Var(&value, "value", 0, "Potential policy value")
	return cmd
}

func leadListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your leads with pipeline aggregates",
		Run: func(cmd *cobra.Command, args []string) {
			agg, err := apiClient.Leads.List(context.Background())
			if err != nil {
				fatal("list leads", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "CUSTOMER", "STAGE", "VALUE", "PROBABILITY"}
				var rows [][]string
				for _, l := range agg.Leads {
					rows = append(rows, []string{
						l.LeadID, l.CustomerName, l.Stage,
						fmt.Sprintf("%.2f", l.Value), fmt.Sprintf("%.0f%%", l.Probability),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, l := range agg.Leads {
					fmt.Println(l.LeadID)
				}
				return
			}
			output(agg, "")
		},
	}
}

func leadStageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stage <id> <stage>",
		Short: "Move a lead to a new pipeline stage",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			lead, err := apiClient.Leads.UpdateStage(context.Background(), args[0], args[1])
			if err != nil {
				fatal("update stage", err)
			}
			output(lead, lead.LeadID)
		},
	}
}

func leadScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <id>",
		Short: "Show the priority score for a lead",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			score, err := apiClient.Leads.Score(context.Background(), args[0])
			if err != nil {
				fatal("get score", err)
			}
			output(score, fmt.Sprintf("%d", score.Score))
		},
	}
}
