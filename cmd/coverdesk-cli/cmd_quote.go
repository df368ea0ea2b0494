package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coverdesk/coverdesk/client"
)

func newQuoteCmd() *cobra.Command {
	var agentID, customerID string
	var coverage float64
	var term int
	cmd := &cobra.Command{
		Use:   "quote <policy-type>",
		Short: "Generate a policy quote",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if coverage <= 0 {
				fmt.Fprintf(os.Stderr, "Error: --coverage must be positive\n")
				os.Exit(1)
			}
			quote, err := apiClient.Quotes.Generate(context.Background(), &client.GenerateQuoteRequest{
				AgentID:    agentID,
				CustomerID: customerID,
				PolicyType: args[0],
				Coverage:   coverage,
				Term:       term,
			})
			if err != nil {
				fatal("generate quote", err)
			}
			output(quote, quote.QuoteID)
		},
	}
	cmd.Flags().StringVar(&agentID, "agent", "", "Agent ID")
	cmd.Flags().StringVar(&customerID, "customer", "", "Customer ID")
	cmd.Flags().Float64Var(&coverage, "coverage", 0, "Coverage amount")
	cmd.Flags().IntVar(&term, "term", 12, "Term in months")
	return cmd
}

func newProposalCmd() *cobra.Command {
	var agentID, customerID, itemsJSON string
	cmd := &cobra.Command{
		Use:   "proposal <title>",
		Short: "Create a proposal from line items",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateProposalRequest{
				AgentID:    agentID,
				CustomerID: customerID,
				Title:      args[0],
			}
			if itemsJSON != "" {
				if err := json.Unmarshal([]byte(itemsJSON), &req.Items); err != nil {
					fatal("parse items", err)
				}
			}
			proposal, err := apiClient.Proposals.Create(context.Background(), req)
			if err != nil {
				fatal("create proposal", err)
			}
			output(proposal, proposal.ProposalID)
		},
	}
	cmd.Flags().StringVar(&agentID, "agent", "", "Agent ID")
	cmd.Flags().StringVar(&customerID, "customer", "", "Customer ID")
	cmd.Flags().StringVar(&itemsJSON, "items", "", "Line items as JSON array")
	return cmd
}
