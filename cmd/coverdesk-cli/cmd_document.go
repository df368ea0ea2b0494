package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coverdesk/coverdesk/client"
)

func newDocumentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Manage documents",
	}
	cmd.AddCommand(documentUploadCmd())
	cmd.AddCommand(documentGetCmd())
	cmd.AddCommand(documentListCmd())
	cmd.AddCommand(documentVersionCmd())
	cmd.AddCommand(documentVersionsCmd())
	cmd.AddCommand(documentDeleteCmd())
	cmd.AddCommand(documentAccessCmd())
	return cmd
}

func documentUploadCmd() *cobra.Command {
	var fileType, fileURL, entityType, entityID, docType, metaJSON string
	var fileSize int64
	cmd := &cobra.Command{
		Use:   "upload <file-name>",
		Short: "Register an externally stored document",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UploadDocumentRequest{
				FileName:     args[0],
				FileType:     fileType,
				FileSize:     fileSize,
				FileURL:      fileURL,
				EntityType:   entityType,
				EntityID:     entityID,
				DocumentType: docType,
			}
			if metaJSON != "" {
				if err := json.Unmarshal([]byte(metaJSON), &req.Metadata); err != nil {
					fatal("parse metadata", err)
				}
			}
			doc, err := apiClient.Documents.Upload(context.Background(), req)
			if err != nil {
				fatal("upload document", err)
			}
			output(doc, doc.DocumentID)
		},
	}
	cmd.Flags().StringVar(&fileType, "file-type", "", "MIME type")
	cmd.Flags().Int64Var(&fileSize, "file-size", 0, "File size in bytes")
	cmd.Flags().StringVar(&fileURL, "file-url", "", "Storage URL")
	cmd.Flags().StringVar(&entityType, "entity-type", "", "Owning entity type")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "Owning entity ID")
	cmd.Flags().StringVar(&docType, "doc-type", "", "Document type (policy, claim_form, ...)")
	cmd.Flags().StringVar(&metaJSON, "metadata", "", "Metadata as JSON")
	return cmd
}

func documentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a document by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doc, err := apiClient.Documents.Get(context.Background(), args[0])
			if err != nil {
				fatal("get document", err)
			}
			output(doc, doc.DocumentID)
		},
	}
}

func documentListCmd() *cobra.Command {
	var entityType, entityID, docType string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active documents",
		Run: func(cmd *cobra.Command, args []string) {
			docs, err := apiClient.Documents.List(context.Background(), &client.DocumentListOptions{
				EntityType:   entityType,
				EntityID:     entityID,
				DocumentType: docType,
			})
			if err != nil {
				fatal("list documents", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "TYPE", "ENTITY", "VERSION"}
				var rows [][]string
				for _, d := range docs {
					rows = append(rows, []string{
						d.DocumentID, d.FileName, d.DocumentType,
						d.EntityType + "/" + d.EntityID, fmt.Sprintf("%d", d.Version),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, d := range docs {
					fmt.Println(d.DocumentID)
				}
				return
			}
			output(docs, "")
		},
	}
	cmd.Flags().StringVar(&entityType, "entity-type", "", "Filter by entity type")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "Filter by entity ID")
	cmd.Flags().StringVar(&docType, "doc-type", "", "Filter by document type")
	return cmd
}

func documentVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version <id> <file-url>",
		Short: "Create a new version pointing at a new file URL",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			doc, err := apiClient.Documents.CreateVersion(context.Background(), args[0], args[1])
			if err != nil {
				fatal("create version", err)
			}
			output(doc, fmt.Sprintf("%d", doc.Version))
		},
	}
}

func documentVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions <id>",
		Short: "Show version history for a document",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			versions, err := apiClient.Documents.ListVersions(context.Background(), args[0])
			if err != nil {
				fatal("list versions", err)
			}
			output(versions, "")
		},
	}
}

func documentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete a document",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Documents.Delete(context.Background(), args[0]); err != nil {
				fatal("delete document", err)
			}
			fmt.Println("deleted")
		},
	}
}

func documentAccessCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "access <id>",
		Short: "Show the access log for a document",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logs, err := apiClient.Documents.ListAccessLogs(context.Background(), args[0], limit)
			if err != nil {
				fatal("list access logs", err)
			}
			if flagFmt == "table" {
				headers := []string{"LOG_ID", "ACCESSED_BY", "TYPE", "AT"}
				var rows [][]string
				for _, l := range logs {
					rows = append(rows, []string{
						l.LogID, l.AccessedBy, l.AccessType,
						l.AccessedAt.Format("2006-01-02 15:04:05"),
					})
				}
				formatTable(headers, rows)
				return
			}
			output(logs, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	return cmd
}
