package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pet-adoption/internal/client"
)

func newRequestsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "requests",
		Aliases: []string{"adoption-requests"},
		Short:   "Submit and review adoption requests",
	}
	cmd.AddCommand(
		newRequestsSubmitCmd(opts),
		newRequestsListCmd(opts),
		newRequestActionCmd(opts, "approve", "Approve a request and mark the pet adopted (admin)",
			"Adoption request approved and pet marked as adopted", (*client.Client).ApproveRequest),
		newRequestActionCmd(opts, "reject", "Reject a request (admin)",
			"Adoption request rejected", (*client.Client).RejectRequest),
		newRequestActionCmd(opts, "delete", "Delete a request (admin)",
			"Adoption request deleted successfully", (*client.Client).DeleteRequest),
	)
	return cmd
}

func newRequestsSubmitCmd(opts *options) *cobra.Command {
	var in client.NewRequest

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an adoption request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			id, err := c.SubmitRequest(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("failed to submit request: %w", err)
			}
			return opts.printer(cmd.OutOrStdout()).message("Adoption request submitted successfully", id)
		},
	}

	cmd.Flags().Int64Var(&in.PetID, "pet-id", 0, "Pet to adopt")
	cmd.Flags().StringVar(&in.UserName, "name", "", "Your name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&in.Message, "message", "", "Message for the shelter")
	_ = cmd.MarkFlagRequired("pet-id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRequestsListCmd(opts *options) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List adoption requests (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch status {
			case "", "pending", "approved", "rejected":
			default:
				return fmt.Errorf("invalid --status %q (pending, approved, rejected)", status)
			}

			var items []client.AdoptionRequest
			err := opts.asAdmin(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				var err error
				items, err = c.ListRequests(ctx, status)
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to list requests: %w", err)
			}
			return opts.printer(cmd.OutOrStdout()).requests(items)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only requests in this status (pending, approved, rejected)")
	return cmd
}

type requestAction func(c *client.Client, ctx context.Context, id int64) error

func newRequestActionCmd(opts *options, use, short, done string, action requestAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [request-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.asAdmin(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				return action(c, ctx, id)
			}); err != nil {
				return fmt.Errorf("failed to %s request: %w", use, err)
			}
			return opts.printer(cmd.OutOrStdout()).message(done, 0)
		},
	}
}
