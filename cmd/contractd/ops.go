package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/contracts-backend/internal/app"
	"github.com/heartmarshall/contracts-backend/internal/domain"
)

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run the expiry and due-date sweep once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				res, err := c.SweepService.Run(ctx)

				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"Pass", "Scanned", "Notified", "Failed"})
				tw.AppendRow(table.Row{"contracts", res.Contracts.Scanned, res.Contracts.Notified, res.Contracts.Failed})
				tw.AppendRow(table.Row{"tasks", res.Tasks.Scanned, res.Tasks.Notified, res.Tasks.Failed})
				tw.AppendFooter(table.Row{"duration", res.Duration.Round(time.Millisecond).String(), "", ""})
				tw.Render()
				return err
			})
		},
	}
}

func expiringCmd() *cobra.Command {
	var days, limit int
	cmd := &cobra.Command{
		Use:   "expiring",
		Short: "List active contracts expiring within a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must be non-negative")
			}
			return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				now := c.Clock.Now()
				contracts, err := c.Contracts.ListExpiring(ctx, domain.DashboardScope{}, now, now.AddDate(0, 0, days), limit)
				if err != nil {
					return err
				}

				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Title", "Type", "Counterparty", "Expires", "Days left", "Value"})
				for _, ct := range contracts {
					value := ""
					if ct.ContractValue != nil {
						value = *ct.ContractValue + " " + ct.Currency
					}
					tw.AppendRow(table.Row{
						ct.ID,
						ct.Title,
						ct.Type,
						ct.CounterpartyName,
						ct.ExpiryDate.Format(time.DateOnly),
						strconv.Itoa(domain.DaysUntil(ct.ExpiryDate, now)),
						value,
					})
				}
				tw.AppendFooter(table.Row{"", "", "", "", "", "total", len(contracts)})
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "window in days")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows (0 = all)")
	return cmd
}

func bootstrapAdminCmd() *cobra.Command {
	var in app.AdminInput
	cmd := &cobra.Command{
		Use:   "bootstrap-admin",
		Short: "Create the first administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Password == "" {
				in.Password = os.Getenv("ADMIN_PASSWORD")
			}
			return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				u, err := app.BootstrapAdmin(ctx, c.Users, in, c.Clock.Now())
				if err != nil {
					return err
				}
				fmt.Printf("Admin %s created (id %s).\n", u.Email, u.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (defaults to $ADMIN_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func tokenCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token for an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				token, err := app.IssueToken(ctx, c.Users, c.JWT, email)
				if err != nil {
					return err
				}
				fmt.Println(token)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "user email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
