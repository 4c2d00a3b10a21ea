package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"duit/internal/api"
	"duit/internal/cli"
	"duit/internal/common"
	"duit/internal/model"
	"duit/internal/view"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
		Long:  `List, add, edit, and delete the bank accounts and e-wallets transactions are booked against.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(editAccountCmd())
	cmd.AddCommand(deleteAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newClient()

			accounts, err := client.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			if len(accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found. Use 'duit accounts add' to create one."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Accounts"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Balance"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 16))

			var total int64
			for _, a := range accounts {
				fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n",
					a.ID, a.Icon, a.Name, a.Type, view.FormatRupiah(a.Balance))
				total += a.Balance
			}
			fmt.Fprintf(w, "\t\t\t%s\n", cli.BoldStyle.Render(view.FormatRupiah(total)))

			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		accountType string
		icon        string
		balance     int64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()

			account, err := client.CreateAccount(cmd.Context(), api.AccountPayload{
				Name:    args[0],
				Type:    model.AccountType(accountType),
				Icon:    icon,
				Balance: balance,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created account %q (ID: %d)", account.Name, account.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "bank", "account type (bank, ewallet)")
	cmd.Flags().StringVar(&icon, "icon", "🏦", "display icon")
	cmd.Flags().Int64Var(&balance, "balance", 0, "starting balance in whole rupiah")

	return cmd
}

func editAccountCmd() *cobra.Command {
	var (
		name        string
		accountType string
		icon        string
		balance     int64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account")
			if err != nil {
				return err
			}

			client := newClient()

			// Start from the current values so unset flags keep them.
			accounts, err := client.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}
			var current *model.Account
			for i := range accounts {
				if accounts[i].ID == id {
					current = &accounts[i]
					break
				}
			}
			if current == nil {
				return common.NewUserErrorf(common.ErrNotFound, "account with ID %d not found", id)
			}

			payload := api.AccountPayload{
				Name:    current.Name,
				Type:    current.Type,
				Icon:    current.Icon,
				Balance: current.Balance,
			}
			if cmd.Flags().Changed("name") {
				payload.Name = name
			}
			if cmd.Flags().Changed("type") {
				payload.Type = model.AccountType(accountType)
			}
			if cmd.Flags().Changed("icon") {
				payload.Icon = icon
			}
			if cmd.Flags().Changed("balance") {
				payload.Balance = balance
			}

			if _, err := client.UpdateAccount(cmd.Context(), id, payload); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated account %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new account name")
	cmd.Flags().StringVar(&accountType, "type", "", "new account type (bank, ewallet)")
	cmd.Flags().StringVar(&icon, "icon", "", "new display icon")
	cmd.Flags().Int64Var(&balance, "balance", 0, "new balance in whole rupiah")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Long:  `Delete an account. Its transactions survive without an account reference.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account")
			if err != nil {
				return err
			}

			if !force && !confirm(cmd.Context(), fmt.Sprintf("Are you sure you want to delete account %d?", id)) {
				fmt.Println(cli.FormatWarning("Deletion cancelled."))
				return nil
			}

			client := newClient()
			message, err := client.DeleteAccount(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(message))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
