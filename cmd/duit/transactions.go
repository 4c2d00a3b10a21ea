package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"duit/internal/cli"
	"duit/internal/model"
	"duit/internal/report"
	"duit/internal/view"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    `List, add, edit, and delete income and expense transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(editTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		month  string
		search string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `List transactions newest first, 50 per page. Filter by month (YYYY-MM) or free-text search.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newClient()
			ctx := cmd.Context()

			transactions, err := client.ListTransactions(ctx)
			if err != nil {
				return err
			}
			categories, err := client.ListCategories(ctx)
			if err != nil {
				return err
			}
			accounts, err := client.ListAccounts(ctx)
			if err != nil {
				return err
			}

			if month != "" {
				transactions = report.MonthTransactions(transactions, month)
			}

			ix := model.NewNameIndex(categories, accounts)
			transactions = view.FilterTransactions(transactions, ix, search)
			transactions = view.SortTransactions(transactions, view.DefaultSort())

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions match."))
				return nil
			}

			total := view.TotalPages(len(transactions))
			page = view.ClampPage(page, len(transactions))
			start, end := view.PageBounds(page, len(transactions))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Date"),
				cli.TableHeaderStyle.Render("Note"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Account"),
				cli.TableHeaderStyle.Render("Amount"))

			for _, t := range transactions[start:end] {
				catName, _ := ix.CategoryName(t.CategoryID)
				accName, _ := ix.AccountName(t.AccountID)

				amount := view.FormatFlow(t.Type, t.AmountCents)
				if t.Type == model.TypeIncome {
					amount = cli.IncomeStyle.Render(amount)
				} else {
					amount = cli.ExpenseStyle.Render(amount)
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Date, t.NoteText(), catName, accName, amount)
			}
			w.Flush()

			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
				"Page %d of %d · %d transactions", page, total, len(transactions))))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "limit to a month (YYYY-MM)")
	cmd.Flags().StringVar(&search, "search", "", "filter by note, category, account, type or date")
	cmd.Flags().IntVar(&page, "page", 1, "page number")

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		txnType    string
		date       string
		note       string
		categoryID int64
		accountID  int64
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a transaction",
		Long:  `Record a transaction. The amount is in whole rupiah and must be positive.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := view.NewTransactionForm(time.Now().Format("2006-01-02"))
			form.Type = model.TransactionType(txnType)
			form.Amount = args[0]
			form.Note = note
			if date != "" {
				form.Date = date
			}
			if categoryID > 0 {
				form.CategoryID = &categoryID
			}
			if accountID > 0 {
				form.AccountID = &accountID
			}

			payload, err := form.Validate()
			if err != nil {
				return err
			}

			client := newClient()
			transaction, err := client.CreateTransaction(cmd.Context(), payload)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s (ID: %d)",
				transaction.Type, view.FormatRupiah(transaction.AmountCents), transaction.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&txnType, "type", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category ID")
	cmd.Flags().Int64Var(&accountID, "account", 0, "account ID")

	return cmd
}

func editTransactionCmd() *cobra.Command {
	var (
		txnType    string
		amount     string
		date       string
		note       string
		categoryID int64
		accountID  int64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "transaction")
			if err != nil {
				return err
			}

			client := newClient()

			// Start from the current values so unset flags keep them.
			current, err := client.GetTransaction(cmd.Context(), id)
			if err != nil {
				return err
			}

			form := view.EditTransactionForm(current)
			if cmd.Flags().Changed("type") {
				form.Type = model.TransactionType(txnType)
			}
			if cmd.Flags().Changed("amount") {
				form.Amount = amount
			}
			if cmd.Flags().Changed("date") {
				form.Date = date
			}
			if cmd.Flags().Changed("note") {
				form.Note = note
			}
			if cmd.Flags().Changed("category") {
				form.CategoryID = nil
				if categoryID > 0 {
					form.CategoryID = &categoryID
				}
			}
			if cmd.Flags().Changed("account") {
				form.AccountID = nil
				if accountID > 0 {
					form.AccountID = &accountID
				}
			}

			payload, err := form.Validate()
			if err != nil {
				return err
			}

			if _, err := client.UpdateTransaction(cmd.Context(), id, payload); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&txnType, "type", "", "new transaction type (income, expense)")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount in whole rupiah")
	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&note, "note", "", "new note")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "new category ID (0 clears it)")
	cmd.Flags().Int64Var(&accountID, "account", 0, "new account ID (0 clears it)")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "transaction")
			if err != nil {
				return err
			}

			if !force && !confirm(cmd.Context(), fmt.Sprintf("Are you sure you want to delete transaction %d?", id)) {
				fmt.Println(cli.FormatWarning("Deletion cancelled."))
				return nil
			}

			client := newClient()
			message, err := client.DeleteTransaction(cmd.Context(), id)
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
