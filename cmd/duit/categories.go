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
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, edit, and delete the income and expense categories transactions are grouped by.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(editCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newClient()

			categories, err := client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'duit categories add' to create one."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Categories"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Color"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 8))

			for _, c := range categories {
				fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n",
					c.ID, c.Icon, c.Name, c.EffectiveType(), c.EffectiveColor())
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		categoryType string
		icon         string
		color        string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()

			category, err := client.CreateCategory(cmd.Context(), api.CategoryPayload{
				Name:  args[0],
				Type:  model.TransactionType(categoryType),
				Icon:  icon,
				Color: color,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (ID: %d)", category.Name, category.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "expense", "category type (income, expense)")
	cmd.Flags().StringVar(&icon, "icon", "❓", "display icon")
	cmd.Flags().StringVar(&color, "color", model.DefaultColor, "palette color name")

	return cmd
}

func editCategoryCmd() *cobra.Command {
	var (
		name         string
		categoryType string
		icon         string
		color        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "category")
			if err != nil {
				return err
			}

			client := newClient()

			// Start from the current values so unset flags keep them.
			categories, err := client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			var current *model.Category
			for i := range categories {
				if categories[i].ID == id {
					current = &categories[i]
					break
				}
			}
			if current == nil {
				return common.NewUserErrorf(common.ErrNotFound, "category with ID %d not found", id)
			}

			payload := api.CategoryPayload{
				Name:  current.Name,
				Type:  current.EffectiveType(),
				Icon:  current.Icon,
				Color: current.EffectiveColor(),
			}
			if cmd.Flags().Changed("name") {
				payload.Name = name
			}
			if cmd.Flags().Changed("type") {
				payload.Type = model.TransactionType(categoryType)
			}
			if cmd.Flags().Changed("icon") {
				payload.Icon = icon
			}
			if cmd.Flags().Changed("color") {
				payload.Color = color
			}

			if _, err := client.UpdateCategory(cmd.Context(), id, payload); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new category name")
	cmd.Flags().StringVar(&categoryType, "type", "", "new category type (income, expense)")
	cmd.Flags().StringVar(&icon, "icon", "", "new display icon")
	cmd.Flags().StringVar(&color, "color", "", "new palette color name")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Delete a category. Its transactions survive and show up as uncategorized.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "category")
			if err != nil {
				return err
			}

			if !force && !confirm(cmd.Context(), fmt.Sprintf("Are you sure you want to delete category %d?", id)) {
				fmt.Println(cli.FormatWarning("Deletion cancelled."))
				return nil
			}

			client := newClient()
			message, err := client.DeleteCategory(cmd.Context(), id)
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
