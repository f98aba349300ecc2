package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yaxhxv/todo-list-heyHomies/pkg/client"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your todos, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			todos, err := api.ListTodos(cmd.Context())
			if err != nil {
				return err
			}
			if len(todos) == 0 {
				cmd.Println("no todos")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tDUE\tTITLE")
			for _, t := range todos {
				due := "-"
				if t.DueDate != nil {
					due = t.DueDate.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Priority, due, t.Title)
			}
			return w.Flush()
		},
	}
}

func newAddCommand() *cobra.Command {
	var description, priority, due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todo, err := api.CreateTodo(cmd.Context(), client.CreateTodoInput{
				Title:       args[0],
				Description: description,
				Priority:    priority,
				DueDate:     due,
			})
			if err != nil {
				return err
			}
			cmd.Printf("created %s (%s, %s)\n", todo.ID, todo.Status, todo.Priority)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "longer description")
	cmd.Flags().StringVar(&priority, "priority", "", "low, medium, or high (default medium)")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD or RFC 3339)")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <todo|in_progress|completed>",
		Short: "Move a todo to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			todo, err := api.UpdateTodo(cmd.Context(), args[0], client.UpdateTodoInput{Status: &args[1]})
			if err != nil {
				return err
			}
			cmd.Printf("%s is now %s\n", todo.ID, todo.Status)
			return nil
		},
	}
}

func newDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			completed := "completed"
			todo, err := api.UpdateTodo(cmd.Context(), args[0], client.UpdateTodoInput{Status: &completed})
			if err != nil {
				return err
			}
			cmd.Printf("done: %s\n", todo.Title)
			return nil
		},
	}
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a todo permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.DeleteTodo(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("deleted")
			return nil
		},
	}
}
