package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id-prefix>",
	Short: "Remove a match from all statistics",
	Long: `Mark a match as deleted. The row stays in the database but is
excluded from every listing, rating and ranking. Re-importing the same
sheet brings it back.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := db.GetMatchByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query match: %w", err)
	}
	if m == nil {
		fmt.Fprintf(os.Stderr, "No match found with id prefix %q\n", prefix)
		return nil
	}

	ok, err := db.SoftDeleteMatch(m.ID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Match %s was already deleted.\n", m.ID)
		return nil
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s (%s)\n", m.ID, m.Date)
	return nil
}
