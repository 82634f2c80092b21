package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"courserec-backend/internal/catalog"
)

//nolint:gochecknoglobals // Cobra boilerplate
var importCmd = &cobra.Command{
	Use:   "import <csv-file>",
	Short: "Import courses from a CSV file",
	Long: `Import upserts courses from a CSV export into the catalog. The file
needs a header row; recognized columns are id, title, description, credits,
prerequisites, department, level, difficulty_rating, career_relevance,
topics, semester_offered, professor, rating and enrollment_count.

Example:
  catalogctl import courses.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open csv file")
		}
		defer f.Close()

		courses, err := catalog.ReadCSV(f)
		if err != nil {
			return errors.Wrap(err, "parse csv")
		}

		ctx := cmd.Context()
		conn, err := openCatalogDB(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		repo := &catalog.SQLRepo{DB: conn}
		for _, course := range courses {
			if err := repo.Upsert(ctx, course); err != nil {
				return errors.Wrapf(err, "import course %s", course.ID)
			}
		}

		fmt.Printf("imported %d courses\n", len(courses))
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(importCmd)
}
