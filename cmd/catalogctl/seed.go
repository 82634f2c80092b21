package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"courserec-backend/internal/catalog"
)

//nolint:gochecknoglobals // Cobra boilerplate
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog with the built-in sample courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		conn, err := openCatalogDB(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		repo := &catalog.SQLRepo{DB: conn}
		courses := catalog.SampleCourses()
		for _, course := range courses {
			if err := repo.Upsert(ctx, course); err != nil {
				return errors.Wrapf(err, "seed course %s", course.ID)
			}
		}

		fmt.Printf("seeded %d courses\n", len(courses))
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(seedCmd)
}
