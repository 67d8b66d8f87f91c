package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/jobby-board/internal/auth"
	"github.com/justsurfingit/jobby-board/internal/listing"
	"github.com/justsurfingit/jobby-board/internal/models"
	"github.com/justsurfingit/jobby-board/internal/services"
)

var (
	errNotLoggedIn = errors.New("not logged in: run `jobbyctl login` first")
	errJobsFailed  = errors.New("job search failed: run the same command again to retry")
)

func jobsCmd() *cobra.Command {
	var (
		search     string
		types      []string
		minPackage int
	)

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Search job listings",
		Long: `Search job listings with the same filters as the jobs page.

--type may be repeated; tags are sent in the order given.
--min-package takes one of 1000000, 2000000, 3000000, 4000000 (default: no minimum).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildFilter(search, types, minPackage)
			if err != nil {
				return err
			}

			client := services.NewAPIClient(services.Config{BaseURL: apiURL})
			ctrl := listing.NewController(services.NewJobService(client), auth.NewFileSession(sessionFile), filter, listing.Options{})
			if outputFmt == "table" {
				ctrl.Subscribe(func(s listing.State) {
					if s.Status == listing.StatusInProgress {
						fmt.Fprintln(cmd.ErrOrStderr(), "Loading...")
					}
				})
			}

			state, err := ctrl.Mount(cmd.Context())
			if errors.Is(err, listing.ErrUnauthenticated) {
				return errNotLoggedIn
			}
			if err != nil {
				return err
			}

			if err := printPage(cmd.OutOrStdout(), state, outputFmt); err != nil {
				return err
			}
			if state.Status == listing.StatusFailure {
				return errJobsFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Free text search")
	cmd.Flags().StringArrayVarP(&types, "type", "t", nil, "Employment type: FULLTIME, PARTTIME, FREELANCE, INTERNSHIP")
	cmd.Flags().IntVar(&minPackage, "min-package", models.NoMinimumPackage, "Minimum package per annum")
	return cmd
}

func buildFilter(search string, types []string, minPackage int) (models.Filter, error) {
	f := models.Filter{Search: search}
	for _, raw := range types {
		tag := normalizeTag(raw)
		if !models.IsEmploymentType(tag) {
			return f, fmt.Errorf("unknown employment type %q (want one of %s)", raw, strings.Join(employmentTypeIDs(), ", "))
		}
		if !f.HasEmploymentType(tag) {
			f.ToggleEmploymentType(tag)
		}
	}
	if !models.IsSalaryRange(minPackage) {
		return f, fmt.Errorf("unsupported --min-package %d", minPackage)
	}
	f.SetMinimumPackage(minPackage)
	return f, nil
}

// normalizeTag accepts "full-time", "Full Time" and "FULLTIME" alike.
func normalizeTag(raw string) string {
	return strings.ToUpper(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(raw)))
}

func employmentTypeIDs() []string {
	ids := make([]string, 0, len(models.EmploymentTypes))
	for _, t := range models.EmploymentTypes {
		ids = append(ids, t.ID)
	}
	return ids
}
