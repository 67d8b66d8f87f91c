package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/justsurfingit/jobby-board/internal/listing"
	"github.com/justsurfingit/jobby-board/internal/views"
)

func printPage(w io.Writer, s listing.State, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(views.ProjectJSON(s), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(views.ProjectJSON(s))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "table":
		return printTable(w, views.Project(s))
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func printTable(w io.Writer, p views.Page) error {
	switch p.Kind {
	case views.KindJobs:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tLOCATION\tPACKAGE\tRATING")
		for _, j := range p.Jobs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%g\n", j.ID, j.Title, j.EmploymentType, j.Location, j.PackagePerAnnum, j.Rating)
		}
		return tw.Flush()
	case views.KindNoResults, views.KindFailure:
		_, err := fmt.Fprintf(w, "%s\n%s\n", p.Heading, p.Message)
		return err
	default:
		return nil
	}
}
