package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/usecase"
)

func renderText(w io.Writer, r dto.MatchResponse) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s (%s)\n", r.Project.Name, r.Project.Status)

	if len(r.RequiredSkills) == 0 {
		fmt.Fprintln(&b, usecase.NoRequirementsMessage)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintln(&b, "Required skills:")
	for _, req := range r.RequiredSkills {
		fmt.Fprintf(&b, "  - %s (min %s)\n", req.SkillName, req.MinLevel)
	}
	fmt.Fprintln(&b)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(r.Matches) > 0 {
		fmt.Fprintf(tw, "%d qualified:\n", len(r.Matches))
		fmt.Fprintln(tw, "NAME\tROLE\tEMAIL")
		for _, c := range r.Matches {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Role, c.Email)
		}
	} else {
		fmt.Fprintln(tw, "No one qualifies. Gap report:")
		fmt.Fprintln(tw, "SKILL\tMIN LEVEL\tQUALIFIED")
		for _, g := range r.Gaps {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", g.SkillName, g.MinLevel, g.QualifiedCount)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Matches) == 0 {
		for _, g := range r.Gaps {
			if _, err := fmt.Fprintf(w, "\n* %s", g.Narrative); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if len(r.Issues) > 0 {
		if _, err := fmt.Fprintf(w, "\nWarning: %d stored row(s) have an unrecognized label or a missing id and were ignored.\n", len(r.Issues)); err != nil {
			return err
		}
	}
	return nil
}
