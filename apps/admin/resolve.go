package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// resolve prints the full access picture for a bearer token; support/debug tool.
func (cli *commandLine) resolve(token string) error {
	a, err := cli.accessSvc.Resolve(context.Background(), token)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Principal: %s\n", a.Principal)
	if a.Aggregation.SuperAdmin {
		fmt.Fprintln(cli.out, "Super admin: yes")
	}
	ids := make([]string, 0, len(a.Aggregation.Tenants))
	for id := range a.Aggregation.Tenants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		tr := a.Aggregation.Tenants[id]
		fmt.Fprintf(cli.out, "Academy %s (%s): %s\n", tr.ID, tr.Name, strings.Join(tr.Roles(), ", "))
	}

	res := a.Resolution
	if res.ChoiceRequired {
		fmt.Fprintln(cli.out, "Destination: choice required")
		for _, cand := range res.Candidates {
			fmt.Fprintf(cli.out, "  - %s as %s\n", cand.TenantName, cand.Role)
		}
		return nil
	}
	fmt.Fprintf(cli.out, "Destination: %s\n", res.Route)
	return nil
}
