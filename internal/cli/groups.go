package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/azmapper/azmap/pkg/snapshot"
)

// groupsCommand creates the groups command for listing the resource groups
// present in a snapshot.
func (c *CLI) groupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups [snapshot]",
		Short: "List the resource groups in a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			for _, r := range snap.Resources {
				counts[r.ResourceGroup]++
			}

			groups := snap.ResourceGroups()
			printInfo("%s (%d resource groups, %d resources)", snap.SubscriptionName, len(groups), len(snap.Resources))
			for _, g := range groups {
				printKeyValue(g, fmt.Sprintf("%d resources", counts[g]))
			}
			return nil
		},
	}
}
