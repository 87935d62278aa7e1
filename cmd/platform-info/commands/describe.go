package commands

import (
	"bytes"
	"fmt"

	"github.com/mobile-client/platform-shim/cmd/platform-info/commands/formatter"
	"github.com/mobile-client/platform-shim/pkg/platform"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	var jsonFormat bool
	c := &cobra.Command{
		Use:   "describe",
		Short: "Show the resolved operating system name, version and architecture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.resolve(cmd)
			if err != nil {
				return fmt.Errorf("failed to resolve platform: %w", err)
			}
			if jsonFormat {
				out, err := formatter.ToStandardJSON(d)
				if err != nil {
					return err
				}
				cmd.Print(out)
				return nil
			}
			cmd.Print(descriptorTable(d))
			return nil
		},
	}
	c.Flags().BoolVar(&jsonFormat, "json", false, "Print the descriptor as JSON")
	return c
}

func descriptorTable(d platform.Descriptor) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)

	table.SetHeader([]string{"PROPERTY", "VALUE"})

	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Family", d.Family.String()})
	table.Append([]string{"Name", d.Name})
	table.Append([]string{"Version", d.Version})
	table.Append([]string{"Architecture", d.Architecture})
	if d.Description != "" {
		table.Append([]string{"Description", d.Description})
	}

	table.Render()
	return buf.String()
}
