// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jeranaias/webqa/internal/search"
	"github.com/jeranaias/webqa/internal/util"
)

const rulePreviewRunes = 60

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the keyword rules used to pick an answer",
		Long: `Print the keyword rules in the order they are checked.

The first rule whose keyword appears in the question (case-insensitive)
answers it. Questions matching no rule get the default answer.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"#", "Rule", "Keyword", "Answer"})
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)

			for i, r := range search.Rules() {
				keyword := r.Keyword
				if keyword == "" {
					keyword = "(any)"
				}
				table.Append([]string{
					strconv.Itoa(i + 1),
					r.Name,
					keyword,
					util.TruncateRunes(r.Respond("<question>"), rulePreviewRunes),
				})
			}
			table.Render()
		},
	}
}
