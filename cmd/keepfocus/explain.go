package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/keepfocus/internal/errors"
)

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe an error code, or list them all",
		Example: `  keepfocus explain
  keepfocus explain E041`,
		Args: cobra.MaximumNArgs(1),
		// Explain needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, code := range errors.GetAllCodes() {
					tmpl, _ := errors.GetTemplate(code)
					fmt.Fprintf(out, "%s  %-12s %s\n", code, tmpl.Category, tmpl.Message)
				}
				return nil
			}

			code := strings.ToUpper(args[0])
			tmpl, ok := errors.GetTemplate(code)
			if !ok {
				return errors.New("E142").
					WithDetail(args[0] + " is not a keepfocus error code").
					WithSuggestion("Run keepfocus explain to list the codes")
			}
			fmt.Fprintf(out, "%s: %s\n", code, tmpl.Message)
			fmt.Fprintf(out, "category: %s\n", tmpl.Category)
			if tmpl.Detail != "" {
				fmt.Fprintf(out, "\n%s\n", tmpl.Detail)
			}
			return nil
		},
	}
}
