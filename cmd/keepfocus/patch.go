package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/internal/playground"
)

func patchCmd(a *app) *cobra.Command {
	var (
		prevPath string
		nextPath string
		focus    string
		journal  bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "patch --prev a.json --next b.json [--focus 0/1]",
		Short: "Patch one description toward another and report the result",
		Long: `Mount the --prev description, focus the element at --focus (a path of
child indexes below the root), patch toward --next and print the
resulting HTML and outcome. --next - reads the next description from
stdin; an empty --next removes the tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := func() (*playground.Response, error) {
				if prevPath == "" {
					return nil, errors.New("E140").WithDetail("--prev is required")
				}
				req := playground.Request{Journal: journal || a.cfg.Journal.Enabled}

				var err error
				if req.Prev, err = readInput(cmd.InOrStdin(), prevPath); err != nil {
					return nil, err
				}
				if nextPath != "" {
					if req.Next, err = readInput(cmd.InOrStdin(), nextPath); err != nil {
						return nil, err
					}
				}
				if cmd.Flags().Changed("focus") {
					req.Focus = &focus
				}
				return playground.Run(cmd.Context(), a.engine(nil), req)
			}()

			out := cmd.OutOrStdout()
			if !asJSON {
				if err != nil {
					return err
				}
				printResponse(out, resp)
				return nil
			}

			// JSON output reports failures on stdout too.
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err != nil {
				if encErr := enc.Encode(map[string]errors.Report{"error": errors.ReportOf(err)}); encErr != nil {
					return encErr
				}
				return err
			}
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVar(&prevPath, "prev", "", "File with the previous description")
	cmd.Flags().StringVar(&nextPath, "next", "", "File with the next description (- for stdin)")
	cmd.Flags().StringVarP(&focus, "focus", "f", "", "Path of the focused element below the root")
	cmd.Flags().BoolVarP(&journal, "journal", "j", false, "Print the mutation journal")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full response, or the error, as JSON")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.New("E140").WithDetail("cannot read " + path).Wrap(err)
	}
	if err := checkSyntax(path, data); err != nil {
		return nil, err
	}
	return data, nil
}

// checkSyntax reports JSON syntax errors with the line and column they
// occur at, so the formatted error can show the offending lines.
func checkSyntax(path string, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var raw json.RawMessage
	err := json.Unmarshal(data, &raw)
	var syn *json.SyntaxError
	if !stderrors.As(err, &syn) {
		return nil
	}
	// Offset counts the offending byte.
	line, col := position(data, syn.Offset-1)
	e := errors.New("E040").WithDetail(syn.Error()).Wrap(err)
	if path != "-" {
		e = e.WithLocation(path, line, col)
	}
	return e
}

// position converts a byte offset to a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	offset = max(0, min(offset, int64(len(data))))
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func printResponse(w io.Writer, resp *playground.Response) {
	if resp.HTML != "" {
		fmt.Fprintln(w, resp.HTML)
	}

	switch resp.Outcome {
	case "replaced":
		fmt.Fprintf(w, "outcome: replaced (%s)\n", resp.Reason)
	case "reconciled":
		fmt.Fprintf(w, "outcome: reconciled (spine depth %d)\n", resp.SpineDepth)
	default:
		fmt.Fprintf(w, "outcome: %s\n", resp.Outcome)
	}

	if resp.Focus != nil {
		kept := "moved"
		if resp.FocusKept {
			kept = "kept"
		}
		fmt.Fprintf(w, "focus: %q (%s)\n", *resp.Focus, kept)
	} else {
		fmt.Fprintln(w, "focus: none")
	}

	if resp.Counts == nil {
		return
	}
	fmt.Fprintf(w, "mutations: %d\n", len(resp.Mutations))
	for _, m := range resp.Mutations {
		fmt.Fprintf(w, "  %-11s node=%d", m.Op, m.Node)
		if m.Parent != 0 {
			fmt.Fprintf(w, " parent=%d index=%d", m.Parent, m.Index)
		}
		if m.Name != "" {
			fmt.Fprintf(w, " name=%s", m.Name)
		}
		if m.Value != nil {
			fmt.Fprintf(w, " value=%v", m.Value)
		}
		if m.Op == "set_text" {
			fmt.Fprintf(w, " text=%q", m.Text)
		}
		if m.With != 0 {
			fmt.Fprintf(w, " with=%d", m.With)
		}
		fmt.Fprintln(w)
	}

	ops := make([]string, 0, len(resp.Counts))
	for op := range resp.Counts {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		fmt.Fprintf(w, "  total %-11s %d\n", op, resp.Counts[op])
	}
}
