// Package cli implements the offline wordcloud command: it counts words in
// files or stdin without a database or server.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/wordcloud/internal/config"
	"github.com/heartmarshall/wordcloud/internal/domain"
	"github.com/heartmarshall/wordcloud/internal/wordcloud"
)

const stdinName = "-"

// Report is the output for one counted source.
type Report struct {
	Source      string             `json:"source"      yaml:"source"`
	TotalWords  int                `json:"totalWords"  yaml:"total_words"`
	UniqueWords int                `json:"uniqueWords" yaml:"unique_words"`
	Words       []domain.WordCount `json:"words"       yaml:"words"`
}

type options struct {
	perFile bool
	top     int
	sort    string
	format  string
}

// NewRootCommand builds the wordcloud command tree. stdin feeds the "-"
// source; reports go to the command's output writer.
func NewRootCommand(cfg config.WordCloudConfig, logger *slog.Logger, stdin io.Reader) *cobra.Command {
	opts := options{top: cfg.DefaultTop, sort: string(domain.SortCount), format: "text"}

	root := &cobra.Command{
		Use:   "wordcloud [file...]",
		Short: "Count word frequencies in text files",
		Long: `Count how often each word occurs in the given files, or stdin when no
file (or "-") is given. Files are counted as one text unless --per-file is set.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := domain.SortOrder(opts.sort)
			if !order.IsValid() {
				return fmt.Errorf("invalid --sort %q: must be one of: count, alpha", opts.sort)
			}
			if opts.top < 0 {
				return fmt.Errorf("invalid --top %d: must be non-negative", opts.top)
			}
			render, ok := renderers[opts.format]
			if !ok {
				return fmt.Errorf("invalid --format %q: must be one of: text, json, yaml", opts.format)
			}

			sources, err := readSources(args, stdin)
			if err != nil {
				return err
			}

			reports := count(sources, opts.perFile, order, opts.top)
			for _, r := range reports {
				logger.Debug("counted",
					slog.String("source", r.Source),
					slog.Int("total_words", r.TotalWords),
					slog.Int("unique_words", r.UniqueWords),
				)
			}
			return render(cmd.OutOrStdout(), reports)
		},
	}

	flags := root.Flags()
	flags.BoolVar(&opts.perFile, "per-file", false, "report every file separately")
	flags.IntVar(&opts.top, "top", opts.top, "rows per report, 0 for all")
	flags.StringVar(&opts.sort, "sort", opts.sort, "row order: count or alpha")
	flags.StringVar(&opts.format, "format", opts.format, "output format: text, json or yaml")

	root.AddCommand(newTokensCommand(stdin))
	return root
}

func newTokensCommand(stdin io.Reader) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file...]",
		Short: "Print every word token, one per line, as written",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := readSources(args, stdin)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, src := range sources {
				for _, tok := range wordcloud.Tokenize(src.text) {
					if _, err := fmt.Fprintln(out, tok); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

type source struct {
	name string
	text string
}

func readSources(args []string, stdin io.Reader) ([]source, error) {
	if len(args) == 0 {
		args = []string{stdinName}
	}

	sources := make([]source, 0, len(args))
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == stdinName {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		sources = append(sources, source{name: name, text: string(data)})
	}
	return sources, nil
}

// count builds one report per source, or a single report over all sources
// joined by spaces so words never run across file boundaries.
func count(sources []source, perFile bool, order domain.SortOrder, top int) []Report {
	if !perFile && len(sources) > 1 {
		names := make([]string, len(sources))
		texts := make([]string, len(sources))
		for i, s := range sources {
			names[i] = s.name
			texts[i] = s.text
		}
		sources = []source{{name: strings.Join(names, ","), text: strings.Join(texts, " ")}}
	}

	reports := make([]Report, len(sources))
	for i, s := range sources {
		table := wordcloud.BuildFrequencyTable(s.text)
		reports[i] = Report{
			Source:      s.name,
			TotalWords:  table.Total(),
			UniqueWords: len(table),
			Words:       table.Sorted(order, top),
		}
	}
	return reports
}

var renderers = map[string]func(io.Writer, []Report) error{
	"text": renderText,
	"json": renderJSON,
	"yaml": renderYAML,
}

func renderText(w io.Writer, reports []Report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s: %d words, %d unique\n", r.Source, r.TotalWords, r.UniqueWords); err != nil {
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, wc := range r.Words {
			fmt.Fprintf(tw, "%d\t%s\n", wc.Count, wc.Word) // buffered; Flush reports write errors
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func renderYAML(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}
