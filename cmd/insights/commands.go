package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognicore/insightful/internal/feed"
	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/enrich"
	"github.com/cognicore/insightful/pkg/insight/internalerr"
)

func newReviewsCmd(a *app) *cobra.Command {
	var (
		input    string
		products bool
	)
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Sentiment-bucketed insights from rated reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			domain := catalog.ParseDomain(a.v.GetString("domain"))

			if products {
				list, err := source(cmd, a).Products(input)
				if err != nil {
					return err
				}
				out, runErr := e.Reviews().EnrichProducts(cmd.Context(), list, domain)
				return emit(a, cmd.OutOrStdout(), out, runErr)
			}

			reviews, err := source(cmd, a).Reviews(input)
			if err != nil {
				return err
			}
			out, runErr := e.Reviews().Enrich(cmd.Context(), reviews, domain)
			return emit(a, cmd.OutOrStdout(), out, runErr)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "JSONL file of reviews (- for stdin)")
	cmd.Flags().BoolVar(&products, "products", false, "input lines are products with nested reviews")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newEngagementCmd(a *app) *cobra.Command {
	var input, kind string
	cmd := &cobra.Command{
		Use:   "engagement",
		Short: "Engagement-ranked insights from video or image posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := enrich.ParsePostKind(kind)
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			posts, err := source(cmd, a).Posts(input)
			if err != nil {
				return err
			}
			out, runErr := e.Engagement().Enrich(cmd.Context(), k, posts, catalog.ParseDomain(a.v.GetString("domain")))
			return emit(a, cmd.OutOrStdout(), out, runErr)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "JSONL file of posts (- for stdin)")
	cmd.Flags().StringVar(&kind, "kind", string(enrich.KindVideo), "post kind: video or image_post")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newForumCmd(a *app) *cobra.Command {
	var input, query string
	cmd := &cobra.Command{
		Use:   "forum",
		Short: "Insights from forum threads; the domain is inferred from --query unless --domain is set",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			threads, err := source(cmd, a).Threads(input)
			if err != nil {
				return err
			}
			out, runErr := e.Forum().Enrich(cmd.Context(), query, a.v.GetString("domain"), threads)
			return emit(a, cmd.OutOrStdout(), out, runErr)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "JSONL file of threads (- for stdin)")
	cmd.Flags().StringVar(&query, "query", "", "search query the threads were fetched for")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var text, file, id string
	var html bool
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a single text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				data, err := readInput(cmd, file)
				if err != nil {
					return err
				}
				text = string(data)
			}
			if text == "" {
				return fmt.Errorf("%w: --text or --file required", internalerr.ErrInvalidInput)
			}

			e, err := a.engine()
			if err != nil {
				return err
			}
			domain := catalog.ParseDomain(a.v.GetString("domain"))
			if html {
				return a.writeJSON(cmd.OutOrStdout(), e.AnalyzeMarkup(id, text, domain))
			}
			return a.writeJSON(cmd.OutOrStdout(), e.Analyze(id, text, domain))
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to analyze")
	cmd.Flags().StringVar(&file, "file", "", "read the text from a file (- for stdin)")
	cmd.Flags().StringVar(&id, "id", "input", "source id for the result")
	cmd.Flags().BoolVar(&html, "html", false, "treat the text as HTML")
	return cmd
}

// source resolves --input paths against the command's stdin.
func source(cmd *cobra.Command, a *app) feed.Source {
	return feed.Source{Stdin: cmd.InOrStdin(), Logger: a.logger}
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// emit writes the (possibly partial) result, then reports runErr.
func emit(a *app, w io.Writer, v any, runErr error) error {
	if err := a.writeJSON(w, v); err != nil {
		return errors.Join(runErr, err)
	}
	if runErr != nil {
		return fmt.Errorf("partial result: %w", runErr)
	}
	return nil
}
