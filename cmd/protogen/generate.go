package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/filiphsps/MiNET-protocol-converter/internal/config"
	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol/schema"
	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol/source"
	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol/synth"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errUnresolved = errors.New("document has unresolved type references")

func newGenerateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the schema document and write it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			res, err := build(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := writeOutput(cfg.Output, res.encoded); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d types to %s\n", res.doc.Len(), cfg.Output)
			return nil
		},
	}
	addSourceFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json|yaml")
	return cmd
}

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Build the schema document and report problems without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			cfg.Strict = true
			res, err := build(cmd.Context(), cfg)
			printSummary(cmd.OutOrStdout(), res)
			return err
		},
	}
	addSourceFlags(cmd, opts)
	return cmd
}

func newInitCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "protogen.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteTemplate(path, opts.force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote config template to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing file")
	return cmd
}

type result struct {
	doc        *schema.Document
	report     synth.Report
	unresolved []string
	unmodeled  []schema.UnmodeledField
	encoded    []byte
}

// build runs load, assemble, validate and encode. With cfg.Strict an
// unresolved reference fails the build; otherwise it is logged.
func build(ctx context.Context, cfg config.Config) (result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	msgs, err := source.Load(ctx, cfg.Source, cfg.Fetch)
	if err != nil {
		return result{}, err
	}

	assembler := synth.New(
		synth.WithEnvelopeTag(cfg.EnvelopeTag),
		synth.WithTypePrefix(cfg.TypePrefix),
	)
	doc, report := assembler.Assemble(msgs)
	res := result{
		doc:        doc,
		report:     report,
		unresolved: schema.Unresolved(doc),
		unmodeled:  schema.UnmodeledFields(doc),
	}
	for _, u := range res.unmodeled {
		log.Debug().Msgf("protogen unmodeled type=%s path=%s source=%s", u.Type, u.Path, u.Source)
	}

	if err := schema.Validate(doc); err != nil {
		if cfg.Strict {
			return res, fmt.Errorf("%w: %v", errUnresolved, err)
		}
		log.Warn().Msgf("protogen unresolved=%v", res.unresolved)
	}

	res.encoded, err = schema.Encode(doc, schema.EncodeOptions{Format: cfg.Format, Indent: cfg.Indent})
	if err != nil {
		return res, err
	}
	return res, nil
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output failed (%s): %w", path, err)
	}
	log.Info().Msgf("protogen wrote path=%s bytes=%d", path, len(data))
	return nil
}

func printSummary(w io.Writer, res result) {
	if res.doc == nil {
		return
	}
	fmt.Fprintf(w, "types: %d\n", res.doc.Len())
	fmt.Fprintf(w, "messages: kept=%d dropped=%d overridden=%d replaced=%d\n",
		res.report.Kept, len(res.report.Dropped), len(res.report.Overridden), res.report.Replaced)
	fmt.Fprintf(w, "unmodeled fields: %d\n", len(res.unmodeled))
	for _, u := range res.unmodeled {
		fmt.Fprintf(w, "  %s (%s)\n", u.Path, u.Source)
	}
	fmt.Fprintf(w, "unresolved references: %d\n", len(res.unresolved))
	for _, ref := range res.unresolved {
		fmt.Fprintf(w, "  %s\n", ref)
	}
}
