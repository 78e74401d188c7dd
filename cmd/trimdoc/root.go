package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Gobd/trimdecode/transform"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TRIMDOC")
	// --drop-empty -> TRIMDOC_DROP_EMPTY
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "trimdoc [file]",
		Short: "Trim whitespace from every string in a JSON or YAML document",
		Long: `trimdoc reads a JSON or YAML document, trims leading and trailing
whitespace from every string in it and writes it back in the same format.

With --drop-empty, strings left blank are removed from arrays and keys
whose value is left blank are removed from objects.

Configuration (flags override environment):
  TRIMDOC_FORMAT       json or yaml
  TRIMDOC_DROP_EMPTY   true to drop blank values
  TRIMDOC_LOG_LEVEL    debug, info, warn, error

Examples:
  trimdoc request.json
  curl -s example.com/api | trimdoc --drop-empty
  trimdoc -f yaml < values.yml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
			return run(cmd, args, v, logger)
		},
	}

	f := cmd.Flags()
	f.StringP("format", "f", "", "document format: json or yaml (default: from file extension, else json)")
	f.Bool("drop-empty", false, "remove blank strings from arrays and blank-valued keys from objects")
	f.String("log-level", "warn", "log level: debug, info, warn, error")
	return cmd
}

func run(cmd *cobra.Command, args []string, v *viper.Viper, logger *slog.Logger) error {
	name := "-"
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		file, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = file.Close() }()
		in = file
	}

	format, err := resolveFormat(v.GetString("format"), name)
	if err != nil {
		return err
	}
	policy := transform.KeepEmpty
	if v.GetBool("drop-empty") {
		policy = transform.DropEmpty
	}
	logger.Debug("normalizing document", "input", name, "format", format, "policy", policy.String())

	doc, err := decodeDocument(in, format)
	if err != nil {
		return err
	}
	if err := encodeDocument(cmd.OutOrStdout(), format, transform.Document(doc, policy)); err != nil {
		return err
	}
	logger.Info("document normalized", "input", name)
	return nil
}

// resolveFormat returns the explicit format if set, else guesses from the
// file name.
func resolveFormat(explicit, name string) (string, error) {
	switch strings.ToLower(explicit) {
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	case "":
	default:
		return "", fmt.Errorf("unsupported format %q: want json or yaml", explicit)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return formatJSON, nil
	}
}

// decodeDocument reads exactly one document from r. Anything after it, a
// second YAML document or trailing JSON, is an error rather than dropped.
func decodeDocument(r io.Reader, format string) (any, error) {
	var next func(any) error
	if format == formatYAML {
		next = yaml.NewDecoder(r).Decode
	} else {
		dec := json.NewDecoder(r)
		// Keep numbers as written.
		dec.UseNumber()
		next = dec.Decode
	}

	var doc any
	err := next(&doc)
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", format, err)
	}

	var rest any
	if err := next(&rest); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the first %s document", format)
	}
	return doc, nil
}

func encodeDocument(w io.Writer, format string, doc any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
