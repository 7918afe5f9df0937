package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/natworks/chatdash/internal/analysis"
	"github.com/natworks/chatdash/internal/api"
	"github.com/natworks/chatdash/internal/chatlog"
	"github.com/natworks/chatdash/internal/config"
	"github.com/natworks/chatdash/internal/identity"
	"github.com/natworks/chatdash/internal/phrases"
	"github.com/natworks/chatdash/internal/table"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "chatdash",
		Short: "Chatdash - chat export parsing and analytics",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(map[string]any{"version": version})
		},
	}

	var (
		year        int
		lang        string
		phrasesPath string
		renames     []string
	)
	analyzeCmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Parse a chat export and print the analytics report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if lang != "" {
				cfg.Language = lang
			}
			if phrasesPath != "" {
				cfg.PhrasesPath = phrasesPath
			}

			catalog, err := phrases.Load(cfg.PhrasesPath)
			if err != nil {
				return err
			}
			set, err := catalog.ForLanguage(cfg.Language)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			result, err := chatlog.Parse(raw, chatlog.Options{
				ScanWindow:   cfg.ScanWindow,
				AlertPhrases: set.Alerts,
			})
			if err != nil {
				return fmt.Errorf("could not analyze this chat: %w", err)
			}

			t := table.Normalize(result.Records, result.Dialect.String())

			mapping, err := parseRenames(renames)
			if err != nil {
				return err
			}
			identity.Rename(t, mapping)
			if year != 0 {
				t = t.FilterYear(year)
			}

			return printJSON(map[string]any{
				"source":   t.Source,
				"messages": t.Len(),
				"authors":  identity.Split(t.Authors()),
				"report":   analysis.BuildReport(t, set),
			})
		},
	}
	analyzeCmd.Flags().IntVar(&year, "year", 0, "restrict the report to one year")
	analyzeCmd.Flags().StringVar(&lang, "lang", "", "phrase-set language tag (default from env)")
	analyzeCmd.Flags().StringVar(&phrasesPath, "phrases", "", "phrase catalog override file")
	analyzeCmd.Flags().StringArrayVar(&renames, "rename", nil, "phone-to-name rename, e.g. +15551234567=Alice (repeatable)")

	var port int
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP upload-and-analyze API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != 0 {
				cfg.Port = port
			}
			catalog, err := phrases.Load(cfg.PhrasesPath)
			if err != nil {
				return err
			}
			srv, err := api.NewServer(cfg, catalog)
			if err != nil {
				return err
			}
			return srv.Start()
		},
	}
	serveCmd.Flags().IntVar(&port, "port", 0, "listen port (default from env)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseRenames turns repeated `+digits=Name` flags into the rename mapping,
// canonicalizing the phone side the same way the resolver does.
func parseRenames(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	mapping := make(map[string]string, len(pairs))
	for _, p := range pairs {
		phone, name, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid rename %q, want phone=name", p)
		}
		canonical, ok := identity.Canonical(phone)
		if !ok {
			return nil, fmt.Errorf("invalid rename %q, %q is not a phone number", p, phone)
		}
		mapping[canonical] = name
	}
	return mapping, nil
}

func printJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
