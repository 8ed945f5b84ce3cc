package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"newsstudio/internal/config"
	"newsstudio/internal/fetch"
	"newsstudio/internal/ingest"
	"newsstudio/internal/logger"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Pull news from the configured feeds",
	Long: `Fetch all configured RSS feeds, filter entries through the relevance
guardrails, classify them and store the new items.

Example:
  newsstudio ingest
  newsstudio ingest --domain tech
  newsstudio ingest --sources sources.yaml --max-per-source 5`,
	Run: func(cmd *cobra.Command, args []string) {
		domain, _ := cmd.Flags().GetString("domain")
		sourcesFile, _ := cmd.Flags().GetString("sources")
		maxPerSource, _ := cmd.Flags().GetInt("max-per-source")

		if err := runIngest(cmd, domain, sourcesFile, maxPerSource); err != nil {
			logger.Error("Failed to ingest feeds", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().String("domain", "", "Only ingest one domain: real_estate or tech")
	ingestCmd.Flags().String("sources", "", "YAML file overriding the built-in source list")
	ingestCmd.Flags().Int("max-per-source", 0, "Override the per-source item cap")
}

func runIngest(cmd *cobra.Command, domain, sourcesFile string, maxPerSource int) error {
	cfg := config.Get()
	if sourcesFile == "" {
		sourcesFile = cfg.Ingest.SourcesFile
	}

	sources, err := ingest.LoadSources(sourcesFile)
	if err != nil {
		return err
	}
	sources = ingest.FilterByDomain(sources, domain)
	if len(sources) == 0 {
		return fmt.Errorf("no sources configured for domain %q", domain)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	timeout := fetchTimeout()
	maxRE := cfg.Ingest.MaxPerSource
	maxTech := cfg.Ingest.MaxPerSourceTech
	if maxPerSource > 0 {
		maxRE = maxPerSource
		maxTech = maxPerSource
	}

	coordinator := ingest.NewCoordinator(
		ingest.NewHTTPFeedFetcher(cfg.Fetch.UserAgent, timeout),
		fetch.NewClient(cfg.Fetch.UserAgent, timeout),
		st,
		ingest.WithMaxPerSource(maxRE, maxTech),
		ingest.WithMinScore(cfg.Ingest.MinRelevance),
	)

	fmt.Printf("Ingesting %d sources...\n", len(sources))
	results := coordinator.Ingest(cmd.Context(), sources)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		fmt.Printf("  %-35s %d\n", name, results[name])
		total += results[name]
	}
	fmt.Printf("\n✅ %d new items stored\n", total)
	return nil
}
