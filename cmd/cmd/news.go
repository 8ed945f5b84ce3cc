package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsstudio/internal/logger"
	"newsstudio/internal/store"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Browse ingested news items",
}

var newsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored news items, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		domain, _ := cmd.Flags().GetString("domain")
		category, _ := cmd.Flags().GetString("category")
		limit, _ := cmd.Flags().GetInt("limit")

		if err := runNewsList(domain, category, limit); err != nil {
			logger.Error("Failed to list news", err)
			os.Exit(1)
		}
	},
}

var newsShowCmd = &cobra.Command{
	Use:   "show [news-id]",
	Short: "Show one news item in full",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runNewsShow(args[0]); err != nil {
			logger.Error("Failed to show news item", err)
			os.Exit(1)
		}
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-domain storage counts",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStats(); err != nil {
			logger.Error("Failed to read stats", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(statsCmd)
	newsCmd.AddCommand(newsListCmd)
	newsCmd.AddCommand(newsShowCmd)
	newsListCmd.Flags().String("domain", "", "Filter by domain: real_estate or tech")
	newsListCmd.Flags().String("category", "", "Filter by category code")
	newsListCmd.Flags().Int("limit", 20, "Maximum number of items to list")
}

func runNewsList(domain, category string, limit int) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	items, err := st.ListNews(store.ListNewsFilter{Domain: domain, Category: category, Limit: limit})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No news stored. Run 'newsstudio ingest' first.")
		return nil
	}

	for _, item := range items {
		used := " "
		if item.UsedInSocial {
			used = "✓"
		}
		fmt.Printf("%s %s [%s] %s (%s)\n", used, item.ID, item.Category, item.Title, item.Source)
	}
	return nil
}

func runNewsShow(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	item, err := st.GetNews(id)
	if err != nil {
		return fmt.Errorf("news %s: %w", id, err)
	}

	fmt.Printf("Title:     %s\n", item.Title)
	fmt.Printf("Source:    %s\n", item.Source)
	fmt.Printf("URL:       %s\n", item.URL)
	fmt.Printf("Published: %s\n", item.PublishedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Domain:    %s\n", item.Domain)
	fmt.Printf("Category:  %s\n", item.Category)
	if item.Tags != "" {
		fmt.Printf("Tags:      %s\n", item.Tags)
	}
	if item.RelevanceScore > 0 {
		fmt.Printf("Score:     %d\n", item.RelevanceScore)
	}
	fmt.Printf("Used:      %v\n", item.UsedInSocial)
	if item.StudioSummary != "" {
		fmt.Printf("\nStudio summary:\n%s\n", item.StudioSummary)
	}
	if item.RawSummary != "" {
		fmt.Printf("\n%s\n", item.RawSummary)
	}
	return nil
}

func runStats() error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	counts, err := st.CountNews()
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Println("Store is empty.")
		return nil
	}

	fmt.Println("News items by domain:")
	total := 0
	for domain, n := range counts {
		fmt.Printf("  %-12s %d\n", domain, n)
		total += n
	}
	fmt.Printf("  %-12s %d\n", "total", total)
	return nil
}
