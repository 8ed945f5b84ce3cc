package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"newsstudio/internal/config"
	"newsstudio/internal/core"
	"newsstudio/internal/drafts"
	"newsstudio/internal/logger"
)

var generateCmd = &cobra.Command{
	Use:   "generate [news-id]",
	Short: "Generate the main draft for a news item",
	Long: `Compose a deterministic social media draft for a stored news item.
Regenerating overwrites the previous main draft in place, keeping its ID
and review status.

The brand defaults to the item's domain: Althara for real estate, Oxono
for tech.

Example:
  newsstudio generate 3f2a...
  newsstudio generate 3f2a... --brand oxono --tone cercano`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tone, _ := cmd.Flags().GetString("tone")
		brand, _ := cmd.Flags().GetString("brand")

		if err := runGenerate(args[0], tone, brand); err != nil {
			logger.Error("Failed to generate draft", err)
			os.Exit(1)
		}
	},
}

var variantsCmd = &cobra.Command{
	Use:   "variants [news-id]",
	Short: "Generate a main draft plus alternative variants",
	Long: `Generate several drafts for one news item: the main draft and N-1
variants with shifted seeds, each linked back to the main draft.

Example:
  newsstudio variants 3f2a... --count 3`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		brand, _ := cmd.Flags().GetString("brand")

		if err := runVariants(args[0], count, brand); err != nil {
			logger.Error("Failed to generate variants", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(variantsCmd)
	generateCmd.Flags().String("tone", "", "Draft tone (default from config)")
	generateCmd.Flags().String("brand", "", "Brand: althara or oxono (default by domain)")
	variantsCmd.Flags().Int("count", 0, "Number of drafts to generate (default from config)")
	variantsCmd.Flags().String("brand", "", "Brand: althara or oxono (default by domain)")
}

// brandForNews resolves the brand: explicit flag wins, otherwise the
// item's domain decides.
func brandForNews(news *core.NewsItem, flag string) string {
	if flag != "" {
		return flag
	}
	if news.Domain == core.DomainTech {
		return drafts.BrandOxono
	}
	return drafts.BrandAlthara
}

func runGenerate(newsID, tone, brand string) error {
	cfg := config.Get()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	news, err := st.GetNews(newsID)
	if err != nil {
		return fmt.Errorf("news %s: %w", newsID, err)
	}

	if tone == "" {
		tone = cfg.Drafts.DefaultTone
	}
	brand = brandForNews(news, brand)

	summary := drafts.BuildStudioSummary(news.Title, news.RawSummary, news.Category, drafts.Seed(news.ID))
	if err := st.UpdateNewsStudioSummary(news.ID, summary); err != nil {
		return err
	}
	news.StudioSummary = summary

	draft := drafts.Generate(*news, drafts.Options{
		Tone:     tone,
		Language: cfg.Drafts.DefaultLanguage,
		Brand:    brand,
		Seed:     -1,
	})

	draftID, err := st.UpsertMainDraft(draft)
	if err != nil {
		return err
	}
	stored, err := st.GetDraft(draftID)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Draft %s generated for %q\n\n", draftID, news.Title)
	printDraft(*stored)
	return nil
}

func runVariants(newsID string, count int, brand string) error {
	cfg := config.Get()
	if count <= 0 {
		count = cfg.Drafts.VariantCount
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	news, err := st.GetNews(newsID)
	if err != nil {
		return fmt.Errorf("news %s: %w", newsID, err)
	}

	generated := drafts.GenerateVariants(*news, count, drafts.Options{
		Tone:     cfg.Drafts.DefaultTone,
		Language: cfg.Drafts.DefaultLanguage,
		Brand:    brandForNews(news, brand),
		Seed:     -1,
	})

	for _, d := range generated {
		if err := st.SaveDraft(d); err != nil {
			return err
		}
	}

	fmt.Printf("✅ %d drafts generated for %q\n", len(generated), news.Title)
	for i, d := range generated {
		kind := "main"
		if d.VariantOf != "" {
			kind = "variant"
		}
		fmt.Printf("  %d. %s (%s) hook: %s\n", i+1, d.ID, kind, d.Hook)
	}
	return nil
}

// printDraft writes a full draft to stdout in reviewable form.
func printDraft(d core.Draft) {
	fmt.Printf("Hook:    %s\n", d.Hook)
	for i, slide := range d.Slides {
		fmt.Printf("Slide %d: [%s] %s\n", i+1, slide.Title, slide.Body)
	}
	fmt.Printf("CTA:     %s\n", d.CTA)
	fmt.Printf("Source:  %s\n", d.SourceLine)
	fmt.Printf("Status:  %s\n", d.Status)
	fmt.Printf("\nCaption:\n%s\n", d.Caption)
	fmt.Printf("\nHashtags: %s\n", strings.Join(d.Hashtags, " "))
	if d.Disclaimer != "" {
		fmt.Printf("\n%s\n", d.Disclaimer)
	}
}
