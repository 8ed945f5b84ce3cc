package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsstudio/internal/core"
	"newsstudio/internal/logger"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List and manage generated drafts",
	Long:  `Inspect drafts and move them through the review lifecycle.`,
}

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")
		limit, _ := cmd.Flags().GetInt("limit")

		if err := runDraftsList(status, limit); err != nil {
			logger.Error("Failed to list drafts", err)
			os.Exit(1)
		}
	},
}

var draftsShowCmd = &cobra.Command{
	Use:   "show [draft-id]",
	Short: "Show one draft in full",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDraftsShow(args[0]); err != nil {
			logger.Error("Failed to show draft", err)
			os.Exit(1)
		}
	},
}

var draftsReviewCmd = &cobra.Command{
	Use:   "review [draft-id]",
	Short: "Send a draft to review",
	Args:  cobra.ExactArgs(1),
	Run:   transitionRun(core.StatusNeedsReview),
}

var draftsApproveCmd = &cobra.Command{
	Use:   "approve [draft-id]",
	Short: "Approve a draft",
	Args:  cobra.ExactArgs(1),
	Run:   transitionRun(core.StatusApproved),
}

var draftsPublishCmd = &cobra.Command{
	Use:   "publish [draft-id]",
	Short: "Mark a draft as published",
	Long: `Mark a draft as published. The underlying news item is flagged as used
so it will not be suggested again.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDraftsPublish(args[0]); err != nil {
			logger.Error("Failed to publish draft", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(draftsCmd)
	draftsCmd.AddCommand(draftsListCmd)
	draftsCmd.AddCommand(draftsShowCmd)
	draftsCmd.AddCommand(draftsReviewCmd)
	draftsCmd.AddCommand(draftsApproveCmd)
	draftsCmd.AddCommand(draftsPublishCmd)
	draftsListCmd.Flags().String("status", "", "Filter by status: DRAFT, NEEDS_REVIEW, APPROVED, PUBLISHED")
	draftsListCmd.Flags().Int("limit", 20, "Maximum number of drafts to list")
}

// transitionRun builds a Run function that moves a draft to the given status.
func transitionRun(to string) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := runDraftsTransition(args[0], to); err != nil {
			logger.Error("Failed to update draft status", err, "status", to)
			os.Exit(1)
		}
	}
}

func runDraftsList(status string, limit int) error {
	if status != "" && !core.ValidStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	list, err := st.ListDrafts(status, limit, 0)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No drafts found. Generate one with 'newsstudio generate <news-id>'.")
		return nil
	}

	for _, d := range list {
		marker := " "
		if d.VariantOf != "" {
			marker = "↳"
		}
		fmt.Printf("%s %s [%s] %s\n", marker, d.ID, d.Status, d.Hook)
	}
	return nil
}

func runDraftsShow(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	d, err := st.GetDraft(id)
	if err != nil {
		return fmt.Errorf("draft %s: %w", id, err)
	}
	printDraft(*d)
	return nil
}

func runDraftsTransition(id, to string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.TransitionDraft(id, to); err != nil {
		return err
	}
	fmt.Printf("✅ Draft %s is now %s\n", id, to)
	return nil
}

func runDraftsPublish(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	d, err := st.GetDraft(id)
	if err != nil {
		return fmt.Errorf("draft %s: %w", id, err)
	}
	if err := st.TransitionDraft(id, core.StatusPublished); err != nil {
		return err
	}
	if err := st.MarkNewsUsed(d.NewsID); err != nil {
		logger.Warn("draft published but news item not flagged", "news_id", d.NewsID, "error", err.Error())
	}
	fmt.Printf("✅ Draft %s published\n", id)
	return nil
}
