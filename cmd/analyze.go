package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/alebellina412/calcetto-app/internal/model"
	"github.com/alebellina412/calcetto-app/internal/stats"
)

const analyzeSystemPrompt = `You are a five-a-side football performance analyst. You are given structured
data from a match-log tool and a question from a player.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable — focus on what the group can actually change.
- Avoid generic football advice unless it directly explains a pattern in the data.

Metrics glossary:
- Rating: Elo-style skill score. Everyone starts at 1000; a win against a
  stronger team average moves it more than one against a weaker team.
- Win rate: wins ÷ matches played. Draws count as played but not won.
- G/M: goals per match played.
- Conceded: goals scored by the opposing team in the player's matches.
- Together record: results from matches where a whole group shared a team.
- With/without split: a player's results partitioned by whether the named
  partners were on their team.`

var (
	analyzeModel  string
	analyzeAPIKey string
	analyzeLast   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "AI-powered grounded analysis (requires ANTHROPIC_API_KEY)",
}

var analyzePlayerCmd = &cobra.Command{
	Use:   "player <name> <question>",
	Short: "Analyze a player's record with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzePlayer,
}

var analyzeSeasonCmd = &cobra.Command{
	Use:   "season <question>",
	Short: "Analyze the whole log with AI",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyzeSeason,
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&analyzeModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	analyzeCmd.PersistentFlags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")

	analyzePlayerCmd.Flags().IntVar(&analyzeLast, "last", 0, "only use the N most recent matches the player appeared in")

	analyzeCmd.AddCommand(analyzePlayerCmd)
	analyzeCmd.AddCommand(analyzeSeasonCmd)
}

func runAnalyzePlayer(cmd *cobra.Command, args []string) error {
	name, question := args[0], args[1]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, _, err := loadLog(db)
	if err != nil {
		return err
	}

	views := stats.PlayerMatchViews(matches, name)
	if len(views) == 0 {
		return fmt.Errorf("no matches found for %q", name)
	}
	if analyzeLast > 0 && len(views) > analyzeLast {
		views = views[:analyzeLast]
	}

	s := stats.ComputePlayerStats(matches, []string{name})[name]
	timeline := stats.RatingTimeline(matches, name)

	contextJSON, err := buildPlayerContext(s, timeline, views)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}
	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, question)
}

func runAnalyzeSeason(cmd *cobra.Command, args []string) error {
	question := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, names, err := loadLog(db)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no matches stored")
	}

	contextJSON, err := buildSeasonContext(stats.BuildDashboard(matches, names), len(matches))
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}
	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, question)
}

// buildPlayerContext serialises one player's record into compact JSON.
func buildPlayerContext(s *model.PlayerStats, timeline []model.TimelinePoint, views []model.MatchView) (string, error) {
	type matchEntry struct {
		Date   string `json:"date"`
		Score  string `json:"score"`
		Result string `json:"result"`
	}
	recent := make([]matchEntry, 0, len(views))
	for _, v := range views {
		recent = append(recent, matchEntry{
			Date:   v.Date,
			Score:  fmt.Sprintf("%d-%d", v.GoalsA, v.GoalsB),
			Result: v.Winner,
		})
	}

	doc := map[string]interface{}{
		"subject": "player",
		"player":  s.Name,
		"career": map[string]interface{}{
			"matches":         s.Matches,
			"wins":            s.Wins,
			"draws":           s.Draws,
			"losses":          s.Losses,
			"goals":           s.GoalsScored,
			"assists":         s.Assists,
			"conceded":        s.GoalsConceded,
			"goals_per_match": s.GoalsPerMatch(),
			"win_rate_pct":    s.WinRate() * 100,
			"rating":          s.Rating,
		},
		"rating_timeline": timeline,
		"recent_matches":  recent,
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

// buildSeasonContext serialises the dashboard into compact JSON.
func buildSeasonContext(dash model.Dashboard, totalMatches int) (string, error) {
	doc := map[string]interface{}{
		"subject":        "season",
		"total_matches":  totalMatches,
		"top_scorers":    dash.TopScorers,
		"top_assists":    dash.TopAssists,
		"win_rate":       dash.WinRate,
		"rating":         dash.RatingRanking,
		"latest_matches": dash.LatestMatches,
	}
	b, err := json.Marshal(doc)
	return string(b), err
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed — check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
