package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if cfg.Guest() {
			return fmt.Errorf("no learner set: use --learner or HIRABOLTA_LEARNER")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		cfg = withStoredPrefs(ctx, s, cfg, nil)

		rows, err := s.ProgressRepo().ListProgress(ctx, cfg.Learner)
		if err != nil {
			return fmt.Errorf("query progress: %w", err)
		}
		stats, err := s.EventRepo().Stats(ctx, cfg.Learner, time.Local)
		if err != nil {
			return fmt.Errorf("query answers: %w", err)
		}
		sessions, err := s.EventRepo().SessionCount(ctx, cfg.Learner)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		records := make(map[kana.Syllabary]progress.Record, len(rows))
		for _, r := range rows {
			records[kana.Syllabary(r.Syllabary)] = progress.Record{
				CurrentRow:   r.CurrentRow,
				CorrectCount: r.CorrectCount,
				CharacterSet: kana.Syllabary(r.Syllabary),
			}
		}

		fmt.Fprintf(out, "Learner: %s\n\n", cfg.Learner)

		// Header.
		fmt.Fprintf(out, "%-10s  %-5s  %-9s  %7s  %8s\n", "Set", "Row", "Progress", "Answers", "Accuracy")
		fmt.Fprintln(out, strings.Repeat("─", 48))

		for _, syl := range kana.AllSyllabaries() {
			rec, ok := records[syl]
			if !ok {
				rec = progress.DefaultRecord(syl)
			}
			ans := stats.Answers[syl]
			fmt.Fprintf(out, "%-10s  %-5s  %-9s  %7d  %7.0f%%\n",
				syl.DisplayName(),
				strings.ToUpper(rec.CurrentRow),
				fmt.Sprintf("%d/%d", rec.CorrectCount, cfg.CharactersPerRow),
				ans.Total,
				ans.Accuracy()*100,
			)
		}

		total := stats.Total()
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Answers:       %d (%.0f%% correct)\n", total.Total, total.Accuracy()*100)
		fmt.Fprintf(out, "Sessions:      %d\n", sessions)
		fmt.Fprintf(out, "Practice days: %d\n", stats.PracticeDays)
		if !stats.LastPractice.IsZero() {
			fmt.Fprintf(out, "Last practice: %s\n", stats.LastPractice.Format("2006-01-02"))
		}
		return nil
	},
}
