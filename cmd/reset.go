package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a learner's progress back to the first row",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, _ := cmd.Flags().GetString("set")
		targets, err := resetTargets(set)
		if err != nil {
			return err
		}

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

		out := cmd.OutOrStdout()
		repo := s.ProgressRepo()
		for _, syl := range targets {
			if err := repo.DeleteProgress(cmd.Context(), cfg.Learner, syl); err != nil {
				return err
			}
			fmt.Fprintf(out, "Reset %s progress for %s\n", syl.DisplayName(), cfg.Learner)
		}
		return nil
	},
}

// resetTargets maps the --set value to the syllabaries to reset.
func resetTargets(set string) ([]kana.Syllabary, error) {
	set = strings.ToLower(strings.TrimSpace(set))
	if set == "all" {
		return kana.AllSyllabaries(), nil
	}
	syl, err := kana.ParseSyllabary(set)
	if err != nil {
		return nil, fmt.Errorf("%w (or all)", err)
	}
	return []kana.Syllabary{syl}, nil
}

func init() {
	resetCmd.Flags().String("set", "", "Character set to reset: hiragana, katakana or all")
	_ = resetCmd.MarkFlagRequired("set")
}
