package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/spf13/cobra"
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "List the rows of each character set in teaching order",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, _ := cmd.Flags().GetString("set")
		out := cmd.OutOrStdout()

		syllabaries := kana.AllSyllabaries()
		if set != "" {
			syl, err := kana.ParseSyllabary(strings.ToLower(set))
			if err != nil {
				return err
			}
			syllabaries = []kana.Syllabary{syl}
		}

		for i, syl := range syllabaries {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printRows(out, kana.For(syl))
		}
		return nil
	},
}

func printRows(out io.Writer, c kana.Catalog) {
	fmt.Fprintln(out, c.Syllabary.DisplayName())

	// Header.
	fmt.Fprintf(out, "%-4s  %-5s  %-24s  %s\n", "#", "Row", "Characters", "Readings")
	fmt.Fprintln(out, strings.Repeat("─", 60))

	for i, row := range kana.RowsOf(c) {
		chars := kana.CharactersInRow(c, row)
		glyphs := make([]string, len(chars))
		readings := make([]string, len(chars))
		for j, ch := range chars {
			glyphs[j] = ch.Glyph
			readings[j] = ch.Romaji
		}
		// Kana are two cells wide, so pad by hand.
		glyphCol := strings.Join(glyphs, " ")
		pad := max(24-len(chars)*3+1, 1)
		fmt.Fprintf(out, "%-4d  %-5s  %s%s%s\n", i+1, strings.ToUpper(row),
			glyphCol, strings.Repeat(" ", pad), strings.Join(readings, " "))
	}

	fmt.Fprintf(out, "\n%d characters in %d rows\n", len(c.Characters), len(kana.RowsOf(c)))
}

func init() {
	rowsCmd.Flags().String("set", "", "Only list one character set (hiragana or katakana)")
}
