package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/repository"
)

func newBankCmd() *cobra.Command {
	var (
		dir    string
		sample int
	)

	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Load the questions archive and report what was found",
		RunE: func(cmd *cobra.Command, _ []string) error {
			questions, err := repository.LoadArchive(dir, zap.NewNop())
			if err != nil {
				return err
			}
			bank, err := repository.NewQuestionBank(questions)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "questions: %d\n", bank.Len())

			for i := 0; i < sample; i++ {
				q, err := bank.RandomQuestion()
				if err != nil {
					return err
				}
				a, _ := bank.Lookup(q)
				_, _ = fmt.Fprintf(out, "\nQ: %s\nA: %s\n", q, a)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "questions_archive", "directory with *.txt archive files")
	cmd.Flags().IntVar(&sample, "sample", 0, "print N random question/answer pairs")

	return cmd
}
