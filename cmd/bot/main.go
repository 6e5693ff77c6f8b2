package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "quizbot",
		Short:        "Quiz bot for Telegram and VK",
		Long:         "quizbot asks random questions from a KOI8-R question archive over Telegram and VK, keeping each user's current question in a shared session store.",
		SilenceUsage: true,
	}

	serveCmd := newServeCmd()
	rootCmd.RunE = serveCmd.RunE

	rootCmd.AddCommand(
		serveCmd,
		newBankCmd(),
	)

	return rootCmd
}
