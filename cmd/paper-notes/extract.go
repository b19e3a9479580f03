package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [pdfs...]",
	Short: "Extract plain text from vault PDFs into notes",
	Long: `Extract reads PDF files already stored in the vault, pulls out their
plain text, and writes one companion note per PDF. Paths are
vault-relative.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("notes-dir", "", "vault-relative directory for notes (default papers)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more vault-relative PDF paths")
	}

	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	defer a.Shutdown()

	failed := 0
	for _, name := range args {
		notePath, err := a.ExtractPDF(cmd.Context(), name)
		if err != nil {
			fmt.Printf("failed:    %s (%v)\n", name, err)
			failed++
			continue
		}
		fmt.Printf("extracted: %s -> %s\n", name, notePath)
	}
	if failed > 0 {
		return fmt.Errorf("%d PDF(s) failed extraction", failed)
	}
	return nil
}
