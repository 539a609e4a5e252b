package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"zolve/formkit/internal/models"
	"zolve/formkit/internal/validation"
)

func newPurposesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purposes",
		Short: "List field purposes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range validation.Purposes() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
		},
	}
}

func newCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List phone countries",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("CODE", "DIAL", "DIGITS", "NAME")

			for _, c := range models.Countries() {
				t.Row(c.Code, "+"+c.DialCode, strconv.Itoa(c.DigitCount()), c.Name)
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}
