package symbology

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"codekeeper/internal/domain/barcode"
)

var SymbologyCmd = &cobra.Command{
	Use:     "symbology",
	Aliases: []string{"types"},
	Short:   "Поддерживаемые типы кодов",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список типов кодов",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Идентификатор\tНазвание\tПсевдонимы\t\n")
		for _, s := range barcode.Symbologies() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", s.Identifier(), s, strings.Join(s.Aliases(), ", "))
		}
		return tw.Flush()
	},
}

func init() {
	SymbologyCmd.AddCommand(listCmd)
}
