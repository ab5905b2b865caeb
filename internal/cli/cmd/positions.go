package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/drawerpane/internal/cli/styles"
	"github.com/bnema/drawerpane/internal/domain/entity"
)

var positionsYes bool

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Manage remembered floating window positions",
	Long: `Floating drawers reopen where they were last closed. These commands
list and clear the stored positions.`,
}

var positionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored floating positions",
	RunE:  runPositionsList,
}

var positionsClearCmd = &cobra.Command{
	Use:   "clear [item-id]",
	Short: "Forget stored floating positions",
	Long: `Forget the stored position of one drawer, or of every drawer when no
item id is given. Cleared drawers float at the default placement next time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPositionsClear,
}

func init() {
	rootCmd.AddCommand(positionsCmd)
	positionsCmd.AddCommand(positionsListCmd)
	positionsCmd.AddCommand(positionsClearCmd)
	positionsClearCmd.Flags().BoolVarP(&positionsYes, "yes", "y", false, "skip confirmation prompt")
}

func runPositionsList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	renderer := styles.NewRenderer(app.Theme)

	repo, err := app.Positions(ctx)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	positions, err := repo.GetAll(ctx)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	rows := make([]table.Row, len(positions))
	for i, pos := range positions {
		rows[i] = styles.PositionRow(pos)
	}
	columns := styles.PositionTableColumns()
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	t := styles.NewStyledTable(app.Theme, columns, rows, width, len(rows)+1)

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPositions(app.DB.Path(), t.View(), len(rows)))
	return nil
}

func runPositionsClear(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	renderer := styles.NewRenderer(app.Theme)

	repo, err := app.Positions(ctx)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	what := "all floating positions"
	if len(args) == 1 {
		what = fmt.Sprintf("the floating position of %s", args[0])
	}

	if !positionsYes {
		confirmed, err := confirm(app.Theme, "Clear "+what+"?", "Drawers will float at the default placement.")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCanceled())
			return nil
		}
	}

	if len(args) == 1 {
		err = repo.Delete(ctx, entity.ItemID(args[0]))
	} else {
		err = repo.DeleteAll(ctx)
	}
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	app.Logger().Info().Str("scope", what).Msg("floating positions cleared")
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCleared(what))
	return nil
}

// confirm runs a yes/no dialog and returns the answer.
func confirm(theme *styles.Theme, message, detail string) (bool, error) {
	final, err := tea.NewProgram(styles.NewConfirm(theme, message, detail)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation dialog: %w", err)
	}
	m, ok := final.(styles.ConfirmModel)
	return ok && m.Result(), nil
}
