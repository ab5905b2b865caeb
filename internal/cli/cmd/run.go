package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/drawerpane/internal/cache"
	"github.com/bnema/drawerpane/internal/cli"
	"github.com/bnema/drawerpane/internal/cli/styles"
	"github.com/bnema/drawerpane/internal/infrastructure/config"
	"github.com/bnema/drawerpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/drawerpane/internal/ui/drawer"
	"github.com/bnema/drawerpane/internal/ui/terminal"
)

var runNoPersist bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the drawer container in the terminal",
	Long: `Open the terminal host with a demo layout of drawers on all four edges.

Mouse:
  click          open or close a drawer
  drag           reorder a control, move it to another edge, or drop it
                 outside any strip to float it
  right click    toggle floating for a drawer
  drag divider   resize a docked region

Logs are written to the configured log file, never to the screen.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoPersist, "no-persist", false, "do not load or save floating window positions")
}

func runRun(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath, err := app.LogToFile()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	log := app.Logger()
	log.Info().Str("log_file", logPath).Msg("starting terminal host")

	var store drawer.PositionStore
	if app.Config.Floating.PersistPositions && !runNoPersist {
		positions := cache.NewPositionStore(ctx, sqlite.NewLazyPositionStore(app.DB))
		defer positions.Flush()
		store = positions
	}

	surfaces := terminal.NewSurfaces(ctx)
	container := drawer.NewContainer(ctx, cli.ContainerOptions(app.Config, surfaces, store))
	if err := cli.PopulateDemo(ctx, container); err != nil {
		return err
	}

	drawerStyles := app.Theme.DrawerStyles()
	help := styles.NewStyledHelp(app.Theme)
	model := terminal.NewModel(ctx, terminal.ModelConfig{
		Container: container,
		Surfaces:  surfaces,
		Styles:    &drawerStyles,
		Help:      &help,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(cli.EdgePolicies(cfg))
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	log.Info().Msg("terminal host stopped")
	return err
}
