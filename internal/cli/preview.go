// preview.go implements the "wishkiosk preview" command.
package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/berth-dev/wishkiosk/internal/config"
	"github.com/berth-dev/wishkiosk/internal/generate"
	"github.com/berth-dev/wishkiosk/internal/kiosk"
	"github.com/berth-dev/wishkiosk/internal/tui"
	"github.com/berth-dev/wishkiosk/internal/tui/app"
	"github.com/berth-dev/wishkiosk/internal/tui/views"
)

var (
	previewWidth  int
	previewHeight int
)

var previewCmd = &cobra.Command{
	Use:       "preview <attract|compose|processing|success>",
	Short:     "Render one kiosk screen to stdout",
	Long:      `Render a kiosk screen once without a terminal, using the configured campaign copy and sample form data.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"attract", "compose", "processing", "success"},
	RunE:      runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 100, "Render width in cells")
	previewCmd.Flags().IntVar(&previewHeight, "height", 32, "Render height in lines")
}

func runPreview(cmd *cobra.Command, args []string) error {
	screen, ok := kiosk.ParseScreen(strings.ToLower(args[0]))
	if !ok {
		return fmt.Errorf("unknown screen %q (want attract, compose, processing or success)", args[0])
	}

	cfg, err := loadConfig(".")
	if err != nil {
		cfg = config.DefaultConfig()
	}

	out, err := renderPreview(cfg, screen, previewWidth, previewHeight)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// sampleForm fills the compose screen in previews.
var sampleForm = kiosk.WishForm{
	Name:          "Nimal Perera",
	ContactNumber: "077 123 4567",
	Wish:          "May every family find warmth and shelter this Christmas.",
}

// renderPreview drives a kiosk app to screen with stub collaborators and
// returns its rendered view.
func renderPreview(cfg *config.Config, screen kiosk.Screen, width, height int) (string, error) {
	f, err := newFormatter(cfg)
	if err != nil {
		return "", err
	}

	model := tui.NewModel(cfg, newSession(cfg), f, newRand())
	a := app.New(model, app.Options{})
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})

	if screen == kiosk.ScreenAttract {
		return a.View(), nil
	}

	a.Update(views.StartMsg{})
	if screen == kiosk.ScreenCompose {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(sampleForm.Name)})
		return a.View(), nil
	}

	a.Update(views.SubmitWishMsg{Form: sampleForm})
	if screen == kiosk.ScreenProcessing {
		return a.View(), nil
	}

	a.Update(tui.WishCompleteMsg{
		Cycle:  model.Session.Cycle(),
		Result: kiosk.PipelineResult{Text: generate.FallbackError, Delivered: true},
	})
	return a.View(), nil
}
