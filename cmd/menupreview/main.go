// Command menupreview loads a menu description and shows how its items are
// sized: as a terminal tab bar, or as a size table for a real font.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/config"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/face"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/locale"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/termbar"
)

type previewFlags struct {
	face          string
	fontSize      float64
	selectedFont  string
	lang          string
	messages      []string
	selected      int
	viewportWidth float64
	cannoli       bool
	logLevel      string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var flags previewFlags

	cmd := &cobra.Command{
		Use:   "menupreview <menu.toml>",
		Short: "Preview the item sizes of a paging menu",
		Long: "menupreview builds every item view of a menu description and prints either a " +
			"terminal tab bar (--face cell) or the measured size of each item.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.OutOrStdout(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.face, "face", "cell", `Measuring face: "cell", "basic" or a TTF/OTF path`)
	cmd.Flags().Float64Var(&flags.fontSize, "font-size", 0, "Point size for TTF/OTF faces")
	cmd.Flags().StringVar(&flags.selectedFont, "selected-face", "", "Face for the focused item (defaults to --face)")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "Preferred language for title_id lookups")
	cmd.Flags().StringSliceVar(&flags.messages, "messages", nil, "Message files with translated titles")
	cmd.Flags().IntVar(&flags.selected, "select", 0, "Index of the focused item (-1 for none)")
	cmd.Flags().Float64Var(&flags.viewportWidth, "viewport-width", 0, "Override the configured viewport width")
	cmd.Flags().BoolVar(&flags.cannoli, "cannoli", false, "Use the Cannoli palette")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "error", "Log level")

	return cmd
}

func runPreview(out io.Writer, path string, flags previewFlags) error {
	pagingmenu.Init(pagingmenu.InitOptions{IsCannoli: flags.cannoli, LogLevel: flags.logLevel})
	defer pagingmenu.Close()

	font, err := openFace(flags.face, flags.fontSize)
	if err != nil {
		return err
	}
	selectedFont := font
	if flags.selectedFont != "" {
		if selectedFont, err = openFace(flags.selectedFont, flags.fontSize); err != nil {
			return err
		}
	}

	catalog := locale.NewCatalog()
	if err := catalog.LoadFiles(flags.messages...); err != nil {
		return err
	}

	file, err := config.Load(path)
	if err != nil {
		return err
	}

	menu, err := file.Build(config.BuildOptions{
		Font:         font,
		SelectedFont: selectedFont,
		Localizer:    catalog.Localizer(flags.lang),
		BaseDir:      filepath.Dir(path),
	})
	if err != nil {
		return err
	}

	views := make([]*pagingmenu.MenuItemView, len(menu.Titles))
	for i, title := range menu.Titles {
		if views[i], err = pagingmenu.NewMenuItemView(title, i, menu.Options); err != nil {
			return err
		}
		if flags.viewportWidth > 0 {
			views[i].UpdateForViewport(pagingmenu.Size{Width: flags.viewportWidth, Height: menu.Options.Viewport.Height})
		}
		if i == flags.selected {
			views[i].SetSelected(true)
		}
	}

	pagingmenu.GetLogger().Info("Built menu", "path", path, "items", len(views))

	if flags.face == "cell" {
		bar, _ := termbar.Render(views)
		fmt.Fprintln(out, bar)
		return nil
	}

	for _, v := range views {
		size := v.MeasuredSize()
		marker := " "
		if v.Focused() {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-20q %6.0f x %-4.0f\n", marker, v.Title(), size.Width, size.Height)
	}
	return nil
}

func openFace(name string, size float64) (pagingmenu.Face, error) {
	switch name {
	case "cell":
		return face.NewCellFace(false), nil
	case "basic":
		return face.Basic(), nil
	default:
		f, err := face.LoadOpenType(name, face.OpenTypeOptions{Size: size})
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}
