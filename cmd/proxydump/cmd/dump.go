package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/go-drift/viewproxy/cmd/proxydump/internal/config"
	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/engine"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/inspect"
	"github.com/go-drift/viewproxy/pkg/layout"
	"github.com/go-drift/viewproxy/pkg/proxy"
	"github.com/go-drift/viewproxy/pkg/widgets"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Pump one frame and print the render tree snapshot",
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	resolved := map[string]string{}
	driver := engine.NewHeadless(graphics.Size{Width: cfg.Width, Height: cfg.Height})
	driver.Mount(demoWindow(cfg, resolved))
	if _, painted := driver.PumpFrame(); !painted {
		return fmt.Errorf("frame produced no paint output")
	}
	defer driver.Unmount()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "# render tree")
	if err := inspect.Dump(out, driver.RootRenderObject()); err != nil {
		return err
	}

	fmt.Fprintln(out, "# resolved chrome")
	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s: %s\n", name, resolved[name])
	}
	return nil
}

// demoWindow builds a window whose content carries one proxy per global
// chrome element. Each proxy records the debug description of whatever it
// resolves during the pre-draw pass.
func demoWindow(cfg *config.Resolved, resolved map[string]string) core.Widget {
	content := core.Widget(widgets.Padding{
		Insets: widgets.EdgeInsetsAll(8),
		Child:  widgets.Text{Content: "proxydump"},
	})

	for _, element := range []proxy.GlobalElement{
		proxy.GlobalWindow,
		proxy.GlobalContentView,
		proxy.GlobalTitlebar,
		proxy.GlobalTitlebarContainer,
		proxy.GlobalTabBar,
		proxy.GlobalToolbar,
		proxy.GlobalCurrentTab,
	} {
		name := element.String()
		content = proxy.Global(content, element, func(view layout.RenderObject) {
			resolved[name] = view.DebugDescription()
		})
	}

	return widgets.Window{
		Title:   cfg.Title,
		Toolbar: cfg.Toolbar,
		Tabs:    cfg.Tabs,
		Child:   content,
	}
}
