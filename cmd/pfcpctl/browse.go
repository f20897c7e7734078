package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/message"
)

// browseStyles mirrors internal/tui/theme.go's Tokyo-Night-inspired
// palette, scaled down to the handful of styles an IE tree browser needs.
type browseStyles struct {
	header   lipgloss.Style
	cursor   lipgloss.Style
	typeName lipgloss.Style
	value    lipgloss.Style
	vendor   lipgloss.Style
	help     lipgloss.Style
}

func defaultBrowseStyles() browseStyles {
	return browseStyles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9ece6a")),
		typeName: lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
		vendor:   lipgloss.NewStyle().Foreground(lipgloss.Color("#bb9af7")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#414868")),
	}
}

// treeLine is one flattened, pre-indented row of the IE tree, built once at
// load time so the bubbletea model's View is a pure render over a slice.
type treeLine struct {
	depth int
	ie    *ie.Ie
}

func flatten(ies []*ie.Ie, depth int) []treeLine {
	var out []treeLine
	for _, g := range ies {
		out = append(out, treeLine{depth: depth, ie: g})
		out = append(out, flatten(g.Children, depth+1)...)
	}
	return out
}

type browseModel struct {
	styles browseStyles
	header string
	lines  []treeLine
	cursor int
	height int
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.lines)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render(m.header))
	b.WriteString("\n\n")
	for i, line := range m.lines {
		prefix := "  "
		if i == m.cursor {
			prefix = m.styles.cursor.Render("> ")
		}
		indent := strings.Repeat("  ", line.depth)
		name := m.styles.typeName.Render(line.ie.Type.String())
		if line.ie.EnterpriseID != nil {
			name += " " + m.styles.vendor.Render(fmt.Sprintf("(vendor 0x%08x)", *line.ie.EnterpriseID))
		}
		row := prefix + indent + name
		if len(line.ie.Children) == 0 {
			row += " " + m.styles.value.Render("= "+preview(line.ie.Payload))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("↑/↓ or j/k to move, q to quit"))
	return b.String()
}

// newBrowseCmd asks (via huh) whether the input is a hex string or a file,
// decodes it, and opens a navigable bubbletea view of the IE tree.
// Modeled on an internal/ui wizard-form input-gathering pattern
// plus internal/tui's Model/Update/View + Styles split, scaled down from a
// full multi-screen app to one read-only list.
func newBrowseCmd() *cobra.Command {
	var hexArg string
	var fileArg string

	cmd := &cobra.Command{
		Use:   "browse [hexfile]",
		Short: "Interactively browse a decoded PFCP message's IE tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				fileArg = args[0]
			}
			if hexArg == "" && fileArg == "" {
				var source string
				err := huh.NewForm(huh.NewGroup(
					huh.NewSelect[string]().
						Title("Input source").
						Options(huh.NewOption("Paste hex", "hex"), huh.NewOption("Read from file", "file")).
						Value(&source),
				)).Run()
				if err != nil {
					return err
				}
				if source == "hex" {
					err = huh.NewForm(huh.NewGroup(
						huh.NewInput().Title("Hex bytes").Value(&hexArg),
					)).Run()
				} else {
					err = huh.NewForm(huh.NewGroup(
						huh.NewInput().Title("File path").Value(&fileArg),
					)).Run()
				}
				if err != nil {
					return err
				}
			}

			var args2 []string
			if fileArg != "" {
				args2 = []string{fileArg}
			}
			buf, err := readHexInput(hexArg, args2)
			if err != nil {
				return err
			}
			m, err := message.Parse(buf)
			if err != nil {
				return err
			}
			walker, ok := m.(allIEer)
			if !ok {
				return fmt.Errorf("message type %T exposes no IE list to browse", m)
			}

			model := browseModel{
				styles: defaultBrowseStyles(),
				header: formatHeader(walker.Header()),
				lines:  flatten(walker.AllIEs(), 0),
			}
			p := tea.NewProgram(model)
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&hexArg, "hex", "", "inline hex string")
	cmd.Flags().StringVar(&fileArg, "file", "", "hex file path")
	return cmd
}
