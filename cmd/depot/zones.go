package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/depot/internal/catalog"
	"github.com/five82/depot/internal/config"
	"github.com/five82/depot/internal/listview"
	"github.com/five82/depot/internal/zone"
)

var errUnknownSortField = errors.New("unknown sort field")

type zonesOptions struct {
	sort   string
	desc   bool
	search string
}

func newZonesCmd(root *rootOptions) *cobra.Command {
	opts := &zonesOptions{}

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Print the storage zone list",
		Long: `Prints the zone catalog as a table, sorted and filtered the same way
as the zones screen of the dashboard.

Sort fields: name, externalCode, classification, weightCapacity, saturation.`,
		Example: `  depot zones --sort saturation --desc
  depot zones --search cold --catalog ./zones.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			path := cfg.CatalogPath
			if p := strings.TrimSpace(root.catalogPath); p != "" {
				path = p
			}

			cat, err := catalog.Load(path)
			if err != nil {
				return err
			}
			for _, w := range cat.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", w)
			}

			ctrl := listview.NewController(zone.Schema(), cfg.Locale)
			if err := applyZoneSort(ctrl, opts.sort, opts.desc); err != nil {
				return err
			}
			ctrl.SetSearch(opts.search)

			return printZones(cmd.OutOrStdout(), ctrl.Visible(cat.Zones))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.sort, "sort", zone.FieldName, "sort field")
	flags.BoolVar(&opts.desc, "desc", false, "sort in descending order")
	flags.StringVar(&opts.search, "search", "", "only show zones whose name or code contains this text")
	return cmd
}

// applyZoneSort puts ctrl into the requested order. SetSort toggles on a
// repeated field, so descending order is reached with a second call.
func applyZoneSort(ctrl *listview.Controller[zone.StorageZone], field string, desc bool) error {
	if _, ok := ctrl.Schema().Field(field); !ok {
		keys := make([]string, 0, len(ctrl.Schema().Fields()))
		for _, f := range ctrl.Schema().Fields() {
			keys = append(keys, f.Key)
		}
		return fmt.Errorf("%w %q (want one of %s)", errUnknownSortField, field, strings.Join(keys, ", "))
	}
	if ctrl.State().SortField != field {
		ctrl.SetSort(field)
	}
	if desc && ctrl.State().SortDirection != listview.Descending {
		ctrl.SetSort(field)
	}
	return nil
}

func printZones(w io.Writer, zones []zone.StorageZone) error {
	if len(zones) == 0 {
		_, err := fmt.Fprintln(w, "no zones match")
		return err
	}

	rows := make([][]string, 0, len(zones))
	for _, z := range zones {
		rows = append(rows, []string{
			z.Name,
			z.ExternalCode,
			z.Classification.String(),
			formatCapacity(z.WeightCapacity),
			formatSaturation(z.Saturation),
		})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Name", "Code", "Type", "Capacity", "Saturation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			if col >= 3 {
				return cell.Align(lipgloss.Right)
			}
			return cell
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func formatCapacity(kg float64) string {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return "n/a"
	}
	return humanize.Comma(int64(math.Round(kg))) + " kg"
}

func formatSaturation(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%% %s", v, zone.BandFor(v))
}
