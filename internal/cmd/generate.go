package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonleap/internal/world"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one layout and print its summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd)
		},
	}
	cmd.Flags().Int64("seed", 0, "random seed (0 picks one from the clock)")
	_ = a.v.BindPFlag("generation.seed", cmd.Flags().Lookup("seed"))
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command) error {
	presetID := a.cfg.Generation.Preset
	p, err := a.params(presetID)
	if err != nil {
		return err
	}

	seed := a.cfg.Generation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	layout, err := world.GenerateSeeded(cmd.Context(), p, seed)
	if err != nil {
		return err
	}

	a.logger.Debug("layout generated",
		"seed", seed,
		"preset", presetID,
		"layout_id", layout.ID().String(),
	)
	if isolated := layout.Isolated(); len(isolated) > 0 {
		a.logger.Warn("layout has unreachable rooms", "seed", seed, "isolated", isolated)
	}

	return writeSummary(cmd, layout, seed, presetID)
}

func writeSummary(cmd *cobra.Command, layout *world.Layout, seed int64, presetID string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	isolated := "none"
	if ids := layout.Isolated(); len(ids) > 0 {
		isolated = fmt.Sprint(ids)
	}
	exit := layout.Exit()

	fmt.Fprintf(w, "layout\t%s\n", layout.ID())
	fmt.Fprintf(w, "seed\t%d\n", seed)
	fmt.Fprintf(w, "preset\t%s\n", presetID)
	fmt.Fprintf(w, "bounds\t%dx%d\n", layout.Width(), layout.Height())
	fmt.Fprintf(w, "rooms\t%d (fallback: %t)\n", len(layout.Rooms()), layout.UsedFallback())
	fmt.Fprintf(w, "edges\t%d\n", len(layout.Edges()))
	fmt.Fprintf(w, "corridors\t%d\n", len(layout.Corridors()))
	fmt.Fprintf(w, "walls\t%d\n", len(layout.Walls()))
	fmt.Fprintf(w, "exit\t%d,%d %dx%d\n", exit.X, exit.Y, exit.W, exit.H)
	fmt.Fprintf(w, "isolated\t%s\n", isolated)
	fmt.Fprintf(w, "overlaps\t%d\n", layout.ResidualOverlaps())
	fmt.Fprintf(w, "fingerprint\t%016x\n", layout.Fingerprint())
	return w.Flush()
}
