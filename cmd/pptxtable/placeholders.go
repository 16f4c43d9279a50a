// Placeholders command lists the placeholders of every slide.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	gopresentation "github.com/VantageDataChat/GoPPTX"
)

var (
	flagIncludeLayouts bool
	flagUnits          string
)

// placeholderInfo is the JSON form of one placeholder.
type placeholderInfo struct {
	Part   string `json:"part"`
	Slot   int    `json:"slot"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Idx    int    `json:"idx"`
	Orient string `json:"orient"`
	Size   string `json:"sz"`
	Shape  string `json:"shape"`
	X      int64  `json:"x"`
	Y      int64  `json:"y"`
	CX     int64  `json:"cx"`
	CY     int64  `json:"cy"`
	// Inherited is true when the geometry comes from the layout or master.
	Inherited bool `json:"inherited"`
	// Unresolved holds the reason no geometry could be found; the
	// coordinates are then zero.
	Unresolved string `json:"unresolved,omitempty"`
}

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders <file.pptx>",
	Short: "List slide placeholders and their resolved geometry",
	Long: `List every placeholder on every slide with its type, idx and geometry.

Placeholders without a transform of their own report the geometry they
inherit from the layout or master, marked as inherited. Geometry that
cannot be resolved is reported as such.

Example:
  pptxtable placeholders deck.pptx
  pptxtable placeholders --layouts --json deck.pptx`,
	Args: cobra.ExactArgs(1),
	RunE: runPlaceholders,
}

func init() {
	placeholdersCmd.Flags().BoolVar(&flagIncludeLayouts, "layouts", false, "also list slide layout placeholders")
	placeholdersCmd.Flags().StringVar(&flagUnits, "units", defaultUnits, "units for printed geometry: emu, in, cm, mm or pt")
}

func runPlaceholders(cmd *cobra.Command, args []string) error {
	units := flagUnits
	if !cmd.Flags().Changed("units") {
		units = cfg.GetString(cfgKeyUnits)
	}
	unit, err := gopresentation.ParseUnit(units)
	if err != nil {
		return fmt.Errorf("%w: --units: %v", errUsage, err)
	}

	pres, err := gopresentation.Open(args[0])
	if err != nil {
		return err
	}
	defer pres.Close()

	var infos []placeholderInfo
	for _, slide := range pres.GetAllSlides() {
		infos = append(infos, describePlaceholders(slide.GetPart().Name(), slide.GetPlaceholders())...)
	}
	if flagIncludeLayouts {
		for _, layout := range pres.GetSlideLayouts() {
			infos = append(infos, describePlaceholders(layout.GetPart().Name(), layout.GetPlaceholders())...)
		}
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal placeholders: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	part := ""
	for _, info := range infos {
		if info.Part != part {
			part = info.Part
			color.New(color.Bold).Fprintln(out, part)
		}
		typ := color.CyanString("%-8s", info.Type)
		if info.Type == string(gopresentation.PlaceholderTable) {
			typ = color.GreenString("%-8s", info.Type)
		}
		var geom string
		switch {
		case info.Unresolved != "":
			geom = color.YellowString("geometry unresolved: %s", info.Unresolved)
		case info.Inherited:
			geom = color.HiBlackString("%s (inherited)", formatGeometry(info, unit))
		default:
			geom = formatGeometry(info, unit)
		}
		fmt.Fprintf(out, "  [%d] idx=%-3d %s %-30q %s\n", info.Slot, info.Idx, typ, info.Name, geom)
	}
	return nil
}

func describePlaceholders(part string, phs []*gopresentation.PlaceholderShape) []placeholderInfo {
	infos := make([]placeholderInfo, 0, len(phs))
	for _, ph := range phs {
		info := placeholderInfo{
			Part:      part,
			Slot:      ph.Parent().Index(ph),
			ID:        ph.GetID(),
			Name:      ph.GetName(),
			Type:      string(ph.GetPlaceholderType()),
			Idx:       ph.GetPlaceholderIndex(),
			Orient:    string(ph.GetOrientation()),
			Size:      string(ph.GetPlaceholderSize()),
			Shape:     ph.GetType().String(),
			Inherited: !ph.HasGeometry(),
		}
		g, err := gopresentation.InheritedGeometry.PlaceholderGeometry(ph)
		if err != nil {
			info.Unresolved = err.Error()
		}
		info.X, info.Y, info.CX, info.CY = g.OffsetX, g.OffsetY, g.Width, g.Height
		infos = append(infos, info)
	}
	return infos
}

func formatGeometry(info placeholderInfo, unit gopresentation.Unit) string {
	return fmt.Sprintf("x=%s y=%s cx=%s cy=%s",
		gopresentation.FormatLength(info.X, unit), gopresentation.FormatLength(info.Y, unit),
		gopresentation.FormatLength(info.CX, unit), gopresentation.FormatLength(info.CY, unit))
}
