package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/javajack/gridmap"
)

func main() {
	var (
		layoutPath string
		logLevel   string
	)

	app := &cli.Command{
		Name:      "gridmap",
		Usage:     "Inspect and export physical/visual grid index mappings",
		UsageText: "gridmap [global options] command [command options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "layout",
				Aliases:     []string{"l"},
				Usage:       "path to YAML layout file",
				Sources:     cli.EnvVars("GRIDMAP_LAYOUT"),
				Required:    true,
				Destination: &layoutPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("GRIDMAP_LOG_LEVEL"),
				Value:       "info",
				Destination: &logLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return ctx, fmt.Errorf("parse log level %q: %w", logLevel, err)
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().
				Timestamp().
				Logger()
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "inspect",
				Usage: "Print the physical/visual mapping tables for a layout",
				Action: func(ctx context.Context, c *cli.Command) error {
					t, err := loadTranslator(layoutPath)
					if err != nil {
						return err
					}
					printAxis("rows", t.Rows())
					printAxis("columns", t.Cols())
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "Write the visual projection of a layout to an xlsx file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "output xlsx path",
						Value:   "grid.xlsx",
					},
					&cli.StringFlag{
						Name:  "sheet",
						Usage: "output sheet name",
						Value: "Sheet1",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					t, err := loadTranslator(layoutPath)
					if err != nil {
						return err
					}
					outPath := c.String("out")
					out, err := os.Create(outPath)
					if err != nil {
						return fmt.Errorf("create output file %q: %w", outPath, err)
					}
					defer out.Close()

					// Placeholder values naming the physical coordinate, so
					// the effect of skips and reordering is visible in the
					// output.
					values := func(physRow, physCol int) any {
						return fmt.Sprintf("r%dc%d", physRow, physCol)
					}
					if err := gridmap.WriteView(t, c.String("sheet"), values, out); err != nil {
						os.Remove(outPath)
						return err
					}
					log.Info().
						Str("path", outPath).
						Int("rows", t.Rows().VisibleLen()).
						Int("columns", t.Cols().VisibleLen()).
						Msg("visual projection written")
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func loadTranslator(path string) (*gridmap.RecordTranslator, error) {
	layout, err := gridmap.LoadLayoutFile(path)
	if err != nil {
		return nil, err
	}
	return layout.Translator(nil)
}

func printAxis(name string, m *gridmap.IndexMapper) {
	fmt.Printf("%s: %d physical, %d visible\n", name, m.Len(), m.VisibleLen())
	fmt.Println("  physical -> visual")
	for physical := 0; physical < m.Len(); physical++ {
		vis := m.GetVisualIndex(physical)
		if vis == gridmap.Unmapped {
			fmt.Printf("  %8d    (skipped)\n", physical)
			continue
		}
		fmt.Printf("  %8d    %d\n", physical, vis)
	}
}
