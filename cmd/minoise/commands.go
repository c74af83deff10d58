package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"github.com/handiism/minoise/internal/dataset"
	ioutils "github.com/handiism/minoise/internal/io"
	"github.com/handiism/minoise/internal/logging"
	"github.com/handiism/minoise/internal/model"
	"github.com/handiism/minoise/internal/navigation"
	"github.com/handiism/minoise/internal/render"
	"github.com/handiism/minoise/internal/scene"
	"github.com/handiism/minoise/internal/tui"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Explore the dataset interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(settings)
	},
}

var centerCmd = &cobra.Command{
	Use:   "center [projection...]",
	Short: "Print the scene center and initial camera position",
	RunE: func(cmd *cobra.Command, args []string) error {
		projections, err := parseProjections(args)
		if err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()

		loader := dataset.NewLoader(settings.ToSource())
		t := newTable("Projection", "Center", "Camera")
		for _, p := range projections {
			ds, err := loader.Load(ctx, p)
			if err != nil {
				return err
			}
			center := scene.Center(ds)
			cam := scene.NewCamera(center, settings.CameraDistance)
			t.Row(p.String(), center.String(), cam.Eye().String())
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [projection]",
	Short: "List genres and artists with their track counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := settings.InitialProjection()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			if p, err = model.ParseProjection(args[0]); err != nil {
				return err
			}
		}
		ctx, cancel := signalContext()
		defer cancel()

		ds, err := dataset.NewLoader(settings.ToSource()).Load(ctx, p)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		stats := ds.Stats()
		fmt.Fprintf(out, "%s: %d genres, %d artists, %d tracks (%d positioned)\n\n",
			p.Label(), stats.Genres, stats.Artists, stats.Tracks, stats.PositionedTracks)

		t := newTable("Genre", "Artist", "Tracks", "Positioned", "Centroid")
		for _, g := range ds.Genres {
			t.Row(g.Name, "", strconv.Itoa(g.TrackCount()), "", g.Centroid.String())
			for _, a := range g.Artists {
				t.Row("", a.Name, strconv.Itoa(len(a.Tracks)), strconv.Itoa(len(a.PositionedTracks())), a.Centroid.String())
			}
		}
		fmt.Fprintln(out, t.Render())
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [projection...]",
	Short: "Load every projection and report failures",
	RunE: func(cmd *cobra.Command, args []string) error {
		projections, err := parseProjections(args)
		if err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()

		loader := dataset.NewLoader(settings.ToSource())
		catalog := dataset.NewCatalog(loader, settings.PreloadConcurrency)
		results := catalog.Preload(ctx, projections...)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Source: %s\n", loader.Source().Describe())
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(out, "✗ %s: %v\n", r.Projection, r.Err)
				continue
			}
			stats := r.Dataset.Stats()
			fmt.Fprintf(out, "✓ %s: %d genres, %d artists, %d tracks (%s)\n",
				r.Projection, stats.Genres, stats.Artists, stats.Tracks, r.Elapsed.Round(time.Millisecond))
			if skipped := stats.Tracks - stats.PositionedTracks; skipped > 0 {
				fmt.Fprintf(out, "! %s: %d track(s) without coordinates\n", r.Projection, skipped)
			}
		}

		if failed := dataset.Failed(results); len(failed) > 0 {
			return errors.Newf("%d of %d projection(s) failed to load", len(failed), len(results))
		}
		return nil
	},
}

// Snapshot flags
var (
	snapProjection string
	snapGenre      string
	snapArtist     string
	snapOut        string
	snapWidth      int
	snapHeight     int
	snapYaw        float64
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the scene to a PNG or JPEG image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := settings.InitialProjection()
		if err != nil {
			return err
		}
		if snapProjection != "" {
			if p, err = model.ParseProjection(snapProjection); err != nil {
				return err
			}
		}
		ctx, cancel := signalContext()
		defer cancel()

		ds, err := dataset.NewLoader(settings.ToSource()).Load(ctx, p)
		if err != nil {
			return err
		}

		controller := navigation.NewController(p)
		controller.ApplyLoad(navigation.LoadResult{Request: controller.RequestLoad(p), Dataset: ds})
		if err := navigateTo(controller, ds, snapGenre, snapArtist); err != nil {
			return err
		}

		sc := newScene()
		sc.Retarget(controller.Center())
		sc.Camera.Orbit(float32(snapYaw), 0)
		sc.SetEntities(navigation.Entities(sc.Layout, ds, controller.State()))
		// Let the selected spheres grow to their active size.
		for range sc.FPS() {
			sc.Step(sc.FrameDuration())
		}

		opts := render.DefaultSnapshotOptions()
		opts.Width, opts.Height = snapWidth, snapHeight
		opts.Caption = fmt.Sprintf("%s · %s · %s", p.Label(), navigation.Breadcrumb(controller.State()), navigation.Summary(controller.State()))
		img, err := render.Snapshot(sc, opts)
		if err != nil {
			return err
		}

		path := snapOut
		if path == "" {
			path = ioutils.SnapshotName("png", p.String(), snapGenre, snapArtist)
		}
		format, err := ioutils.FormatForPath(path)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := ioutils.EncodeImage(&buf, img, format); err != nil {
			return err
		}
		if err := ioutils.WriteFile(ctx, path, buf.Bytes()); err != nil {
			return err
		}

		abs, _ := filepath.Abs(path)
		logging.Infow("Snapshot written", "path", abs, "bytes", buf.Len())
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	flags := snapshotCmd.Flags()
	flags.StringVarP(&snapProjection, "projection", "p", "", "Projection to render (pca or umap)")
	flags.StringVarP(&snapGenre, "genre", "g", "", "Genre to select")
	flags.StringVarP(&snapArtist, "artist", "a", "", "Artist to select within the genre")
	flags.StringVarP(&snapOut, "out", "o", "", "Output file (.png, .jpg)")
	flags.IntVar(&snapWidth, "width", 1280, "Image width in pixels")
	flags.IntVar(&snapHeight, "height", 720, "Image height in pixels")
	flags.Float64Var(&snapYaw, "yaw", 0, "Camera yaw in radians")
}

// navigateTo drills the controller down to the named genre and artist.
func navigateTo(c *navigation.Controller, ds *model.Dataset, genre, artist string) error {
	if genre == "" {
		if artist != "" {
			return errors.WithHint(errors.New("--artist needs --genre"), "pass the artist's genre with --genre")
		}
		return nil
	}
	g, ok := ds.Genre(genre)
	if !ok {
		return errors.WithHintf(errors.Newf("unknown genre %q", genre), "run `minoise inspect %s` to list genres", ds.Projection)
	}
	c.SelectGenre(g)

	if artist == "" {
		return nil
	}
	a, ok := g.Artist(artist)
	if !ok {
		return errors.WithHintf(errors.Newf("unknown artist %q in %s", artist, genre), "run `minoise inspect %s` to list artists", ds.Projection)
	}
	c.SelectArtist(a)
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func newScene() *scene.Scene {
	layout := scene.NewLayout()
	layout.GenreScale = settings.GenreScale
	return scene.New(scene.Options{
		FPS:            settings.FPS,
		CameraDistance: settings.CameraDistance,
		Layout:         layout,
	})
}

func parseProjections(args []string) ([]model.Projection, error) {
	if len(args) == 0 {
		return model.Projections(), nil
	}
	out := make([]model.Projection, 0, len(args))
	for _, arg := range args {
		p, err := model.ParseProjection(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// signalContext returns a context cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
