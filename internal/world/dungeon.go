package world

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomforge/internal/config"
	"github.com/samdwyer/roomforge/internal/rng"
	"github.com/samdwyer/roomforge/internal/telemetry"
)

// Dungeon is a generated map together with every intermediate stage.
type Dungeon struct {
	Options    config.Options
	Rooms      []Room
	Blank      *Grid
	Rasterized *Grid
	Final      *Grid
	Corridors  []Corridor

	// PlacementFailures counts rejected room candidates.
	PlacementFailures int
	// Exhausted is true when placement stopped on the failure cap.
	Exhausted bool
}

// Width returns the map width.
func (d *Dungeon) Width() int {
	return d.Final.Width()
}

// Height returns the map height.
func (d *Dungeon) Height() int {
	return d.Final.Height()
}

// StartRoom returns the start room, or false if no room was placed.
func (d *Dungeon) StartRoom() (Room, bool) {
	if len(d.Rooms) == 0 {
		return Room{}, false
	}
	return d.Rooms[0], true
}

// Generate validates opts and runs placement, rasterization and corridor
// connection. A nil pf uses AstarPathfinder.
func Generate(ctx context.Context, opts config.Options, pf Pathfinder) (*Dungeon, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if pf == nil {
		pf = AstarPathfinder{}
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	// The sequencer lives only for placement; later stages draw nothing.
	_, placeSpan := tracer.Start(ctx, "rooms.place")
	placement := PlaceRooms(rng.New(opts.Seed), opts)
	placeSpan.SetAttributes(
		attribute.Int("rooms.placed", len(placement.Rooms)),
		attribute.Int("rooms.failures", placement.Failures),
		attribute.Bool("rooms.exhausted", placement.Exhausted),
		attribute.Int("rng.draws", placement.Draws),
	)
	placeSpan.End()

	blank := NewGrid(opts.Height, opts.Width)

	_, rasterSpan := tracer.Start(ctx, "rooms.rasterize")
	rasterized := Rasterize(blank, placement.Rooms)
	rasterSpan.SetAttributes(attribute.Int("grid.open_cells", openCells(rasterized)))
	rasterSpan.End()

	_, connectSpan := tracer.Start(ctx, "corridors.connect")
	final, corridors := Connect(rasterized, placement.Rooms, pf)
	drawn := 0
	for _, c := range corridors {
		if c.Drawn() {
			drawn++
		}
	}
	connectSpan.SetAttributes(
		attribute.Int("corridors.requested", len(corridors)),
		attribute.Int("corridors.drawn", drawn),
		attribute.Int("grid.open_cells", openCells(final)),
	)
	connectSpan.End()

	span.SetAttributes(
		attribute.String("generation.run_id", uuid.NewString()),
		attribute.String("dungeon.seed", opts.Seed),
		attribute.Int("dungeon.width", opts.Width),
		attribute.Int("dungeon.height", opts.Height),
		attribute.Bool("dungeon.allow_overlap", opts.AllowOverlap),
		attribute.Int("dungeon.room_count", len(placement.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Dungeon{
		Options:           opts,
		Rooms:             placement.Rooms,
		Blank:             blank,
		Rasterized:        rasterized,
		Final:             final,
		Corridors:         corridors,
		PlacementFailures: placement.Failures,
		Exhausted:         placement.Exhausted,
	}, nil
}

// openCells counts cells that are not buildable.
func openCells(g *Grid) int {
	return g.Width()*g.Height() - g.Count(CellBuildable)
}
