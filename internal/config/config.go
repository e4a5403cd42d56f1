// Package config holds the options that drive map generation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Validation failures. Validate wraps these so callers can use errors.Is.
var (
	ErrInvalidDimensions   = errors.New("map dimensions must be positive")
	ErrInvalidRoomCount    = errors.New("max rooms must be at least 1")
	ErrInvalidRoomSize     = errors.New("room size range is invalid")
	ErrInvalidContentLimit = errors.New("per-room content limit is invalid")
	ErrMapTooSmall         = errors.New("map too small for the largest room and its margin")
	ErrEmptySeed           = errors.New("seed must not be empty")
)

// envPrefix is prepended to every option name read from the environment.
const envPrefix = "ROOMFORGE_"

// placementMargin is the distance kept between a room and the map border.
const placementMargin = 2

// Options configures a single generation run. All fields are required;
// Default supplies a complete set.
type Options struct {
	Height int // Map rows
	Width  int // Map columns

	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int

	MaxPassagesPerRoom  int
	MaxTrapsPerRoom     int
	MaxTreasuresPerRoom int
	MaxMobsPerRoom      int

	// AllowOverlap accepts rooms whose expanded bounds intersect existing ones.
	AllowOverlap bool

	// Seed for the deterministic sequence. Same seed and options, same map.
	Seed string
}

// Default returns the stock 40x80 configuration.
func Default() Options {
	return Options{
		Height:              40,
		Width:               80,
		MaxRooms:            40,
		MinRoomSize:         3,
		MaxRoomSize:         10,
		MaxPassagesPerRoom:  4,
		MaxTrapsPerRoom:     5,
		MaxTreasuresPerRoom: 3,
		MaxMobsPerRoom:      5,
		AllowOverlap:        false,
		Seed:                "gagonilson",
	}
}

// Validate reports every rule the options break.
func (o Options) Validate() error {
	var errs []error

	if o.Height <= 0 || o.Width <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, o.Height, o.Width))
	}
	if o.MaxRooms < 1 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidRoomCount, o.MaxRooms))
	}
	if o.MinRoomSize < 1 || o.MinRoomSize > o.MaxRoomSize {
		errs = append(errs, fmt.Errorf("%w: [%d,%d]", ErrInvalidRoomSize, o.MinRoomSize, o.MaxRoomSize))
	}
	if o.MaxPassagesPerRoom < 1 {
		errs = append(errs, fmt.Errorf("%w: passages %d, need at least 1", ErrInvalidContentLimit, o.MaxPassagesPerRoom))
	}
	if o.MaxMobsPerRoom < 1 {
		errs = append(errs, fmt.Errorf("%w: mobs %d, need at least 1", ErrInvalidContentLimit, o.MaxMobsPerRoom))
	}
	if o.MaxTrapsPerRoom < 0 {
		errs = append(errs, fmt.Errorf("%w: traps %d", ErrInvalidContentLimit, o.MaxTrapsPerRoom))
	}
	if o.MaxTreasuresPerRoom < 0 {
		errs = append(errs, fmt.Errorf("%w: treasures %d", ErrInvalidContentLimit, o.MaxTreasuresPerRoom))
	}
	if o.Height > 0 && o.Width > 0 && o.MaxRoomSize > 0 {
		// Origins are drawn from [margin, size - maxRoomSize - margin].
		if o.Width-o.MaxRoomSize-placementMargin < placementMargin ||
			o.Height-o.MaxRoomSize-placementMargin < placementMargin {
			errs = append(errs, fmt.Errorf("%w: %dx%d with max room size %d",
				ErrMapTooSmall, o.Height, o.Width, o.MaxRoomSize))
		}
	}
	if o.Seed == "" {
		errs = append(errs, ErrEmptySeed)
	}

	return errors.Join(errs...)
}

// FromEnv loads a .env file if present and overlays ROOMFORGE_* variables
// onto Default. A missing .env file is not an error.
func FromEnv(files ...string) (Options, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Options{}, fmt.Errorf("failed to load env file: %w", err)
	}

	opts := Default()
	ints := []struct {
		name string
		dst  *int
	}{
		{"HEIGHT", &opts.Height},
		{"WIDTH", &opts.Width},
		{"MAX_ROOMS", &opts.MaxRooms},
		{"MIN_ROOM_SIZE", &opts.MinRoomSize},
		{"MAX_ROOM_SIZE", &opts.MaxRoomSize},
		{"MAX_PASSAGES", &opts.MaxPassagesPerRoom},
		{"MAX_TRAPS", &opts.MaxTrapsPerRoom},
		{"MAX_TREASURES", &opts.MaxTreasuresPerRoom},
		{"MAX_MOBS", &opts.MaxMobsPerRoom},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(envPrefix + v.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Options{}, fmt.Errorf("invalid %s%s: %w", envPrefix, v.name, err)
		}
		*v.dst = n
	}

	if raw, ok := os.LookupEnv(envPrefix + "ALLOW_OVERLAP"); ok && raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Options{}, fmt.Errorf("invalid %sALLOW_OVERLAP: %w", envPrefix, err)
		}
		opts.AllowOverlap = b
	}
	if seed := os.Getenv(envPrefix + "SEED"); seed != "" {
		opts.Seed = seed
	}

	return opts, nil
}
