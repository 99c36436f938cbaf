package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/pixelcam/config"
	"github.com/quasilyte/gdata"
)

// SavedTuning represents the camera tuning data stored on disk
type SavedTuning struct {
	Smoothing   bool    `json:"smoothing"`
	FollowSpeed float64 `json:"followSpeed"`
	PixelSnap   bool    `json:"pixelSnap"`
	PixelSize   float64 `json:"pixelSize"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pixelcam",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads saved camera tuning from disk. Returns nil with no
// error when nothing has been saved yet.
func LoadTuning() (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("tuning")
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var tuning SavedTuning
	if err := json.Unmarshal(data, &tuning); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}

	return &tuning, nil
}

// SaveTuning saves camera tuning to disk
func SaveTuning(t *SavedTuning) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("tuning", data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

// SaveCurrentTuning snapshots the live camera config to disk.
func SaveCurrentTuning() {
	_ = SaveTuning(&SavedTuning{
		Smoothing:   cfg.Camera.Smoothing,
		FollowSpeed: cfg.Camera.FollowSpeed,
		PixelSnap:   cfg.Camera.PixelSnap,
		PixelSize:   cfg.Camera.PixelSize,
	})
}

// ApplySavedTuning folds saved tuning into the camera config through the
// validating setter. Used during startup before the first scene. A saved
// file that no longer validates is ignored rather than applied.
func ApplySavedTuning(saved *SavedTuning) {
	if saved == nil {
		return
	}

	c := cfg.Camera
	c.Smoothing = saved.Smoothing
	c.FollowSpeed = saved.FollowSpeed
	c.PixelSnap = saved.PixelSnap
	c.PixelSize = saved.PixelSize
	if err := cfg.SetCamera(c); err != nil {
		log.Printf("Warning: Ignoring saved tuning: %v", err)
	}
}
