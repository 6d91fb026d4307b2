package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SensitivityX   float64 `json:"sensitivityX"`
	SensitivityY   float64 `json:"sensitivityY"`
	CameraDistance float64 `json:"cameraDistance"`
	DebugOverlay   bool    `json:"debugOverlay"`
	Fullscreen     bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.Key)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}
	return DecodeSettings(data)
}

// DecodeSettings parses stored settings.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.Key, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CaptureSettings reads the persisted values back from the running world.
func CaptureSettings(w donburi.World, fullscreen bool) *SavedSettings {
	s := &SavedSettings{
		SensitivityX:   cfg.Camera.SensitivityX,
		SensitivityY:   cfg.Camera.SensitivityY,
		CameraDistance: cfg.Camera.Distance,
		DebugOverlay:   cfg.Debug.Overlay,
		Fullscreen:     fullscreen,
	}
	if e, ok := tags.Camera.First(w); ok {
		rig := components.Camera.Get(e).Rig
		s.SensitivityX = rig.Config.SensX
		s.SensitivityY = rig.Config.SensY
		s.CameraDistance = rig.Distance()
	}
	return s
}

// ApplySavedSettings applies loaded settings to the global config and to
// any camera rig already in the world.
func ApplySavedSettings(w donburi.World, saved *SavedSettings) {
	if saved == nil {
		return
	}
	lo, hi := cfg.Settings.MinSensitivity, cfg.Settings.MaxSensitivity
	if saved.SensitivityX > 0 {
		cfg.Camera.SensitivityX = gamemath.Clamp(saved.SensitivityX, lo, hi)
	}
	if saved.SensitivityY > 0 {
		cfg.Camera.SensitivityY = gamemath.Clamp(saved.SensitivityY, lo, hi)
	}
	if saved.CameraDistance > 0 {
		cfg.Camera.Distance = gamemath.Clamp(saved.CameraDistance, cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
	}
	cfg.Debug.Overlay = saved.DebugOverlay

	if w == nil {
		return
	}
	tags.Camera.Each(w, func(e *donburi.Entry) {
		rig := components.Camera.Get(e).Rig
		rig.Config.SensX = cfg.Camera.SensitivityX
		rig.Config.SensY = cfg.Camera.SensitivityY
		rig.SetDistance(cfg.Camera.Distance)
	})
}
