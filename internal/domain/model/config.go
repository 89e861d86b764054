package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	CardType           = "custom:remi-card"
	DefaultHoursToShow = 24
)

// Editable fields, in the order the editor shows them.
const (
	FieldDeviceID             = "device_id"
	FieldDeviceName           = "device_name"
	FieldShowFaceSelector     = "show_face_selector"
	FieldShowControls         = "show_controls"
	FieldShowTemperatureGraph = "show_temperature_graph"
	FieldShowConnectivity     = "show_connectivity"
	FieldShowAlarmClocks      = "show_alarm_clocks"
	FieldHoursToShow          = "hours_to_show"
)

var (
	ErrUnknownField  = errors.New("unknown config field")
	ErrInvalidValue  = errors.New("invalid config value")
	ErrInvalidConfig = errors.New("invalid card config")
)

// CardConfig is the Lovelace configuration of one Rémi card. Optional
// fields are pointers so an absent value keeps its default.
type CardConfig struct {
	Type                 string   `json:"type"`
	DeviceID             string   `json:"device_id"`
	DeviceName           *string  `json:"device_name,omitempty"`
	Title                *string  `json:"title,omitempty"`
	ShowControls         *bool    `json:"show_controls,omitempty"`
	ShowFaceSelector     *bool    `json:"show_face_selector,omitempty"`
	ShowTemperatureGraph *bool    `json:"show_temperature_graph,omitempty"`
	ShowConnectivity     *bool    `json:"show_connectivity,omitempty"`
	ShowAlarmClocks      *bool    `json:"show_alarm_clocks,omitempty"`
	HoursToShow          *float64 `json:"hours_to_show,omitempty"`
}

// ConfigChanged is emitted once per edit with the full updated record.
type ConfigChanged struct {
	Config CardConfig `json:"config"`
}

const ConfigChangedEventType = "remi_card_config_changed"

func (c CardConfig) DeviceNameOrEmpty() string {
	if c.DeviceName == nil {
		return ""
	}
	return *c.DeviceName
}

func (c CardConfig) ShowControlsEnabled() bool         { return boolOrTrue(c.ShowControls) }
func (c CardConfig) ShowFaceSelectorEnabled() bool     { return boolOrTrue(c.ShowFaceSelector) }
func (c CardConfig) ShowTemperatureGraphEnabled() bool { return boolOrTrue(c.ShowTemperatureGraph) }
func (c CardConfig) ShowConnectivityEnabled() bool     { return boolOrTrue(c.ShowConnectivity) }
func (c CardConfig) ShowAlarmClocksEnabled() bool      { return boolOrTrue(c.ShowAlarmClocks) }

// HoursToShowOrDefault treats zero like an absent value.
func (c CardConfig) HoursToShowOrDefault() float64 {
	if c.HoursToShow == nil || *c.HoursToShow == 0 {
		return DefaultHoursToShow
	}
	return *c.HoursToShow
}

func boolOrTrue(b *bool) bool {
	return b == nil || *b
}

func (c CardConfig) Validate() error {
	if strings.TrimSpace(c.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DeviceID) == "" {
		return fmt.Errorf("%w: device_id is required", ErrInvalidConfig)
	}
	if c.HoursToShow != nil && *c.HoursToShow < 0 {
		return fmt.Errorf("%w: hours_to_show must not be negative", ErrInvalidConfig)
	}
	return nil
}

// WithField returns a copy of c where only field is replaced by value.
func (c CardConfig) WithField(field string, value interface{}) (CardConfig, error) {
	out := c
	switch field {
	case FieldDeviceID:
		s, err := asString(field, value)
		if err != nil {
			return c, err
		}
		out.DeviceID = s
	case FieldDeviceName:
		s, err := asString(field, value)
		if err != nil {
			return c, err
		}
		out.DeviceName = &s
	case FieldShowFaceSelector, FieldShowControls, FieldShowTemperatureGraph,
		FieldShowConnectivity, FieldShowAlarmClocks:
		b, ok := value.(bool)
		if !ok {
			return c, fmt.Errorf("%w: %s expects a boolean, got %T", ErrInvalidValue, field, value)
		}
		*out.toggle(field) = &b
	case FieldHoursToShow:
		n, err := asNumber(field, value)
		if err != nil {
			return c, err
		}
		out.HoursToShow = &n
	default:
		return c, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}

func (c *CardConfig) toggle(field string) **bool {
	switch field {
	case FieldShowFaceSelector:
		return &c.ShowFaceSelector
	case FieldShowControls:
		return &c.ShowControls
	case FieldShowTemperatureGraph:
		return &c.ShowTemperatureGraph
	case FieldShowConnectivity:
		return &c.ShowConnectivity
	default:
		return &c.ShowAlarmClocks
	}
}

func asString(field string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidValue, field, value)
	}
	return s, nil
}

// asNumber also accepts numeric strings, which is what dashboard text
// fields emit.
func asNumber(field string, value interface{}) (float64, error) {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidValue, field, v)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%w: %s expects a number, got %T", ErrInvalidValue, field, value)
	}
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %s must be a finite, non-negative number", ErrInvalidValue, field)
	}
	return n, nil
}
