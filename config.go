package touchkit

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// --- Defaults ---

const (
	defaultSwipeThreshold       = 50.0 // logical pixels
	defaultFeedbackDuration     = 1000 * time.Millisecond
	defaultMobileBreakpoint     = 768
	defaultSmallPhoneBreakpoint = 480
)

// Messages holds the confirmation text shown after a swipe.
type Messages struct {
	Deleted string `yaml:"deleted"`
	Copied  string `yaml:"copied"`
}

// Config tunes the recognizer and viewport classification. The zero value is
// not usable; start from DefaultConfig or load a file with LoadConfig.
type Config struct {
	SwipeThreshold       float64       `yaml:"swipe_threshold"`
	FeedbackDuration     time.Duration `yaml:"feedback_duration"`
	MobileBreakpoint     int           `yaml:"mobile_breakpoint"`
	SmallPhoneBreakpoint int           `yaml:"small_phone_breakpoint"`
	// MultiPointer lets every touch contact run its own session. When false,
	// only the first pointer down owns a session and later ones are ignored
	// until it lifts.
	MultiPointer bool     `yaml:"multi_pointer"`
	Messages     Messages `yaml:"messages"`
}

// DefaultConfig returns the stock tuning: 50px threshold, 1s feedback,
// 768/480 breakpoints, single pointer.
func DefaultConfig() Config {
	return Config{
		SwipeThreshold:       defaultSwipeThreshold,
		FeedbackDuration:     defaultFeedbackDuration,
		MobileBreakpoint:     defaultMobileBreakpoint,
		SmallPhoneBreakpoint: defaultSmallPhoneBreakpoint,
		Messages: Messages{
			Deleted: "Line Deleted",
			Copied:  "Text Copied",
		},
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted keys keep
// their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("touchkit: failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("touchkit: config validation: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("touchkit: read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func (c *Config) validate() error {
	if !(c.SwipeThreshold > 0) || math.IsInf(c.SwipeThreshold, 0) {
		return fmt.Errorf("swipe_threshold must be a positive finite number, got %v", c.SwipeThreshold)
	}
	if c.FeedbackDuration <= 0 {
		return fmt.Errorf("feedback_duration must be positive, got %v", c.FeedbackDuration)
	}
	if c.SmallPhoneBreakpoint <= 0 || c.MobileBreakpoint <= 0 {
		return fmt.Errorf("breakpoints must be positive, got %d/%d", c.MobileBreakpoint, c.SmallPhoneBreakpoint)
	}
	if c.SmallPhoneBreakpoint >= c.MobileBreakpoint {
		return fmt.Errorf("small_phone_breakpoint (%d) must be below mobile_breakpoint (%d)",
			c.SmallPhoneBreakpoint, c.MobileBreakpoint)
	}
	return nil
}
