package stream

// Config holds the streamer settings loaded from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Strip struct {
		NumPixels  int    `yaml:"numPixels"`
		FrameMs    int    `yaml:"frameMs"`
		Background string `yaml:"background"`
	} `yaml:"strip"`
	Pulses struct {
		Chance   int32   `yaml:"chance"`
		Length   float64 `yaml:"length"`
		Duration float64 `yaml:"duration"`
	} `yaml:"pulses"`
}

// ApplyDefaults fills in anything the YAML left unset.
func (c *Config) ApplyDefaults() {
	if c.Strip.NumPixels == 0 {
		c.Strip.NumPixels = 500
	}
	if c.Strip.FrameMs == 0 {
		c.Strip.FrameMs = 33
	}
	if c.Strip.Background == "" {
		c.Strip.Background = "#100505"
	}
	if c.Pulses.Chance == 0 {
		c.Pulses.Chance = 30
	}
	if c.Pulses.Length == 0 {
		c.Pulses.Length = 10
	}
	if c.Pulses.Duration == 0 {
		c.Pulses.Duration = 6
	}
}
