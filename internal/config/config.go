package config

import "fmt"

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Extractor   ExtractorConfig   `yaml:"extractor"`
	Analyzer    AnalyzerConfig    `yaml:"analyzer"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

// ExtractorConfig describes the external page-text extraction tool
// used for PDF decks. JSON decks are read directly and do not need it.
type ExtractorConfig struct {
	BinaryPath string   `yaml:"binary_path"`
	Args       []string `yaml:"args"`
}

// AnalyzerConfig tunes slide classification and section assembly.
// Zero values fall back to the analyzer's own defaults.
type AnalyzerConfig struct {
	SlideKeywordMax       int      `yaml:"slide_keyword_max"`
	SectionKeywordMax     int      `yaml:"section_keyword_max"`
	SectionKeywordMinFreq int      `yaml:"section_keyword_min_freq"`
	TopicCount            int      `yaml:"topic_count"`
	StopWords             []string `yaml:"stop_words"`
	SectionPatterns       []string `yaml:"section_patterns"`
	SectionVocabulary     []string `yaml:"section_vocabulary"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`

	// APIKeys come from the GEMINI_API_KEYS environment variable
	// (comma separated), never from the YAML file.
	APIKeys []string `yaml:"-"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
