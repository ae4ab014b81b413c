package config

import "github.com/abhisek/lexiz/internal/llm"

// Resolve builds the LLM configuration. Explicit settings win; without a
// provider the standard *_API_KEY variables are checked. ok is false when
// no provider could be determined.
func (c LLMConfig) Resolve() (cfg llm.Config, ok bool) {
	cfg = llm.DefaultConfig()
	if c.Provider == "" {
		discovered, found := llm.DiscoverConfig()
		if !found {
			return llm.Config{}, false
		}
		cfg = discovered
	} else {
		cfg.Provider = c.Provider
	}

	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	override(&cfg.Anthropic.APIKey, c.Anthropic.APIKey)
	override(&cfg.Anthropic.Model, c.Anthropic.Model)
	override(&cfg.OpenAI.APIKey, c.OpenAI.APIKey)
	override(&cfg.OpenAI.Model, c.OpenAI.Model)
	override(&cfg.OpenAI.BaseURL, c.OpenAI.BaseURL)
	override(&cfg.Gemini.APIKey, c.Gemini.APIKey)
	override(&cfg.Gemini.Model, c.Gemini.Model)
	override(&cfg.OpenRouter.APIKey, c.OpenRouter.APIKey)
	override(&cfg.OpenRouter.Model, c.OpenRouter.Model)
	override(&cfg.OpenRouter.BaseURL, c.OpenRouter.BaseURL)
	return cfg, true
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
