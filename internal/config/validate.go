package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.Validate(); err != nil {
		return err
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}

	if err := c.WordCloud.validate(); err != nil {
		return fmt.Errorf("wordcloud: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 when limiting is enabled (got %d)", c.RateLimit.Burst)
	}

	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("cors.max_age must be >= 0 (got %d)", c.CORS.MaxAge)
	}

	return nil
}

func (w *WordCloudConfig) validate() error {
	if w.MaxTextBytes <= 0 {
		return fmt.Errorf("max_text_bytes must be > 0 (got %d)", w.MaxTextBytes)
	}
	if w.MaxTop <= 0 {
		return fmt.Errorf("max_top must be > 0 (got %d)", w.MaxTop)
	}
	if w.DefaultTop <= 0 || w.DefaultTop > w.MaxTop {
		return fmt.Errorf("default_top must be in 1..%d (got %d)", w.MaxTop, w.DefaultTop)
	}
	if w.MaxBatchDocuments <= 0 {
		return fmt.Errorf("max_batch_documents must be > 0 (got %d)", w.MaxBatchDocuments)
	}
	if w.BatchWorkers <= 0 {
		return fmt.Errorf("batch_workers must be > 0 (got %d)", w.BatchWorkers)
	}
	return nil
}

// Validate checks the auth section on its own, for tools that only sign tokens.
func (a AuthConfig) Validate() error {
	if len(a.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", a.AccessTokenTTL)
	}
	return nil
}
