package model

// ================ Config ================
// CatalogConfig is read with the CATALOG_ prefix (CATALOG_SOURCE, ...).
type CatalogConfig struct {
	Source   string `default:"file"`
	File     string `default:"data.json"`
	RedisKey string `split_words:"true" default:"catalog:raw"`
}

const (
	SourceFile  = "file"
	SourceRedis = "redis"
)
