package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "./data/catalog.json"
	}
	if cfg.Store.IndexPath == "" {
		cfg.Store.IndexPath = "./data/embeddings.json"
	}
	if cfg.Store.VectorPath == "" {
		cfg.Store.VectorPath = "./data/embeddings.bin"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 256
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 1024
	}
	if cfg.Embedding.MaxAttempts == 0 {
		cfg.Embedding.MaxAttempts = 3
	}
	if cfg.Search.MinScore == 0 {
		cfg.Search.MinScore = 10
	}
	if cfg.Search.MinSemanticScore == 0 {
		cfg.Search.MinSemanticScore = 0.35
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = 8
	}
	if cfg.Search.ProfessionalMaxResults == 0 {
		cfg.Search.ProfessionalMaxResults = 15
	}
	if cfg.Search.ParallelThreshold == 0 {
		cfg.Search.ParallelThreshold = 256
	}
	cfg.Ranking.ApplyDefaults()
}
