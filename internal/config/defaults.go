package config

const (
	defaultDataDir          = "~/.local/share/tickermatch"
	defaultLogDir           = "~/.local/share/tickermatch/logs"
	defaultHighThreshold    = 0.85
	defaultLowThreshold     = 0.65
	defaultMinTokenLength   = 2
	defaultStrategy         = StrategyOptimal
	defaultEmbeddingBaseURL = "http://127.0.0.1:8080/v1/embeddings"
	defaultEmbeddingModel   = "all-MiniLM-L6-v2"
	defaultEmbeddingTimeout = 60
	defaultEmbeddingBatch   = 64
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// defaultCommonTokens lists legal suffixes and industry boilerplate ignored
// during blocking. Case-insensitive.
var defaultCommonTokens = []string{
	"inc", "corp", "corporation", "ltd", "limited", "llc", "plc",
	"ag", "sa", "nv", "bv", "gmbh", "co", "company", "companies",
	"pharmaceutical", "pharmaceuticals", "pharma", "biotech",
	"therapeutics", "biosciences", "laboratories", "lab", "labs",
	"healthcare", "health", "medical", "sciences", "science",
	"international", "global", "group", "holdings", "the", "and",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	tokens := make([]string, len(defaultCommonTokens))
	copy(tokens, defaultCommonTokens)

	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Matching: Matching{
			HighThreshold:          defaultHighThreshold,
			LowThreshold:           defaultLowThreshold,
			MinTokenLength:         defaultMinTokenLength,
			CommonTokens:           tokens,
			AssignmentStrategy:     defaultStrategy,
			RejectBeforeAssignment: true,
		},
		Embedding: Embedding{
			BaseURL:        defaultEmbeddingBaseURL,
			Model:          defaultEmbeddingModel,
			TimeoutSeconds: defaultEmbeddingTimeout,
			BatchSize:      defaultEmbeddingBatch,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
