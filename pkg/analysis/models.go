package analysis

// ---- Core Models ----

type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Icon is a glyph reference plus the accent it is drawn in.
type Icon struct {
	Glyph  string `json:"glyph"`  // "shield","activity","wallet","bar-chart-3"
	Accent string `json:"accent"` // "solana-purple","solana-green","solana-blue"
}

type Metric struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Score       int    `json:"score"` // 0-100, display only
	Icon        Icon   `json:"icon"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
	Details     string `json:"details"`
}

// WalletAnalysis is rebuilt for every render and never stored.
type WalletAnalysis struct {
	Address         string           `json:"address"`
	Score           int              `json:"score"`
	Metrics         []Metric         `json:"metrics"`
	Recommendations []Recommendation `json:"recommendations"`
}
