package analysis

import "fmt"

// gaugeArc is the circumference of the gauge ring (r=45) in SVG units.
const gaugeArc = 282.74

type Gauge struct {
	Score     int    `json:"score"`
	Clamped   int    `json:"-"`
	Tier      string `json:"tier"`
	Accent    string `json:"accent"`
	DashArray string `json:"-"`
}

func NewGauge(score int) Gauge {
	c := clamp(score, 0, 100)
	filled := gaugeArc * float64(c) / 100
	return Gauge{
		Score:     score,
		Clamped:   c,
		Tier:      ScoreTier(c),
		Accent:    ScoreAccent(c),
		DashArray: fmt.Sprintf("%.2f %.2f", filled, gaugeArc),
	}
}

func ScoreTier(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Attention"
	}
}

func ScoreAccent(score int) string {
	switch {
	case score >= 80:
		return "solana-green"
	case score >= 60:
		return "solana-purple"
	case score >= 40:
		return "warn"
	default:
		return "danger"
	}
}

// ImpactClass maps an impact tier to its badge CSS class.
func ImpactClass(i Impact) string {
	switch i {
	case ImpactHigh:
		return "sc-h"
	case ImpactMedium:
		return "sc-m"
	default:
		return "sc-l"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
