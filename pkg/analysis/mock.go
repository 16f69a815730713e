package analysis

// DemoAddress is shown on the demo route whatever address the URL carries.
const DemoAddress = "8x5rM4GfSXwV1HvQnBPsKS5CpCWGnGTFHmPqaHk6ogQw"

// mockScore is the overall health score shown for every wallet until a real
// scoring backend exists.
const mockScore = 68

func mockMetrics() []Metric {
	return []Metric{
		{
			ID:          "security",
			Name:        "Security",
			Score:       75,
			Icon:        Icon{Glyph: "shield", Accent: "solana-purple"},
			Description: "Your wallet security is good, with some minor improvements possible.",
			Details:     "Your wallet shows good security practices. Consider enabling additional security features like multi-factor authentication and hardware wallet integration for enhanced protection.",
		},
		{
			ID:          "activity",
			Name:        "Activity",
			Score:       82,
			Icon:        Icon{Glyph: "activity", Accent: "solana-green"},
			Description: "Your transaction patterns are healthy and consistent.",
			Details:     "Your transaction patterns show regular, consistent activity without suspicious patterns. Continue maintaining good transaction hygiene by verifying recipients and transaction details before confirming.",
		},
		{
			ID:          "diversification",
			Name:        "Diversification",
			Score:       45,
			Icon:        Icon{Glyph: "wallet", Accent: "solana-blue"},
			Description: "Your asset diversification needs improvement.",
			Details:     "Your portfolio is heavily concentrated in a few assets, which increases risk. Consider diversifying your holdings across different asset types and tokens to reduce exposure to market volatility in any single asset.",
		},
		{
			ID:          "performance",
			Name:        "Performance",
			Score:       62,
			Icon:        Icon{Glyph: "bar-chart-3", Accent: "solana-purple"},
			Description: "Your wallet performance is above average.",
			Details:     "Your wallet has shown moderate performance compared to market benchmarks. There are opportunities to optimize your portfolio for better returns while maintaining your risk profile.",
		},
	}
}

func mockRecommendations() []Recommendation {
	return []Recommendation{
		{
			ID:          "rec1",
			Title:       "Diversify your token holdings",
			Description: "Your portfolio is heavily concentrated in a few tokens.",
			Impact:      ImpactHigh,
			Details:     "We recommend diversifying your holdings across at least 5-7 different tokens to reduce risk. Consider allocating no more than 20% of your portfolio to any single asset, and include a mix of established and emerging projects.",
		},
		{
			ID:          "rec2",
			Title:       "Enable multi-factor authentication",
			Description: "Add an extra layer of security to your wallet.",
			Impact:      ImpactMedium,
			Details:     "Multi-factor authentication adds an additional security layer beyond your password. This can be a hardware key, authenticator app, or biometric verification. This significantly reduces the risk of unauthorized access even if your password is compromised.",
		},
		{
			ID:          "rec3",
			Title:       "Review inactive tokens",
			Description: "You have several tokens with no recent activity.",
			Impact:      ImpactLow,
			Details:     "We've identified 3 tokens in your wallet that haven't had any activity in over 6 months. Consider reviewing these holdings to determine if they still align with your investment strategy or if they should be exchanged for more active assets.",
		},
	}
}

// Build assembles the static analysis for address. Content does not depend
// on the address.
func Build(address string) WalletAnalysis {
	return WalletAnalysis{
		Address:         address,
		Score:           mockScore,
		Metrics:         mockMetrics(),
		Recommendations: mockRecommendations(),
	}
}
