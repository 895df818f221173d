package envelope

// ScoreToTier converts a confidence score (0.0-1.0) to a confidence tier.
//
// Tier mapping:
//   - 0.95+ -> verified (exact catalog data)
//   - 0.75-0.94 -> calibrated (platform-specific measurements)
//   - 0.50-0.74 -> estimated (percent-of-stock model)
//   - <0.50 -> approximate (generic flat tables)
func ScoreToTier(score float64) ConfidenceTier {
	switch {
	case score >= 0.95:
		return TierVerified
	case score >= 0.75:
		return TierCalibrated
	case score >= 0.50:
		return TierEstimated
	default:
		return TierApproximate
	}
}

// TierFromLabel maps a calculator confidence label onto an envelope tier.
// Unknown labels degrade to approximate rather than failing.
func TierFromLabel(label string) ConfidenceTier {
	switch label {
	case "verified":
		return TierVerified
	case "calibrated":
		return TierCalibrated
	case "estimated":
		return TierEstimated
	default:
		return TierApproximate
	}
}
