package app

// AnalysisVersion identifies the mock analysis algorithm revision reported
// in every result.
const AnalysisVersion = "1.0.0"

type (
	// AnalysisMetadata carries facts derived from the stored file itself,
	// never from the random draw.
	AnalysisMetadata struct {
		// The normalized extension of the analyzed file (e.g. ".jpg").
		FileExtension string `json:"file_extension"`

		// The size of the analyzed file in bytes.
		FileSizeBytes int64 `json:"file_size_bytes"`

		// The analysis algorithm revision.
		AnalysisVersion string `json:"analysis_version"`
	}

	// AnalysisResult is the base outcome of analyzing one uploaded image.
	AnalysisResult struct {
		ImageID    string           `json:"image_id"`
		SkinType   string           `json:"skin_type"`
		Issues     []string         `json:"issues"`
		Confidence float64          `json:"confidence"`
		Metadata   AnalysisMetadata `json:"metadata"`
	}

	// DetailedMetrics extends a result with bounded per-aspect scores and
	// advisory recommendations.
	DetailedMetrics struct {
		HydrationLevel  float64  `json:"hydration_level"`
		OilIndex        float64  `json:"oil_index"`
		ElasticityScore float64  `json:"elasticity_score"`
		TextureScore    float64  `json:"texture_score"`
		Recommendations []string `json:"recommendations"`
	}

	// DetailedAnalysisResult is an AnalysisResult plus detailed metrics.
	DetailedAnalysisResult struct {
		AnalysisResult
		DetailedMetrics DetailedMetrics `json:"detailed_metrics"`
	}
)
