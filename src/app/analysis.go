package app

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"
)

var (
	skinTypes = []string{"Oily", "Dry", "Combination", "Normal", "Sensitive"}

	possibleIssues = []string{
		"Hyperpigmentation",
		"Acne",
		"Fine lines",
		"Dark circles",
		"Uneven skin tone",
		"Enlarged pores",
		"Dehydration",
		"Sun damage",
		"Redness",
		"Texture irregularities",
	}

	skinTypeRecommendations = map[string]string{
		"Oily":        "Use oil-free moisturizers and gentle cleansers",
		"Dry":         "Apply rich moisturizers and hydrating serums",
		"Combination": "Use zone-specific products for different areas",
		"Normal":      "Maintain current routine with SPF protection",
		"Sensitive":   "Choose fragrance-free, hypoallergenic products",
	}

	issueRecommendations = map[string]string{
		"Hyperpigmentation": "Consider vitamin C serums and chemical exfoliants",
		"Acne":              "Try salicylic acid or benzoyl peroxide treatments",
		"Fine lines":        "Use retinol products and stay hydrated",
		"Dark circles":      "Get adequate sleep and try caffeine eye creams",
	}
)

// AnalysisService produces mock analysis results. All output is derived
// from a generator seeded by (image id, file size), so the same stored
// image always yields the same result across calls and restarts. The
// service itself holds no state; every call builds its own generator, so
// concurrent requests cannot interfere with each other's draws.
type AnalysisService struct{}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// Analyze computes the base result for an image. Draw order is fixed:
// skin type, issue count (1..3), the issues themselves (distinct, sampler
// order kept), then confidence in [0.70, 0.98] rounded to 2 decimals.
func (s *AnalysisService) Analyze(imageID, extension string, sizeBytes int64) AnalysisResult {
	rng := rand.New(rand.NewSource(analysisSeed(imageID, sizeBytes)))

	skinType := skinTypes[rng.Intn(len(skinTypes))]

	numIssues := 1 + rng.Intn(3)
	issues := sampleIssues(rng, numIssues)

	confidence := round2(0.70 + rng.Float64()*(0.98-0.70))

	return AnalysisResult{
		ImageID:    imageID,
		SkinType:   skinType,
		Issues:     issues,
		Confidence: confidence,
		Metadata: AnalysisMetadata{
			FileExtension:   extension,
			FileSizeBytes:   sizeBytes,
			AnalysisVersion: AnalysisVersion,
		},
	}
}

// AnalyzeDetailed computes the base result plus detailed metrics. The
// metrics come from a second generator seeded one past the base seed, so
// they are just as reproducible without replaying the base draw sequence.
func (s *AnalysisService) AnalyzeDetailed(imageID, extension string, sizeBytes int64) DetailedAnalysisResult {
	base := s.Analyze(imageID, extension, sizeBytes)

	rng := rand.New(rand.NewSource(analysisSeed(imageID, sizeBytes) + 1))

	metrics := DetailedMetrics{
		HydrationLevel:  round1(30 + rng.Float64()*(90-30)),
		OilIndex:        round1(20 + rng.Float64()*(80-20)),
		ElasticityScore: round1(50 + rng.Float64()*(95-50)),
		TextureScore:    round1(40 + rng.Float64()*(90-40)),
		Recommendations: recommendations(base.SkinType, base.Issues),
	}

	return DetailedAnalysisResult{
		AnalysisResult:  base,
		DetailedMetrics: metrics,
	}
}

// analysisSeed derives the generator seed from the image identity and
// size with FNV-1a, so it is stable across processes.
func analysisSeed(imageID string, sizeBytes int64) int64 {
	h := fnv.New64a()
	h.Write([]byte(imageID))
	h.Write([]byte(strconv.FormatInt(sizeBytes, 10)))
	return int64(h.Sum64())
}

// sampleIssues picks n distinct labels without replacement, keeping the
// order the sampler produced them in.
func sampleIssues(rng *rand.Rand, n int) []string {
	perm := rng.Perm(len(possibleIssues))
	issues := make([]string, 0, n)
	for _, idx := range perm[:n] {
		issues = append(issues, possibleIssues[idx])
	}
	return issues
}

// recommendations maps the already-drawn skin type and issues to advisory
// sentences: one per skin type, plus entries for the first two issues that
// appear in the issue table.
func recommendations(skinType string, issues []string) []string {
	recs := make([]string, 0, 3)

	if rec, ok := skinTypeRecommendations[skinType]; ok {
		recs = append(recs, rec)
	} else {
		recs = append(recs, "Consult a dermatologist")
	}

	limit := len(issues)
	if limit > 2 {
		limit = 2
	}
	for _, issue := range issues[:limit] {
		if rec, ok := issueRecommendations[issue]; ok {
			recs = append(recs, rec)
		}
	}

	return recs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
