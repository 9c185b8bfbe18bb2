package promotion

import (
	"fmt"
	"math/rand"
	"sync"
)

// Sampler is the random source behind the social-proof numbers
type Sampler interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// lockedSampler makes a *rand.Rand safe to share between requests
type lockedSampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSampler returns a goroutine-safe Sampler seeded with seed
func NewSampler(seed int64) Sampler {
	return &lockedSampler{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSampler) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// ViewerCounts are the "people watching" figures the product page rotates through
var ViewerCounts = []int{17, 23, 28, 31, 36, 42, 47, 53, 58, 64}

// Ranges used by the product page
const (
	MinSoldCount     = 4000
	MaxSoldCount     = 8000
	MinFeedbackCount = 1000
	MaxFeedbackCount = 1500
)

// RandomBetween returns a value in [min, max]
func RandomBetween(s Sampler, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("minimum value %d cannot be greater than the maximum value %d", min, max)
	}
	return min + s.Intn(max-min+1), nil
}

// PickViewerCount picks one entry of ViewerCounts
func PickViewerCount(s Sampler) int {
	return ViewerCounts[s.Intn(len(ViewerCounts))]
}

// SocialProof holds the sold, feedback and viewer counts shown on a product page
type SocialProof struct {
	SoldCount     int `json:"soldCount"`
	FeedbackCount int `json:"feedbackCount"`
	Viewers       int `json:"viewers"`
}

// NewSocialProof draws a fresh set of counts from s
func NewSocialProof(s Sampler) SocialProof {
	sold, _ := RandomBetween(s, MinSoldCount, MaxSoldCount)
	feedback, _ := RandomBetween(s, MinFeedbackCount, MaxFeedbackCount)
	return SocialProof{
		SoldCount:     sold,
		FeedbackCount: feedback,
		Viewers:       PickViewerCount(s),
	}
}

// RandomSoldCount draws the sold count shown on product cards
func RandomSoldCount(s Sampler) int {
	n, _ := RandomBetween(s, MinSoldCount, MaxSoldCount)
	return n
}
