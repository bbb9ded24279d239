package probe

import "github.com/sgaunet/api-surface-check/pkg/platform"

// Capability names a client operation the auto-approve workflow relies on.
type Capability string

// Capabilities checked by [Validator.Validate], in check order.
const (
	CapabilityListReviews      Capability = "listReviews"
	CapabilityCreateReview     Capability = "createReview"
	CapabilityListPullRequests Capability = "listPullRequests"
)

// RequiredCapabilities is the fail-fast check order.
var RequiredCapabilities = []Capability{
	CapabilityListReviews,
	CapabilityCreateReview,
	CapabilityListPullRequests,
}

// HasCapability reports whether client exposes the named operation.
// Unknown capability names are never present.
func HasCapability(client any, c Capability) bool {
	switch c {
	case CapabilityListReviews:
		_, ok := client.(platform.ReviewLister)
		return ok
	case CapabilityCreateReview:
		_, ok := client.(platform.ReviewCreator)
		return ok
	case CapabilityListPullRequests:
		_, ok := client.(platform.PullRequestLister)
		return ok
	default:
		return false
	}
}
