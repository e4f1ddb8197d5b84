package htmldoc

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// Sanitize strips markup not allowed for user-generated content from a body
// fragment. The builder itself never escapes or filters; this is an opt-in
// step for callers feeding untrusted input to Add.
func Sanitize(fragment string) string {
	trimmed := strings.TrimSpace(fragment)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(sanitizePolicy().Sanitize(trimmed))
}

func sanitizePolicy() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class", "id").Globally()
		fragmentPolicy = policy
	})
	return fragmentPolicy
}
