// Package limits guards tool invocations by rate, count, and field
// policies.
package limits

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pocketlab/doctools/internal/protocol"
)

// Policy configures a Guard.
type Policy struct {
	// RatePerMinute limits calls per minute per tool. Zero disables.
	RatePerMinute int
	// MaxTotal limits total calls per tool for the process lifetime. Zero disables.
	MaxTotal int
	// Fields validates input fields by name.
	Fields map[string]FieldPolicy
}

// FieldPolicy describes validation rules for a single field.
type FieldPolicy struct {
	// Regex validates string value format.
	Regex string
	// Min sets numeric minimum.
	Min *float64
	// Max sets numeric maximum.
	Max *float64
	// MinLength sets string minimum length.
	MinLength *int
	// MaxLength sets string maximum length.
	MaxLength *int
}

// Decision is the outcome of a Guard check.
type Decision struct {
	// Allowed reports whether the call may proceed.
	Allowed bool
	// Kind classifies a denial (protocol error kind).
	Kind string
	// Reason is a human-readable denial message.
	Reason string
}

type toolState struct {
	count   int
	limiter *rate.Limiter
}

// Guard keeps per-tool counters and compiled field policies.
type Guard struct {
	mu       sync.Mutex
	byTool   map[string]*toolState
	policy   Policy
	compiled map[string]*regexp.Regexp
}

// NewGuard compiles field policy regexes and returns a ready Guard.
func NewGuard(policy Policy) (*Guard, error) {
	compiled := make(map[string]*regexp.Regexp, len(policy.Fields))
	for field, fp := range policy.Fields {
		if fp.Regex == "" {
			continue
		}
		re, err := regexp.Compile(fp.Regex)
		if err != nil {
			return nil, fmt.Errorf("invalid regex for field %s: %w", field, err)
		}
		compiled[field] = re
	}
	return &Guard{
		byTool:   make(map[string]*toolState),
		policy:   policy,
		compiled: compiled,
	}, nil
}

// Check validates fields and applies rate and total-count limits for one
// tool call.
func (g *Guard) Check(toolName string, args map[string]any) Decision {
	if g == nil {
		return Decision{Allowed: true}
	}
	if err := g.checkFields(args); err != nil {
		return Decision{Allowed: false, Kind: protocol.KindInvalidInput, Reason: err.Error()}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	state := g.byTool[toolName]
	if state == nil {
		state = &toolState{}
		if g.policy.RatePerMinute > 0 {
			state.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(g.policy.RatePerMinute)), g.policy.RatePerMinute)
		}
		g.byTool[toolName] = state
	}

	if g.policy.MaxTotal > 0 && state.count >= g.policy.MaxTotal {
		return Decision{Allowed: false, Kind: protocol.KindRateLimited, Reason: "maximum number of calls exceeded"}
	}
	if state.limiter != nil && !state.limiter.Allow() {
		return Decision{Allowed: false, Kind: protocol.KindRateLimited, Reason: "rate limit exceeded"}
	}

	state.count++
	return Decision{Allowed: true}
}

func (g *Guard) checkFields(args map[string]any) error {
	for field, policy := range g.policy.Fields {
		value, ok := args[field]
		if !ok {
			continue
		}

		switch v := value.(type) {
		case string:
			if policy.MinLength != nil && len(v) < *policy.MinLength {
				return fmt.Errorf("field %s is shorter than %d characters", field, *policy.MinLength)
			}
			if policy.MaxLength != nil && len(v) > *policy.MaxLength {
				return fmt.Errorf("field %s is longer than %d characters", field, *policy.MaxLength)
			}
			if re := g.compiled[field]; re != nil && !re.MatchString(v) {
				return fmt.Errorf("field %s does not match required format", field)
			}
		case float64:
			if policy.Min != nil && v < *policy.Min {
				return fmt.Errorf("field %s is below minimum value %v", field, *policy.Min)
			}
			if policy.Max != nil && v > *policy.Max {
				return fmt.Errorf("field %s is above maximum value %v", field, *policy.Max)
			}
		case int:
			val := float64(v)
			if policy.Min != nil && val < *policy.Min {
				return fmt.Errorf("field %s is below minimum value %v", field, *policy.Min)
			}
			if policy.Max != nil && val > *policy.Max {
				return fmt.Errorf("field %s is above maximum value %v", field, *policy.Max)
			}
		}
	}
	return nil
}
