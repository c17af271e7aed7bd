package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
)

// PageContext is the route context a scoped item is matched against.
type PageContext struct {
	ProductID string
	TopicID   string
	Path      string
}

var pageParamPattern = regexp.MustCompile(`:[^/]+`)

// MatchesScope decides whether a banner or popup scope applies to the given
// context. Topic scopes require both the product and the topic to match
// (logical AND). Unknown scope types never match.
func MatchesScope(scope model.Scope, ctx PageContext) bool {
	switch scope.Type {
	case model.ScopeGlobal:
		return true
	case model.ScopeProduct:
		return ctx.ProductID != "" && contains(scope.ProductIDs, ctx.ProductID)
	case model.ScopeTopic:
		return ctx.ProductID != "" && ctx.TopicID != "" &&
			contains(scope.ProductIDs, ctx.ProductID) &&
			contains(scope.TopicIDs, ctx.TopicID)
	case model.ScopePage:
		for _, pattern := range scope.PagePatterns {
			if matchesPagePattern(pattern, ctx.Path) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// matchesPagePattern translates a route pattern like /products/:productId into
// an anchored regexp, with each :param segment standing for one path segment.
// Literal regex metacharacters in the pattern are not escaped; a pattern that
// fails to compile matches nothing.
func matchesPagePattern(pattern, path string) bool {
	translated := pageParamPattern.ReplaceAllString(pattern, "[^/]+")
	translated = strings.ReplaceAll(translated, "/", `\/`)
	re, err := regexp.Compile("^" + translated + "$")
	if err != nil {
		return false
	}
	return re.MatchString(path)
}

// ValidateScope checks that a scope carries the discriminant fields its type
// requires.
func ValidateScope(scope model.Scope) error {
	switch scope.Type {
	case model.ScopeGlobal:
		return nil
	case model.ScopeProduct:
		if len(scope.ProductIDs) == 0 {
			return fmt.Errorf("product scope requires productIds")
		}
	case model.ScopeTopic:
		if len(scope.ProductIDs) == 0 || len(scope.TopicIDs) == 0 {
			return fmt.Errorf("topic scope requires productIds and topicIds")
		}
	case model.ScopePage:
		if len(scope.PagePatterns) == 0 {
			return fmt.Errorf("page scope requires pagePatterns")
		}
	default:
		return fmt.Errorf("unknown scope type %q", scope.Type)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
