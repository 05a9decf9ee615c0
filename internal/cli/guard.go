package cli

import (
	"fmt"
	"strings"

	"github.com/bayuwidiasantoso/gudang/internal/guard"
)

var routes = guard.Routes()

// requireRoute gates a command behind the same access policy as the matching
// web route. A redirect decision becomes a CLI error instead.
func requireRoute(name string) error {
	policy, ok := routes.ByName(name)
	if !ok {
		return nil
	}

	decision := guard.Decide(policy, sess, policy.Pattern)
	if decision.Allowed {
		return nil
	}

	if strings.HasPrefix(decision.Target, guard.LoginPath) {
		return fmt.Errorf("not signed in: run 'gudang login' first")
	}
	return fmt.Errorf("access denied: %s requires one of roles %v", name, policy.Roles)
}
