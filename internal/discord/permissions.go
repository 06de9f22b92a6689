package discord

import (
	"log"
)

// defaultAllowedRoles gate commands when a guild has not configured its own
// allowed-role list.
var defaultAllowedRoles = []string{"Zoadores", "Admins"}

type allowedRoleSource interface {
	GetAllowedRoles(guildID string) ([]string, error)
}

// RoleGate implements the pipeline permission check: configured role IDs
// win; with nothing configured, the static default role names apply.
type RoleGate struct {
	store allowedRoleSource
}

func NewRoleGate(store allowedRoleSource) *RoleGate {
	return &RoleGate{store: store}
}

func (g *RoleGate) Allowed(guildID string, roleIDs, roleNames []string) bool {
	configured, err := g.store.GetAllowedRoles(guildID)
	if err != nil {
		log.Println("[WARN] Failed to load allowed roles, using defaults:", err)
		configured = nil
	}

	if len(configured) > 0 {
		set := make(map[string]struct{}, len(configured))
		for _, id := range configured {
			set[id] = struct{}{}
		}
		for _, id := range roleIDs {
			if _, ok := set[id]; ok {
				return true
			}
		}
		return false
	}

	for _, name := range roleNames {
		for _, allowed := range defaultAllowedRoles {
			if name == allowed {
				return true
			}
		}
	}
	return false
}
