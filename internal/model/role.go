package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entity action constants — the closed set of per-entity permissions
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// PageSet is the set of page keys a role may view ("dashboard", "cariler", ...).
// Stored as a jsonb string array. Malformed stored JSON scans to the empty set:
// an unreadable permission column denies everything instead of failing the request.
type PageSet []string

// Has reports whether the page key is in the set
func (s PageSet) Has(key string) bool {
	for _, k := range s {
		if k == key {
			return true
		}
	}
	return false
}

func (s *PageSet) Scan(value interface{}) error {
	*s = PageSet{}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		return nil
	default:
		return nil
	}
	var pages []string
	if err := json.Unmarshal(raw, &pages); err != nil {
		// Fail closed — treat as no permissions
		return nil
	}
	*s = pages
	return nil
}

func (s PageSet) Value() (driver.Value, error) {
	if s == nil {
		s = PageSet{}
	}
	return json.Marshal([]string(s))
}

// EntityPermSet maps an entity name to the actions a role may perform on it.
// Stored as a jsonb object, e.g. {"cari": ["add", "edit"], "malzeme": ["add"]}.
// An absent entity key means no actions are allowed on that entity.
type EntityPermSet map[string][]string

// Can reports whether the action is allowed on the entity
func (s EntityPermSet) Can(entity, action string) bool {
	actions, ok := s[entity]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// Validate rejects actions outside the closed add/edit/delete set
func (s EntityPermSet) Validate() error {
	for entity, actions := range s {
		for _, a := range actions {
			if a != ActionAdd && a != ActionEdit && a != ActionDelete {
				return fmt.Errorf("entity '%s': unknown action '%s'", entity, a)
			}
		}
	}
	return nil
}

func (s *EntityPermSet) Scan(value interface{}) error {
	*s = EntityPermSet{}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		return nil
	default:
		return nil
	}
	var perms map[string][]string
	if err := json.Unmarshal(raw, &perms); err != nil {
		// Fail closed
		return nil
	}
	*s = perms
	return nil
}

func (s EntityPermSet) Value() (driver.Value, error) {
	if s == nil {
		s = EntityPermSet{}
	}
	return json.Marshal(map[string][]string(s))
}

// Role groups page visibility and entity-level action permissions
type Role struct {
	ID                uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name              string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description       string        `gorm:"type:text" json:"description"`
	IsSystem          bool          `gorm:"default:false" json:"is_system"` // Prevent deletion of built-in roles
	PagePermissions   PageSet       `gorm:"type:jsonb;not null;default:'[]'" json:"page_permissions"`
	EntityPermissions EntityPermSet `gorm:"type:jsonb;not null;default:'{}'" json:"entity_permissions"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
