package access

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

// Template is a per-department, per-role UI permission tree. The tree is
// stored as JSONB and passed through to the frontend as-is.
type Template struct {
	ID           string
	DepartmentID string
	Role         user.Role
	Tree         PermissionTree
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PermissionNode is one node of the permission tree. Key identifies a UI
// surface ("schedule", "schedule.reorder", ...); Allowed gates it; Children
// refine it.
type PermissionNode struct {
	Key      string           `json:"key"`
	Allowed  bool             `json:"allowed"`
	Children []PermissionNode `json:"children,omitempty"`
}

type PermissionTree struct {
	Nodes []PermissionNode `json:"nodes"`
}

// Value implements driver.Valuer for database storage
func (t PermissionTree) Value() (driver.Value, error) {
	if len(t.Nodes) == 0 {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *PermissionTree) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PermissionTree: invalid type")
	}

	return json.Unmarshal(bytes, t)
}

// Allows walks the tree along a dot-separated key path. A missing node
// inherits its nearest ancestor's decision; an empty tree denies.
func (t PermissionTree) Allows(key string) bool {
	nodes := t.Nodes
	allowed := false
	for {
		var match *PermissionNode
		for i := range nodes {
			if key == nodes[i].Key || (len(key) > len(nodes[i].Key) && key[:len(nodes[i].Key)] == nodes[i].Key && key[len(nodes[i].Key)] == '.') {
				match = &nodes[i]
				break
			}
		}
		if match == nil {
			return allowed
		}
		allowed = match.Allowed
		if key == match.Key {
			return allowed
		}
		nodes = match.Children
	}
}
