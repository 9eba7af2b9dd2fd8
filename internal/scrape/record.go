package scrape

import (
	"fmt"
	"sort"
	"strings"
)

// AccessLevel is the closed vocabulary of action access-level tags.
type AccessLevel string

const (
	AccessRead              AccessLevel = "Read"
	AccessWrite             AccessLevel = "Write"
	AccessPut               AccessLevel = "Put"
	AccessDelete            AccessLevel = "Delete"
	AccessGet               AccessLevel = "Get"
	AccessList              AccessLevel = "List"
	AccessPermissionsManage AccessLevel = "Permissions management"
	AccessTagging           AccessLevel = "Tagging"
	AccessReplicate         AccessLevel = "Replicate"
	AccessNone              AccessLevel = "None"
	AccessUndocumented      AccessLevel = "Undocumented"
)

var accessLevels = map[string]AccessLevel{
	string(AccessRead):              AccessRead,
	string(AccessWrite):             AccessWrite,
	string(AccessPut):               AccessPut,
	string(AccessDelete):            AccessDelete,
	string(AccessGet):               AccessGet,
	string(AccessList):              AccessList,
	string(AccessPermissionsManage): AccessPermissionsManage,
	string(AccessTagging):           AccessTagging,
	string(AccessReplicate):         AccessReplicate,
	string(AccessNone):              AccessNone,
	string(AccessUndocumented):      AccessUndocumented,
}

// ParseAccessLevel maps a cell value onto the closed enumeration. Unknown
// values return ErrVocabulary so a changed upstream vocabulary is never
// silently coerced.
func ParseAccessLevel(s string) (AccessLevel, error) {
	if level, ok := accessLevels[s]; ok {
		return level, nil
	}
	return "", fmt.Errorf("%w: %q", ErrVocabulary, s)
}

// ActionRecord is one documented or inferred capability. Field declaration
// order is the serialization order.
type ActionRecord struct {
	AccessLevel   AccessLevel `json:"access_level"`
	Action        string      `json:"action"`
	ConditionKeys []string    `json:"condition_keys"`
	Description   string      `json:"description"`
	Orphan        bool        `json:"orphan"`
	Resources     []string    `json:"resources"`
}

// permissionOnly is an annotation suffix on some action names, stripped
// because it is documentation markup rather than part of the identifier.
const permissionOnly = "[permission only]"

// BuildRecord maps one flattened row into a validated ActionRecord.
func BuildRecord(row FlatRow) (ActionRecord, error) {
	action := strings.TrimSpace(strings.ReplaceAll(row[ColAction], permissionOnly, ""))
	if action == "" {
		return ActionRecord{}, fmt.Errorf("%w: row has empty action name", ErrShape)
	}

	level, err := ParseAccessLevel(row[ColAccessLevel])
	if err != nil {
		return ActionRecord{}, fmt.Errorf("action %s: %w", action, err)
	}

	resources := splitSet(row[ColResourceTypes], func(s string) string {
		return strings.ReplaceAll(s, "*", "")
	})
	conditions := splitSet(row[ColConditionKeys], nil)

	return ActionRecord{
		AccessLevel:   level,
		Action:        action,
		ConditionKeys: conditions,
		Description:   NormalizeWhitespace(row[ColDescription]),
		Resources:     resources,
	}, nil
}

// splitSet tokenizes a cell on whitespace, applies an optional normalizer,
// then deduplicates and sorts. Always returns a non-nil slice so record
// sets serialize as [] rather than null.
func splitSet(cell string, normalize func(string) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, tok := range strings.Fields(cell) {
		if normalize != nil {
			tok = normalize(tok)
		}
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
