package ledger

import (
	"encoding/json"
	"strings"
)

// Transaction results and object queries arrive loosely typed; the
// decoders below map them into the identifiers the booking flows need,
// failing closed: anything unrecognized reads as "not found".

type txResult struct {
	ObjectChanges []objectChange `json:"objectChanges"`
	Effects       *txEffects     `json:"effects"`
}

type objectChange struct {
	Type       string `json:"type"`
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
}

type txEffects struct {
	Created []createdEffect `json:"created"`
}

type createdEffect struct {
	Owner     *effectOwner     `json:"owner"`
	Reference *effectReference `json:"reference"`
}

type effectOwner struct {
	ObjectType string `json:"objectType"`
}

type effectReference struct {
	ObjectID string `json:"objectId"`
}

// ExtractCreatedObjectID pulls the identifier of a created object whose
// type ends in one of the given suffixes. It checks objectChanges first
// (the more reliable field), then effects.created, and returns "" when
// neither yields a match.
func ExtractCreatedObjectID(raw json.RawMessage, typeSuffixes ...string) string {
	if len(raw) == 0 {
		return ""
	}

	var result txResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return ""
	}

	for _, change := range result.ObjectChanges {
		if change.Type != "created" || change.ObjectID == "" {
			continue
		}
		if matchesAny(change.ObjectType, typeSuffixes) {
			return change.ObjectID
		}
	}

	if result.Effects == nil {
		return ""
	}
	for _, created := range result.Effects.Created {
		if created.Owner == nil || created.Reference == nil {
			continue
		}
		if matchesAny(created.Owner.ObjectType, typeSuffixes) && created.Reference.ObjectID != "" {
			return created.Reference.ObjectID
		}
	}

	return ""
}

func matchesAny(objectType string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.Contains(objectType, s) {
			return true
		}
	}
	return false
}

type ownedObjectsResult struct {
	Data []ownedObject `json:"data"`
}

type ownedObject struct {
	Data *ownedObjectData `json:"data"`
}

type ownedObjectData struct {
	ObjectID string         `json:"objectId"`
	Type     string         `json:"type"`
	Content  *objectContent `json:"content"`
}

type objectContent struct {
	DataType string         `json:"dataType"`
	Fields   map[string]any `json:"fields"`
}

// LastOwnedObjectID returns the identifier of the most recent entry in
// an owned-objects page, or "" when the page is empty or malformed.
func LastOwnedObjectID(result ownedObjectsResult) string {
	for i := len(result.Data) - 1; i >= 0; i-- {
		if result.Data[i].Data != nil && result.Data[i].Data.ObjectID != "" {
			return result.Data[i].Data.ObjectID
		}
	}
	return ""
}

type objectResult struct {
	Data *ownedObjectData `json:"data"`
}

// ExtractObjectStatus reads the numeric status field from an object
// query result.
func ExtractObjectStatus(result objectResult) (AppointmentStatus, bool) {
	if result.Data == nil || result.Data.Content == nil {
		return 0, false
	}
	if result.Data.Content.DataType != "moveObject" {
		return 0, false
	}

	raw, ok := result.Data.Content.Fields["status"]
	if !ok {
		return 0, false
	}

	// JSON numbers decode as float64; some nodes ship u8 fields as strings.
	switch v := raw.(type) {
	case float64:
		return AppointmentStatus(int(v)), true
	case string:
		switch v {
		case "0":
			return AppointmentBooked, true
		case "1":
			return AppointmentCompleted, true
		case "2":
			return AppointmentCancelled, true
		}
	}
	return 0, false
}
