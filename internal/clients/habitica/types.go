package habitica

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// User is the subset of /user read by the actions (userFields=stats,items)
type User struct {
	Stats Stats `json:"stats"`
	Items Items `json:"items"`
}

// Stats holds the resource pools. The service reports them as fractional
// numbers.
type Stats struct {
	GP float64 `json:"gp"`
	MP float64 `json:"mp"`
	HP float64 `json:"hp"`
}

// Items is the user's inventory. Every count mapping keeps the order in which
// the service listed its keys.
type Items struct {
	Eggs            Counts          `json:"eggs"`
	HatchingPotions Counts          `json:"hatchingPotions"`
	Pets            Counts          `json:"pets"`
	Food            Counts          `json:"food"`
	Mounts          map[string]bool `json:"mounts"`
}

// Count is one name/count pair of an inventory mapping
type Count struct {
	Name  string
	Value int
}

// Counts is an inventory mapping in document order
type Counts []Count

// UnmarshalJSON decodes a JSON object of numbers, keeping key order. Null
// values count as zero.
func (c *Counts) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		*c = nil
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("expected object, got %s", res.Type)
	}

	out := Counts{}
	var err error
	res.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.Number, gjson.Null:
			out = append(out, Count{Name: key.String(), Value: int(value.Int())})
			return true
		default:
			err = fmt.Errorf("%s: expected number, got %s", key.String(), value.Type)
			return false
		}
	})
	if err != nil {
		return err
	}

	*c = out
	return nil
}

// Available returns, in order, the names whose count is above zero
func (c Counts) Available() []string {
	var names []string
	for _, item := range c {
		if item.Value > 0 {
			names = append(names, item.Name)
		}
	}
	return names
}

// Get returns the count for name
func (c Counts) Get(name string) (int, bool) {
	for _, item := range c {
		if item.Name == name {
			return item.Value, true
		}
	}
	return 0, false
}

// PetKey joins a species (egg) and color (potion) as the service names pets
// and mounts
func PetKey(species, color string) string {
	return species + "-" + color
}

// SplitPetKey is the inverse of PetKey. Keys without a separator are
// reported as not ok.
func SplitPetKey(key string) (species, color string, ok bool) {
	return strings.Cut(key, "-")
}

// Party is the subset of /groups/party read by the quest joiner
type Party struct {
	Quest Quest `json:"quest"`
}

// Quest is the party quest state. An empty Key means there is no quest.
type Quest struct {
	Key     string           `json:"key"`
	Active  bool             `json:"active"`
	Members map[string]*bool `json:"members"`
}

// HasJoined reports whether userID has accepted the quest. Members who were
// invited but have not answered are listed with a null value.
func (q Quest) HasJoined(userID string) bool {
	accepted := q.Members[userID]
	return accepted != nil && *accepted
}

// FoodType is the armoire reward category that carries a drop text
const FoodType = "food"

// ArmoireResult is the data returned by /user/buy-armoire
type ArmoireResult struct {
	Armoire ArmoireDrop `json:"armoire"`
}

// ArmoireDrop describes what the armoire gave
type ArmoireDrop struct {
	Type     string  `json:"type"`
	DropText string  `json:"dropText"`
	Value    float64 `json:"value"`
}

// envelope wraps every response of the v3 API
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}
