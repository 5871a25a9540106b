package actions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/habitica-actions/internal/clients/habitica"
)

func itemsFromJSON(t *testing.T, doc string) habitica.Items {
	t.Helper()
	var items habitica.Items
	require.NoError(t, json.Unmarshal([]byte(doc), &items))
	return items
}

func TestMatchHatchings(t *testing.T) {
	testCases := []struct {
		name    string
		items   string
		want    []Hatching
		message string
	}{
		{
			name: "first unowned potion per egg",
			items: `{
				"eggs": {"PandaCub": 1, "BearCub": 0, "FlyingPig": 1},
				"hatchingPotions": {"Skeleton": 1, "Shade": 0, "Red": 1, "Base": 4},
				"pets": {"PandaCub-Skeleton": 27, "FlyingPig-Base": 20}
			}`,
			want: []Hatching{
				{Egg: "PandaCub", Potion: "Red"},
				{Egg: "FlyingPig", Potion: "Skeleton"},
			},
		},
		{
			name: "potion reused across eggs",
			items: `{
				"eggs": {"Wolf": 1, "Fox": 1},
				"hatchingPotions": {"Golden": 1}
			}`,
			want: []Hatching{
				{Egg: "Wolf", Potion: "Golden"},
				{Egg: "Fox", Potion: "Golden"},
			},
		},
		{
			name: "egg with every pet owned is skipped",
			items: `{
				"eggs": {"Wolf": 2, "Fox": 1},
				"hatchingPotions": {"Red": 1},
				"pets": {"Wolf-Red": 5}
			}`,
			want: []Hatching{{Egg: "Fox", Potion: "Red"}},
		},
		{
			name: "pet raised to a mount can hatch again",
			items: `{
				"eggs": {"Wolf": 1},
				"hatchingPotions": {"Red": 1},
				"pets": {"Wolf-Red": -1}
			}`,
			want: []Hatching{{Egg: "Wolf", Potion: "Red"}},
		},
		{
			name: "no eggs",
			items: `{
				"eggs": {"Wolf": 0},
				"hatchingPotions": {"Red": 1}
			}`,
			message: "All out of eggs",
		},
		{
			name: "no eggs wins over no potions",
			items: `{
				"eggs": {},
				"hatchingPotions": {}
			}`,
			message: "All out of eggs",
		},
		{
			name: "no potions",
			items: `{
				"eggs": {"PandaCub": 1},
				"hatchingPotions": {"Red": 0}
			}`,
			message: "All out of potions",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, message := matchHatchings(itemsFromJSON(t, tc.items))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.message, message)
		})
	}
}

func TestResolveFood(t *testing.T) {
	testCases := map[string]string{
		"Fish":                 "Fish",
		"Meat":                 "Meat",
		"Cake_Skeleton":        "Fish",
		"Candy_Base":           "Meat",
		"Pie_CottonCandyBlue":  "CottonCandyBlue",
		"CottonCandyPink":      "CottonCandyPink",
		"Cake_Red":             "Strawberry",
		"Saddle":               "Saddle",
		"Candy_RoyalPurple":    "Candy_RoyalPurple",
		"Honey":                "Honey",
		"Candy_Golden":         "Honey",
		"RottenMeat":           "RottenMeat",
		"Cake_Zombie":          "RottenMeat",
		"Pie_Desert":           "Potatoe",
		"Candy_White":          "Milk",
		"Cake_Shade":           "Chocolate",
		"Candy_CottonCandyRed": "Candy_CottonCandyRed",
	}

	for food, want := range testCases {
		t.Run(food, func(t *testing.T) {
			assert.Equal(t, want, resolveFood(food))
		})
	}
}

func TestMaxFeed(t *testing.T) {
	assert.Equal(t, 4, maxFeed(27))
	assert.Equal(t, 10, maxFeed(0))
	assert.Equal(t, 0, maxFeed(46))
	assert.Equal(t, 0, maxFeed(50))
	assert.Equal(t, 0, maxFeed(55))
}

func TestMatchFeedings(t *testing.T) {
	stable := `"pets": {
		"PandaCub-Skeleton": 27,
		"BearCub-Shade": 5,
		"Jackalope-RoyalPurple": 5,
		"Phoenix-Base": 5,
		"Wolf-Red": 30,
		"PandaCub-CottonCandyPink": 40,
		"FlyingPig-Base": 20,
		"LionCub-Zombie": 25
	}`

	testCases := []struct {
		name   string
		items  string
		want   []Feeding
		noFood bool
	}{
		{
			name: "each food to its first candidate",
			items: `{` + stable + `,
				"food": {"Chocolate": 0, "Fish": 1, "Honey": 0, "Meat": 2}
			}`,
			want: []Feeding{
				{Pet: "PandaCub-Skeleton", Food: "Fish", Amount: 1},
				{Pet: "FlyingPig-Base", Food: "Meat", Amount: 2},
			},
		},
		{
			name: "amount capped by remaining experience",
			items: `{
				"pets": {"Wolf-Base": 0, "Fox-Base": 5},
				"food": {"Meat": 12}
			}`,
			want: []Feeding{{Pet: "Fox-Base", Food: "Meat", Amount: 9}},
		},
		{
			name: "themed food resolves through its color",
			items: `{
				"pets": {"Dragon-Skeleton": 45},
				"food": {"Cake_Skeleton": 3}
			}`,
			want: []Feeding{{Pet: "Dragon-Skeleton", Food: "Cake_Skeleton", Amount: 1}},
		},
		{
			name: "owned mounts and unknown species are skipped",
			items: `{
				"pets": {"Phoenix-Base": 5, "Wolf-Base": 10, "Fox-Base": 15},
				"mounts": {"Wolf-Base": true},
				"food": {"Meat": 1}
			}`,
			want: []Feeding{{Pet: "Fox-Base", Food: "Meat", Amount: 1}},
		},
		{
			name: "pet without room hands over to the next candidate",
			items: `{
				"pets": {"Wolf-Base": 46, "Fox-Base": 10},
				"food": {"Meat": 1}
			}`,
			want: []Feeding{{Pet: "Fox-Base", Food: "Meat", Amount: 1}},
		},
		{
			name: "room used by an earlier food counts",
			items: `{
				"pets": {"Wolf-Base": 30, "Fox-Base": 10},
				"food": {"Meat": 4, "Candy_Base": 2}
			}`,
			want: []Feeding{
				{Pet: "Wolf-Base", Food: "Meat", Amount: 4},
				{Pet: "Fox-Base", Food: "Candy_Base", Amount: 2},
			},
		},
		{
			name: "unmatched food is not fed",
			items: `{
				"pets": {"Wolf-Base": 10},
				"food": {"Strawberry": 3}
			}`,
		},
		{
			name: "no food at all",
			items: `{` + stable + `,
				"food": {"Fish": 0, "Meat": 0}
			}`,
			noFood: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, noFood := matchFeedings(itemsFromJSON(t, tc.items))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.noFood, noFood)
		})
	}
}
