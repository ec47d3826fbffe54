package models

import (
	"sort"

	"github.com/pkg/errors"
)

// EntityType identifies a dashboard section taking part in the approval workflow.
type EntityType string

const (
	EntityCampaignInfo    EntityType = "dashboard-campaign-info"
	EntityCampaignSummary EntityType = "dashboard-campaign-summary"
	EntitySocials         EntityType = "dashboard-socials"
	EntityOwners          EntityType = "dashboard-owners"
)

// EntityTypes is the closed set of submittable sections, in canonical processing order.
var EntityTypes = []EntityType{
	EntityCampaignInfo,
	EntityCampaignSummary,
	EntitySocials,
	EntityOwners,
}

var entityItemKey = map[EntityType]string{
	EntityCampaignInfo:    "campaignInfo",
	EntityCampaignSummary: "campaignSummary",
	EntitySocials:         "socials",
	EntityOwners:          "owners",
}

var entityHumanName = map[EntityType]string{
	EntityCampaignInfo:    "Campaign info",
	EntityCampaignSummary: "Campaign summary",
	EntitySocials:         "Socials",
	EntityOwners:          "Owners",
}

func (t EntityType) IsValid() bool {
	_, ok := entityItemKey[t]
	return ok
}

// ItemKey is the flag name used for the type in submitted item sets.
func (t EntityType) ItemKey() string {
	return entityItemKey[t]
}

func (t EntityType) ToHuman() string {
	if human, exist := entityHumanName[t]; exist {
		return human
	}
	return string(t)
}

func ParseEntityType(value string) (EntityType, error) {
	t := EntityType(value)
	if t.IsValid() {
		return t, nil
	}
	for entityType, key := range entityItemKey {
		if key == value {
			return entityType, nil
		}
	}
	return "", errors.Errorf("unknown dashboard entity type: %v", value)
}

// SubmittedItems is the flag set of sections included in one submission, keyed by item key.
type SubmittedItems map[string]bool

func NewSubmittedItems(types ...EntityType) SubmittedItems {
	items := SubmittedItems{}
	for _, t := range types {
		items[t.ItemKey()] = true
	}
	return items
}

// Types returns the requested entity types in canonical order. Unknown keys are returned separately.
func (s SubmittedItems) Types() (types []EntityType, unknown []string) {
	for key, requested := range s {
		if !requested {
			continue
		}
		t, err := ParseEntityType(key)
		if err != nil {
			unknown = append(unknown, key)
			continue
		}
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].order() < types[j].order()
	})
	sort.Strings(unknown)
	return types, unknown
}

func (s SubmittedItems) Has(t EntityType) bool {
	return s[t.ItemKey()]
}

func (t EntityType) order() int {
	for i, item := range EntityTypes {
		if item == t {
			return i
		}
	}
	return len(EntityTypes)
}
