package domain

// BuyerSituation is the buyer's high-level reason for shopping.
type BuyerSituation string

const (
	SituationFirstTime         BuyerSituation = "first_time"
	SituationUpsizing          BuyerSituation = "upsizing"
	SituationDownsizing        BuyerSituation = "downsizing"
	SituationRelocating        BuyerSituation = "relocating"
	SituationInvesting         BuyerSituation = "investing"
	SituationRetiring          BuyerSituation = "retiring"
	SituationMultigenerational BuyerSituation = "multigenerational"
)

// BuyerSituations lists every situation the wizard offers.
func BuyerSituations() []BuyerSituation {
	return []BuyerSituation{
		SituationFirstTime,
		SituationUpsizing,
		SituationDownsizing,
		SituationRelocating,
		SituationInvesting,
		SituationRetiring,
		SituationMultigenerational,
	}
}

// HouseholdTag marks who lives in the buyer's household.
type HouseholdTag string

const (
	HouseholdYoungChildren HouseholdTag = "young_children"
	HouseholdTeens         HouseholdTag = "teens"
	HouseholdElderlyParent HouseholdTag = "elderly_parent"
	HouseholdAdultChildren HouseholdTag = "adult_children"
	HouseholdRoommates     HouseholdTag = "roommates"
)

// HouseholdTags lists every household tag the wizard offers.
func HouseholdTags() []HouseholdTag {
	return []HouseholdTag{
		HouseholdYoungChildren,
		HouseholdTeens,
		HouseholdElderlyParent,
		HouseholdAdultChildren,
		HouseholdRoommates,
	}
}

// AccessibilityNeed is one declared accessibility requirement.
type AccessibilityNeed string

const (
	NeedNone               AccessibilityNeed = "none"
	NeedWheelchairFull     AccessibilityNeed = "wheelchair_full"
	NeedMobilityLimited    AccessibilityNeed = "mobility_limited"
	NeedChronicFatigue     AccessibilityNeed = "chronic_fatigue"
	NeedSensorySensitivity AccessibilityNeed = "sensory_sensitivity"
	NeedRespiratory        AccessibilityNeed = "respiratory"
	NeedAgingInPlace       AccessibilityNeed = "aging_in_place"
)

// FeatureTag names a property feature the buyer cares about. Only a handful
// of these are decidable from structured records; the rest are left to the
// claims pipeline.
type FeatureTag string

const (
	FeatureSingleStory     FeatureTag = "single_story"
	FeatureGarage          FeatureTag = "garage"
	FeatureYard            FeatureTag = "yard"
	FeatureNoHOA           FeatureTag = "no_hoa"
	FeatureNewConstruction FeatureTag = "new_construction"
	FeaturePool            FeatureTag = "pool"
	FeatureSolar           FeatureTag = "solar"
	FeatureEVCharging      FeatureTag = "ev_charging"
	FeatureADU             FeatureTag = "adu"
	FeatureGoodSchools     FeatureTag = "good_schools"
	FeatureQuietStreet     FeatureTag = "quiet_street"
	FeatureWalkable        FeatureTag = "walkable"
)

// FeatureTags lists every feature tag the wizard offers.
func FeatureTags() []FeatureTag {
	return []FeatureTag{
		FeatureSingleStory,
		FeatureGarage,
		FeatureYard,
		FeatureNoHOA,
		FeatureNewConstruction,
		FeaturePool,
		FeatureSolar,
		FeatureEVCharging,
		FeatureADU,
		FeatureGoodSchools,
		FeatureQuietStreet,
		FeatureWalkable,
	}
}

// CommuteMode is how the buyer gets to their commute destination.
type CommuteMode string

const (
	CommuteDrive   CommuteMode = "drive"
	CommuteTransit CommuteMode = "transit"
	CommuteBike    CommuteMode = "bike"
	CommuteWalk    CommuteMode = "walk"
	CommuteNone    CommuteMode = "none"
)

// Lifestyle captures commute, space minimums and pets.
type Lifestyle struct {
	CommuteDestination string      `json:"commute_destination,omitempty" mapstructure:"commute-destination"`
	CommuteMode        CommuteMode `json:"commute_mode,omitempty" mapstructure:"commute-mode"`
	CommuteMaxMinutes  int         `json:"commute_max_minutes,omitempty" mapstructure:"commute-max-minutes"`
	MinBeds            float64     `json:"min_beds,omitempty" mapstructure:"min-beds"`
	MinBaths           float64     `json:"min_baths,omitempty" mapstructure:"min-baths"`
	MinSqft            int64       `json:"min_sqft,omitempty" mapstructure:"min-sqft"`
	OutdoorPriority    bool        `json:"outdoor_priority,omitempty" mapstructure:"outdoor-priority"`
	HasPets            bool        `json:"has_pets,omitempty" mapstructure:"has-pets"`
	PetTypes           []string    `json:"pet_types,omitempty" mapstructure:"pet-types"`
}

// Budget is the buyer's price envelope. Max is the comfortable ceiling,
// Stretch the absolute one.
type Budget struct {
	Min               float64 `json:"min,omitempty" mapstructure:"min"`
	Max               float64 `json:"max,omitempty" mapstructure:"max"`
	Stretch           float64 `json:"stretch,omitempty" mapstructure:"stretch"`
	MonthlyPaymentMax float64 `json:"monthly_payment_max,omitempty" mapstructure:"monthly-payment-max"`
}

// BuyerProfile is the buyer's stated requirements. It is built once by the
// wizard and only changed by re-running it; the engine never writes to it.
// MustHaves, NiceToHaves and Dealbreakers are disjoint sets: the wizard
// removes a tag from the other two whenever it is added to one.
type BuyerProfile struct {
	Name               string              `json:"name,omitempty" mapstructure:"name"`
	Situation          BuyerSituation      `json:"situation" mapstructure:"situation"`
	Household          []HouseholdTag      `json:"household,omitempty" mapstructure:"household"`
	Headcount          int                 `json:"headcount,omitempty" mapstructure:"headcount"`
	AccessibilityNeeds []AccessibilityNeed `json:"accessibility_needs,omitempty" mapstructure:"accessibility-needs"`
	AccessibilityNotes string              `json:"accessibility_notes,omitempty" mapstructure:"accessibility-notes"`
	Budget             Budget              `json:"budget" mapstructure:"budget"`
	MustHaves          []FeatureTag        `json:"must_haves,omitempty" mapstructure:"must-haves"`
	NiceToHaves        []FeatureTag        `json:"nice_to_haves,omitempty" mapstructure:"nice-to-haves"`
	Dealbreakers       []FeatureTag        `json:"dealbreakers,omitempty" mapstructure:"dealbreakers"`
	Lifestyle          Lifestyle           `json:"lifestyle" mapstructure:"lifestyle"`
}

// FeatureBucket names one of the profile's three feature sets.
type FeatureBucket string

const (
	BucketMustHave    FeatureBucket = "must_have"
	BucketNiceToHave  FeatureBucket = "nice_to_have"
	BucketDealbreaker FeatureBucket = "dealbreaker"
)

// AssignFeature places a tag into one bucket, removing it from the other
// two so the sets stay disjoint.
func (p *BuyerProfile) AssignFeature(tag FeatureTag, bucket FeatureBucket) {
	p.MustHaves = removeTag(p.MustHaves, tag)
	p.NiceToHaves = removeTag(p.NiceToHaves, tag)
	p.Dealbreakers = removeTag(p.Dealbreakers, tag)

	switch bucket {
	case BucketMustHave:
		p.MustHaves = append(p.MustHaves, tag)
	case BucketNiceToHave:
		p.NiceToHaves = append(p.NiceToHaves, tag)
	case BucketDealbreaker:
		p.Dealbreakers = append(p.Dealbreakers, tag)
	}
}

func removeTag(tags []FeatureTag, tag FeatureTag) []FeatureTag {
	out := tags[:0]
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// HasAccessibilityNeeds reports whether the buyer declared any need beyond
// the "none" sentinel.
func (p *BuyerProfile) HasAccessibilityNeeds() bool {
	if p == nil {
		return false
	}
	for _, need := range p.AccessibilityNeeds {
		if need != NeedNone && need != "" {
			return true
		}
	}
	return false
}

// HasHouseholdTag reports whether the household includes the given tag.
func (p *BuyerProfile) HasHouseholdTag(tag HouseholdTag) bool {
	if p == nil {
		return false
	}
	for _, t := range p.Household {
		if t == tag {
			return true
		}
	}
	return false
}
