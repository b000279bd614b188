package fact

// relationTypes is the fixed relation vocabulary of the fact API,
// organized by domain. The converter itself never inspects relation
// names; the verifier uses this list to flag relation calls the
// downstream consumers will not recognize.
var relationTypes = []string{
	// General/Foundational
	"TYPE_OF", "IS_A", "HAS_PART", "PART_OF", "INSTANCE_OF", "SUBCLASS_OF",
	"MEMBER_OF", "BELONGS_TO", "CONTAINS", "COMPRISES", "RELATED_TO",
	"SIMILAR_TO", "DIFFERENT_FROM", "OPPOSITE_OF", "EQUIVALENT_TO", "SAME_AS",

	// Causal
	"CAUSES", "CAUSED_BY", "INFLUENCES", "INFLUENCED_BY", "AFFECTS",
	"AFFECTED_BY", "ENABLES", "PREVENTS", "REQUIRES", "DEPENDS_ON",
	"RESULTS_IN",

	// Temporal
	"PRECEDED_BY", "FOLLOWED_BY", "BEFORE", "AFTER", "DURING",
	"CONTEMPORARY_OF", "SUCCEEDS", "PRECEDES",

	// Geography
	"LOCATED_IN", "LOCATION_OF", "CAPITAL_OF", "HAS_CAPITAL", "BORDERS",
	"NEAR", "CONTAINS_LOCATION", "REGION_OF", "COUNTRY_OF", "CONTINENT_OF",

	// Biography
	"BORN_IN", "DIED_IN", "BIRTHPLACE_OF", "DEATHPLACE_OF", "NATIONALITY",
	"CITIZEN_OF", "OCCUPATION", "PROFESSION_OF", "EMPLOYER", "EMPLOYED_BY",
	"EDUCATED_AT", "ALMA_MATER_OF", "SPOUSE_OF", "CHILD_OF", "PARENT_OF",
	"SIBLING_OF", "RELATIVE_OF", "FRIEND_OF", "COLLEAGUE_OF", "MENTOR_OF",
	"STUDENT_OF",

	// Creation and authorship
	"CREATED_BY", "CREATOR_OF", "INVENTED_BY", "INVENTOR_OF",
	"DISCOVERED_BY", "DISCOVERER_OF", "FOUNDED_BY", "FOUNDER_OF",
	"AUTHORED_BY", "AUTHOR_OF", "COMPOSED_BY", "COMPOSER_OF", "DIRECTED_BY",
	"DIRECTOR_OF", "PRODUCED_BY", "PRODUCER_OF", "DESIGNED_BY",
	"DESIGNER_OF", "BUILT_BY", "BUILDER_OF",

	// Organizations
	"AFFILIATED_WITH", "HEADQUARTERS_IN", "SUBSIDIARY_OF",
	"PARENT_COMPANY_OF", "DEPARTMENT_OF", "DIVISION_OF", "BRANCH_OF",
	"LED_BY", "LEADER_OF", "CEO_OF", "PRESIDENT_OF", "CHAIRMAN_OF",

	// Science and scholarship
	"DERIVES_FROM", "DERIVED_FROM", "APPLIED_TO", "APPLICATION_OF",
	"FIELD_OF", "STUDIES", "STUDIED_BY", "PROPERTY_OF", "HAS_PROPERTY",
	"CHARACTERISTIC_OF", "COMPOSED_OF", "MADE_OF", "MATERIAL_OF",

	// Biology
	"SPECIES_OF", "GENUS_OF", "FAMILY_OF", "ORDER_OF", "CLASS_OF",
	"PHYLUM_OF", "KINGDOM_OF", "HABITAT_OF", "LIVES_IN", "EATS", "EATEN_BY",
	"PREDATOR_OF", "PREY_OF", "SYMBIONT_OF", "HOST_OF", "PARASITE_OF",

	// Arts and culture
	"GENRE_OF", "STYLE_OF", "MOVEMENT_OF", "INSPIRED_BY", "INSPIRATION_FOR",
	"PERFORMED_BY", "PERFORMER_OF", "PORTRAYED_BY", "PORTRAYAL_OF",
	"ADAPTATION_OF", "BASED_ON",

	// Economy
	"CURRENCY_OF", "TRADED_IN", "MARKET_OF", "INDUSTRY_OF", "SECTOR_OF",
	"PRODUCT_OF", "MANUFACTURER_OF", "SUPPLIER_OF", "CUSTOMER_OF",
	"COMPETITOR_OF",

	// Politics
	"GOVERNED_BY", "GOVERNS", "OFFICIAL_LANGUAGE_OF", "MEMBER_STATE_OF",
	"SIGNATORY_OF", "ALLY_OF", "ENEMY_OF", "COLONY_OF", "COLONIZED_BY",

	// Events
	"TIMELINE_EVENT", "PARTICIPANT_IN", "OCCURRED_IN", "VENUE_OF",
	"ORGANIZER_OF", "WINNER_OF", "AWARD_FOR",

	// Language
	"LANGUAGE_OF", "SPOKEN_IN", "WRITTEN_IN", "TRANSLATED_FROM",
	"TRANSLATION_OF", "ETYMOLOGY_OF", "DERIVED_WORD_OF",

	// Mathematics
	"THEOREM_OF", "PROOF_OF", "COROLLARY_OF", "GENERALIZATION_OF",
	"SPECIAL_CASE_OF", "DUAL_OF", "INVERSE_OF",

	// Long tail observed in the corpus
	"VARIANT_OF", "ASSOCIATED_WITH", "POSITION_HELD", "FIELD_OF_WORK",
	"AWARDED_TO", "COMPONENT_OF", "BORN_ON", "WORKS_FOR", "GENRE",
	"COLLABORATED_WITH", "DIED_ON", "CATEGORY_OF", "COMPETED_IN",
	"USED_FOR", "RESIDED_IN", "ALMA_MATER", "RECIPIENT_OF", "MANAGED_BY",
	"USED_IN", "ETHNICITY", "SUCCEEDED_BY", "SUBSET_OF", "PUBLISHED_BY",
	"USES", "PLAYS_FOR_TEAM", "CONTEMPORARY_WITH", "RELIGION",
	"WON_MEDAL_AT", "ALBUM_OF", "USED_BY", "BURIED_AT", "ADAPTED_FROM",
	"SUBJECT_OF", "RELEASED_ON_LABEL", "TRACK_OF", "ALIAS_OF",
	"CONTRIBUTED_TO", "HEADQUARTERED_IN", "MARRIED_TO", "NAMED_AFTER",
	"SERVED_IN", "NOMINATED_FOR", "MENTIONED_IN", "RELATION_OF",
}

var relationSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(relationTypes))
	for _, r := range relationTypes {
		m[r] = struct{}{}
	}
	return m
}()

// KnownRelations returns the relation vocabulary in catalog order.
func KnownRelations() []string {
	out := make([]string, len(relationTypes))
	copy(out, relationTypes)
	return out
}

// IsKnownRelation reports whether name is part of the fixed vocabulary.
func IsKnownRelation(name string) bool {
	_, ok := relationSet[name]
	return ok
}

// Relation is one typed edge between two entities.
type Relation struct {
	Type     string
	Subject  string
	Object   string
	Citation *Citation
}
