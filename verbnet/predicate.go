package verbnet

import "strings"

// PredicateType is the name of a VerbNet semantic predicate, upper-cased
// with '_' as separator (HAS_LOCATION, MOTION, ...).
type PredicateType string

const UnknownPredicate PredicateType = "UNKNOWN"

var predicateTypes = []string{
	"ABOUT", "ACT", "ADJUSTED", "ADMIT", "ADOPT", "ADV", "AGREE", "ALIVE",
	"ALLOW", "APPEAR", "APPLY_HEAT", "APPLY_MATERIAL", "APPROVE", "ASSESS",
	"ATTACHED", "ATTEMPT", "ATTRACT", "AUTHORITY_RELATIONSHIP", "AVOID", "BASE",
	"BE", "BECOMES", "BEGIN", "BELIEVE", "BENEFIT", "BODY_MOTION",
	"BODY_PROCESS", "BODY_REFLEX", "BODY_SENSATION", "CALCULATE", "CAPACITY",
	"CAUSE", "CHANGE_VALUE", "CHARACTERIZE", "CHARGE", "CO_TEMPORAL",
	"CONCLUDE", "CONFINED", "CONFLICT", "CONFRONT", "CONSIDER", "CONSPIRE",
	"CONTACT", "CONTAIN", "CONTINUE", "CONVERT", "COOKED", "COOPERATE", "COPE",
	"CORRELATED", "COST", "COVERED", "CREATE_IMAGE", "DECLARE", "DEDICATE",
	"DEFEND", "DEGRADATION_MATERIAL_INTEGRITY", "DELAY", "DEPEND", "DESCRIBE",
	"DESIGNATED", "DESIRE", "DESTROYED", "DEVELOP", "DIFFERENT", "DIRECTION",
	"DISAPPEAR", "DISCOMFORT", "DISCOVER", "DO", "EARN", "ELLIPTICAL_MOTION",
	"EMIT", "EMOTIONAL_STATE", "END", "ENFORCE", "ENSURE", "EQUALS", "EXCEED",
	"EXERT_FORCE", "EXIST", "EXPERIENCE", "FILLED_WITH", "FINANCIAL_INTEREST_IN",
	"FINANCIAL_RELATIONSHIP", "FREE", "FUNCTION", "GIVE_BIRTH", "GROUP",
	"HARMED", "HARMONIZE", "HAS_CONFIGURATION", "HAS_INFORMATION",
	"HAS_LOCATION", "HAS_ORGANIZATION_ROLE", "HAS_ORIENTATION", "HAS_POSITION",
	"HAS_POSSESSION", "HAS_PROPERTY", "HAS_SET_MEMBER", "HAS_STATE", "HAS_VAL",
	"HELP", "IN_REACTION_TO", "INDICATE", "INTEND", "INTRINSIC_MOTION",
	"INVOLUNTARY", "INVOLVE", "IRREALIS", "LICENSE", "LIMIT", "LINGER",
	"LOCATION", "MADE_OF", "MANNER", "MASQUERADE", "MATERIAL_INTEGRITY_STATE",
	"MEETS", "MINGLED", "MOTION", "NECESSITATE", "NEGLECT", "OCCUR",
	"OPPOSITION", "OVERLAPS", "PART_OF", "PENETRATING", "PERCEIVE", "PERFORM",
	"PHYSICAL_FORM", "PROMOTE", "PROPERTY", "RELATE", "REPEAT_SEQUENCE",
	"REPEATED_SEQUENCE", "REQUIRE", "RISK", "ROTATIONAL_MOTION", "RUSH",
	"SATISFY", "SEARCH", "SEEM", "SET_MEMBER", "SIGNIFY", "SLEEP",
	"SOCIAL_INTERACTION", "SPEND", "SUBJUGATED", "SUCCESSFUL_IN", "SUFFOCATE",
	"SUFFOCATED", "SUPPORT", "SUSPECT", "TAKE_CARE_OF", "TAKE_IN", "THINK",
	"TIME", "TOGETHER", "TRANSFER", "TRANSFER_INFO", "UNDERSTAND", "URGE",
	"USE", "UTILIZE", "VALUE", "VISIBLE", "VOIDED", "WEAR", "WEATHER",
	"WITHDRAW", "WORK", "YIELD",
}

var predicateSet = func() map[string]bool {
	m := make(map[string]bool, len(predicateTypes))
	for _, p := range predicateTypes {
		m[p] = true
	}
	return m
}()

// PredicateTypeFromString normalizes s (has_location, Has-Location) and
// returns UnknownPredicate for names outside of the inventory.
func PredicateTypeFromString(s string) PredicateType {
	key := strings.TrimSpace(strings.ReplaceAll(strings.ToUpper(s), "-", "_"))
	if predicateSet[key] {
		return PredicateType(key)
	}
	return UnknownPredicate
}

func (p PredicateType) String() string {
	return string(p)
}

func (p *PredicateType) UnmarshalText(text []byte) error {
	*p = PredicateTypeFromString(string(text))
	return nil
}
