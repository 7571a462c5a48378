package verbnet

import "strings"

// RoleType is a VerbNet thematic role.
type RoleType string

const (
	// Verb is reserved for the predicate span itself and never appears in a
	// frame schema.
	Verb RoleType = "VERB"

	// UnknownRole marks a role string outside of the VerbNet inventory.
	UnknownRole RoleType = "UNKNOWN"

	Actor           RoleType = "Actor"
	Agent           RoleType = "Agent"
	Asset           RoleType = "Asset"
	Attribute       RoleType = "Attribute"
	Beneficiary     RoleType = "Beneficiary"
	Cause           RoleType = "Cause"
	CoAgent         RoleType = "Co-Agent"
	CoPatient       RoleType = "Co-Patient"
	CoTheme         RoleType = "Co-Theme"
	Destination     RoleType = "Destination"
	Duration        RoleType = "Duration"
	Experiencer     RoleType = "Experiencer"
	Extent          RoleType = "Extent"
	FinalTime       RoleType = "Final_Time"
	Frequency       RoleType = "Frequency"
	Goal            RoleType = "Goal"
	InitialLocation RoleType = "Initial_Location"
	InitialState    RoleType = "Initial_State"
	Instrument      RoleType = "Instrument"
	Location        RoleType = "Location"
	Material        RoleType = "Material"
	Participant     RoleType = "Participant"
	Patient         RoleType = "Patient"
	Pivot           RoleType = "Pivot"
	Place           RoleType = "Place"
	Predicate       RoleType = "Predicate"
	Product         RoleType = "Product"
	Recipient       RoleType = "Recipient"
	Reflexive       RoleType = "Reflexive"
	Result          RoleType = "Result"
	Source          RoleType = "Source"
	Stimulus        RoleType = "Stimulus"
	Theme           RoleType = "Theme"
	Time            RoleType = "Time"
	Topic           RoleType = "Topic"
	Trajectory      RoleType = "Trajectory"
	Value           RoleType = "Value"
)

var roleTypes = []RoleType{
	Verb, Actor, Agent, Asset, Attribute, Beneficiary, Cause, CoAgent, CoPatient,
	CoTheme, Destination, Duration, Experiencer, Extent, FinalTime, Frequency,
	Goal, InitialLocation, InitialState, Instrument, Location, Material,
	Participant, Patient, Pivot, Place, Predicate, Product, Recipient, Reflexive,
	Result, Source, Stimulus, Theme, Time, Topic, Trajectory, Value,
}

var roleKeys = func() map[string]RoleType {
	m := make(map[string]RoleType, len(roleTypes))
	for _, r := range roleTypes {
		m[roleKey(string(r))] = r
	}
	return m
}()

func roleKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "?")
	return strings.ReplaceAll(strings.ToUpper(s), "-", "_")
}

// RoleTypeFromString returns the canonical role for s. Case, a leading '?'
// (VerbNet's implicit-argument marker) and '-' versus '_' are ignored.
func RoleTypeFromString(s string) RoleType {
	if r, ok := roleKeys[roleKey(s)]; ok {
		return r
	}
	return UnknownRole
}

func (r RoleType) IsKnown() bool {
	return r != UnknownRole && r != ""
}

func (r RoleType) String() string {
	return string(r)
}

// UnmarshalText canonicalizes roles read from lexicon and mapping files.
func (r *RoleType) UnmarshalText(text []byte) error {
	*r = RoleTypeFromString(string(text))
	return nil
}
