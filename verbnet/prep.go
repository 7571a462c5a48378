package verbnet

import "strings"

// PrepType is a preposition heading a VerbNet PP slot.
type PrepType string

const UnknownPrep PrepType = "UNKNOWN"

const (
	About      PrepType = "ABOUT"
	Above      PrepType = "ABOVE"
	After      PrepType = "AFTER"
	Against    PrepType = "AGAINST"
	Among      PrepType = "AMONG"
	As         PrepType = "AS"
	At         PrepType = "AT"
	Back       PrepType = "BACK"
	Beside     PrepType = "BESIDE"
	Before     PrepType = "BEFORE"
	Below      PrepType = "BELOW"
	Between    PrepType = "BETWEEN"
	By         PrepType = "BY"
	Concerning PrepType = "CONCERNING"
	For        PrepType = "FOR"
	From       PrepType = "FROM"
	If         PrepType = "IF"
	In         PrepType = "IN"
	InBetween  PrepType = "IN_BETWEEN"
	Into       PrepType = "INTO"
	Like       PrepType = "LIKE"
	Of         PrepType = "OF"
	Off        PrepType = "OFF"
	On         PrepType = "ON"
	Onto       PrepType = "ONTO"
	Out        PrepType = "OUT"
	OutOf      PrepType = "OUT_OF"
	Over       PrepType = "OVER"
	Regarding  PrepType = "REGARDING"
	Respecting PrepType = "RESPECTING"
	Though     PrepType = "THOUGH"
	Through    PrepType = "THROUGH"
	To         PrepType = "TO"
	Towards    PrepType = "TOWARDS"
	Under      PrepType = "UNDER"
	Until      PrepType = "UNTIL"
	Upon       PrepType = "UPON"
	With       PrepType = "WITH"
)

var prepTypes = []PrepType{
	About, Above, After, Against, Among, As, At, Back, Beside, Before, Below,
	Between, By, Concerning, For, From, If, In, InBetween, Into, Like, Of, Off,
	On, Onto, Out, OutOf, Over, Regarding, Respecting, Though, Through, To,
	Towards, Under, Until, Upon, With,
}

var (
	trajectoryPreps  = prepSet(Between, InBetween, Through, Over, Under, Above, Below, Back, Beside)
	locationPreps    = prepSet(Upon, Under, Towards, To, Through, Over, OutOf, Onto, On, Off, Into, InBetween, In, From, By, Between, Below, Back, At, Above)
	sourcePreps      = prepSet(OutOf, From)
	destinationPreps = prepSet(For, To, Into, Towards, Onto, On, At)
	knownPreps       = prepSet(prepTypes...)
)

func prepSet(preps ...PrepType) map[PrepType]bool {
	m := make(map[PrepType]bool, len(preps))
	for _, p := range preps {
		m[p] = true
	}
	return m
}

// PrepTypeFromString accepts multiword prepositions in either spelling
// ("out of", "out_of").
func PrepTypeFromString(s string) PrepType {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.Join(strings.Fields(key), "_")
	if p := PrepType(key); knownPreps[p] {
		return p
	}
	return UnknownPrep
}

func (p PrepType) IsTrajectory() bool     { return trajectoryPreps[p] }
func (p PrepType) MaybeLocation() bool    { return locationPreps[p] }
func (p PrepType) MaybeSource() bool      { return sourcePreps[p] }
func (p PrepType) MaybeDestination() bool { return destinationPreps[p] }
