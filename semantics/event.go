package semantics

import "github.com/revelaction/semparse/verbnet"

// Event is an event of a proposition with the predicates describing it.
// Index is the position among the sub-events, NotFound for the main event.
type Event struct {
	Name       string      `json:"name"`
	Index      int         `json:"eventIndex"`
	Predicates []Predicate `json:"predicates"`
}

// SubEvents groups predicates by the name of their first event argument.
// Events come in order of first appearance, MainEvent excluded.
func SubEvents(preds []Predicate) []Event {
	var events []Event
	index := map[string]int{}

	for _, p := range preds {
		name, ok := p.Event()
		if !ok || name == MainEvent {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(events)
			index[name] = i
			events = append(events, Event{Name: name, Index: i})
		}
		events[i].Predicates = append(events[i].Predicates, p)
	}
	return events
}

// ResolveEventIndexes sets EventIndex of every event argument of preds to
// the position of the sub-event it names, or NotFound. preds is modified in
// place.
func ResolveEventIndexes(preds []Predicate, subs []Event) {
	index := make(map[string]int, len(subs))
	for i, e := range subs {
		if _, ok := index[e.Name]; !ok {
			index[e.Name] = i
		}
	}

	for i := range preds {
		for j := range preds[i].Args {
			arg := &preds[i].Args[j]
			if arg.Kind != verbnet.ArgEvent {
				continue
			}
			if idx, ok := index[EventName(arg.Value)]; ok {
				arg.EventIndex = idx
			} else {
				arg.EventIndex = NotFound
			}
		}
	}
}

// Events resolves the event indexes of preds and returns the main event,
// holding all of them, and the sub-events.
func Events(preds []Predicate) (Event, []Event) {
	ResolveEventIndexes(preds, SubEvents(preds))
	return Event{Name: MainEvent, Index: NotFound, Predicates: preds}, SubEvents(preds)
}
