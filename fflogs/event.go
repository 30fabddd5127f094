package fflogs

import "strconv"

// Event is one upstream event record, keyed by field name.
type Event map[string]interface{}

type eventsResponse struct {
	Events []Event `json:"events"`
}

func (e Event) Timestamp() int64 {
	return e.Int("timestamp")
}

func (e Event) Type() string {
	s, _ := e["type"].(string)
	return s
}

func (e Event) SourceID() int {
	return int(e.Int("sourceID"))
}

func (e Event) TargetID() int {
	return int(e.Int("targetID"))
}

// Int reads a numeric field whatever number type the decoder produced. Missing or non-numeric fields read as 0.
func (e Event) Int(key string) int64 {
	switch v := e[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case interface{ Int64() (int64, error) }:
		if i, err := v.Int64(); err == nil {
			return i
		}
	case string:
		i, _ := strconv.ParseInt(v, 10, 64)
		return i
	}
	return 0
}

func (e Event) Bool(key string) bool {
	b, _ := e[key].(bool)
	return b
}

// rebase returns a copy of e with timestamp shifted by -origin. e is left untouched.
func (e Event) rebase(origin int64) Event {
	c := make(Event, len(e))
	for k, v := range e {
		c[k] = v
	}
	c["timestamp"] = e.Timestamp() - origin
	return c
}
