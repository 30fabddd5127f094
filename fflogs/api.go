package fflogs

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// API is the upstream report service. Get decodes the JSON body of path into resp.
type API interface {
	Get(ctx context.Context, path string, params Params, resp interface{}) error
}

// Params are query parameters of one upstream call.
type Params map[string]interface{}

// Clone returns an independent copy. A nil receiver yields an empty map.
func (p Params) Clone() Params {
	c := make(Params, len(p)+2)
	for k, v := range p {
		c[k] = v
	}
	return c
}

// with returns a copy of p with window start/end set over any caller value.
func (p Params) with(start, end int64) Params {
	c := p.Clone()
	c["start"] = start
	c["end"] = end
	return c
}

func (p Params) Values() url.Values {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	v := make(url.Values, len(p))
	for _, k := range keys {
		switch e := p[k].(type) {
		case nil:
			continue
		case string:
			v.Set(k, e)
		case bool:
			v.Set(k, strconv.FormatBool(e))
		case []string:
			for _, s := range e {
				v.Add(k, s)
			}
		default:
			v.Set(k, fmt.Sprint(e))
		}
	}
	return v
}
