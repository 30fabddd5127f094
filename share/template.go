package share

import (
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	TemplateFuncMap = template.FuncMap{
		"fn": func(value interface{}) string {
			switch e := value.(type) {
			case float32:
				return humanize.CommafWithDigits(float64(e), 1)
			case float64:
				return humanize.CommafWithDigits(e, 1)
			case int:
				return humanize.Comma(int64(e))
			case int64:
				return humanize.Comma(e)
			}
			return ""
		},
		"ago": func(t time.Time) string {
			return humanize.Time(t)
		},
		"clock": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05 MST")
		},
		"join": strings.Join,
	}
)
