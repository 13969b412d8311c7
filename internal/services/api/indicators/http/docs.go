package http

import (
	"econlens/internal/modkit/swaggerkit"
)

func str() map[string]any                      { return map[string]any{"type": "string"} }
func integer() map[string]any                  { return map[string]any{"type": "integer"} }
func number() map[string]any                   { return map[string]any{"type": "number", "nullable": true} }
func arrayOf(v map[string]any) map[string]any { return map[string]any{"type": "array", "items": v} }

func object(props map[string]any, required ...string) map[string]any {
	o := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		o["required"] = required
	}
	return o
}

// Docs returns the OpenAPI mutators for the routes Register mounts under prefix
func Docs(prefix string) []swaggerkit.SpecMutator {
	const tag = "Indicators"
	entities := arrayOf(str())
	card := object(map[string]any{
		"indicator": str(), "value": number(), "text": str(), "growth": number(), "growth_text": str(),
	})
	gauge := object(map[string]any{
		"text": str(), "fraction": number(), "overflow": map[string]any{"type": "boolean"}, "max": number(), "max_label": str(),
	})
	panels := object(map[string]any{
		"selections": arrayOf(object(map[string]any{"country": str(), "year": integer()}, "country", "year")),
		"indicators": arrayOf(str()),
	}, "selections")
	series := object(map[string]any{
		"entities": entities, "indicator": str(), "start": integer(), "end": integer(),
	}, "entities", "indicator")
	rangeOf := func(extra ...string) map[string]any {
		p := map[string]any{"entity": str(), "indicator": str(), "start": integer(), "end": integer()}
		return object(p, append([]string{"entity", "indicator"}, extra...)...)
	}

	ops := []struct {
		method, path string
		op           swaggerkit.Operation
	}{
		{"GET", "/countries", swaggerkit.Operation{Summary: "Selectable countries, Worldwide first", Response: arrayOf(object(map[string]any{
			"name": str(), "alpha2": str(), "alpha3": str(), "synthetic": map[string]any{"type": "boolean"},
		}))}},
		{"GET", "/years", swaggerkit.Operation{Summary: "Selectable years up to the configured cap", Response: object(map[string]any{
			"years": arrayOf(integer()), "max": integer(),
		})}},
		{"GET", "/catalog", swaggerkit.Operation{Summary: "Indicator classification and display scale", Response: arrayOf(object(map[string]any{
			"name": str(), "kind": str(), "display_max": number(), "observed_max": number(),
		}))}},
		{"POST", "/resolve", swaggerkit.Operation{Summary: "Rows for entities and years, Worldwide averaged", Body: object(map[string]any{
			"entities": entities, "start": integer(), "end": integer(), "indicators": arrayOf(str()),
		}, "entities"), Response: object(map[string]any{"indicators": arrayOf(str()), "rows": arrayOf(object(map[string]any{
			"entity": str(), "year": integer(), "values": map[string]any{"type": "object", "additionalProperties": number()},
		}))})}},
		{"POST", "/resolve/export", swaggerkit.Operation{Summary: "Resolved rows as an xlsx workbook", Body: object(map[string]any{
			"entities": entities, "start": integer(), "end": integer(), "indicators": arrayOf(str()),
		}, "entities"), ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}},
		{"POST", "/series", swaggerkit.Operation{Summary: "One series per entity for an indicator", Body: series, Response: arrayOf(object(map[string]any{
			"entity": str(), "indicator": str(), "points": arrayOf(object(map[string]any{"year": integer(), "value": number()})),
		}))}},
		{"POST", "/chart", swaggerkit.Operation{Summary: "Series rendered as png or svg", Body: series, ContentType: "image/png"}},
		{"POST", "/latest", swaggerkit.Operation{Summary: "Most recent year with a value", Body: rangeOf(), Response: object(map[string]any{
			"found": map[string]any{"type": "boolean"}, "year": integer(), "value": number(), "text": str(),
		})}},
		{"POST", "/average", swaggerkit.Operation{Summary: "Mean over the years with a value", Body: rangeOf(), Response: object(map[string]any{
			"entity": str(), "indicator": str(), "start": integer(), "end": integer(), "value": number(), "text": str(),
		})}},
		{"POST", "/growth/yoy", swaggerkit.Operation{Summary: "Change against the previous year", Body: object(map[string]any{
			"entity": str(), "indicator": str(), "year": integer(),
		}, "entity", "indicator", "year"), Response: object(map[string]any{"percent": number(), "text": str()})}},
		{"POST", "/growth/period", swaggerkit.Operation{Summary: "First to last change inside a range", Body: rangeOf(), Response: object(map[string]any{
			"from_year": integer(), "to_year": integer(), "from": number(), "to": number(), "percent": number(), "direction": str(), "text": str(),
		})}},
		{"POST", "/format/magnitude", swaggerkit.Operation{Summary: "Magnitude with a T/B/M suffix", Body: object(map[string]any{"value": number()}),
			Response: object(map[string]any{"text": str()})}},
		{"POST", "/gauge", swaggerkit.Operation{Summary: "Gauge encoding of a ratio", Body: object(map[string]any{
			"value": number(), "indicator": str(),
		}, "indicator"), Response: gauge}},
		{"POST", "/panels", swaggerkit.Operation{Summary: "One to four comparison panels", Body: panels, Response: arrayOf(object(map[string]any{
			"country": str(), "year": integer(), "found": map[string]any{"type": "boolean"},
			"magnitudes": arrayOf(object(map[string]any{"indicator": str(), "value": number(), "text": str()})),
			"gauges":     arrayOf(object(map[string]any{"indicator": str(), "value": number(), "gauge": gauge})),
		}))}},
		{"POST", "/panels/export", swaggerkit.Operation{Summary: "Comparison panels as an xlsx workbook", Body: panels,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}},
		{"POST", "/overview", swaggerkit.Operation{Summary: "Headline cards for an entity and year", Body: object(map[string]any{
			"entity": str(), "year": integer(),
		}, "entity", "year"), Response: object(map[string]any{"entity": str(), "year": integer(), "cards": arrayOf(card)})}},
	}

	out := make([]swaggerkit.SpecMutator, 0, len(ops))
	for _, o := range ops {
		o.op.Tag = tag
		out = append(out, swaggerkit.Path(o.method, prefix+o.path, o.op))
	}
	return out
}
