package mathworld

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"deedles.dev/xiter"

	"github.com/njchilds90/mathworld/algebra"
	"github.com/njchilds90/mathworld/reader"
)

// ============================================================
// Tool Interface
// ============================================================

// ToolRequest is a JSON tool call. Values are expression text, JSON
// numbers or algebra JSON objects; points are [x, y] arrays or {"x", "y"}
// objects; lines are equation text.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall runs one tool call. Failures are reported in
// ToolResponse.Error.
func HandleToolCall(req ToolRequest) ToolResponse {
	getValue := func(key string) (algebra.Expr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		return toolValue(key, v)
	}
	getPoint := func(key string) (Point, error) {
		v, ok := req.Params[key]
		if !ok {
			return Point{}, fmt.Errorf("missing param: %s", key)
		}
		return toolPoint(key, v)
	}
	getPoints := func(key string) ([]Point, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		pts := make([]Point, len(raw))
		for i, r := range raw {
			p, err := toolPoint(key+"["+strconv.Itoa(i)+"]", r)
			if err != nil {
				return nil, err
			}
			pts[i] = p
		}
		return pts, nil
	}
	getLine := func(key string) (*Line, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("param %s must be an equation string", key)
		}
		return NewLine(s)
	}
	has := func(key string) bool {
		_, ok := req.Params[key]
		return ok
	}

	respond := func(e algebra.Expr) ToolResponse {
		return ToolResponse{Result: algebra.JSONValue(e), LaTeX: algebra.LaTeX(e), String: algebra.String(e)}
	}
	respondPoint := func(p Point) ToolResponse {
		return ToolResponse{Result: pointJSON(p), LaTeX: p.LaTeX(), String: p.String()}
	}
	respondLine := func(l *Line) ToolResponse {
		return ToolResponse{Result: lineJSON(l), LaTeX: l.explicit.LaTeX(), String: l.String()}
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	switch req.Tool {
	case "line":
		l, err := getLine("equation")
		if err != nil {
			return fail(err)
		}
		return respondLine(l)

	case "distance":
		from, err := getPoint("from")
		if err != nil {
			return fail(err)
		}
		if has("line") {
			l, err := getLine("line")
			if err != nil {
				return fail(err)
			}
			d, err := from.DistanceToLine(l)
			if err != nil {
				return fail(err)
			}
			return respond(d)
		}
		to, err := getPoint("to")
		if err != nil {
			return fail(err)
		}
		return respond(from.DistanceTo(to))

	case "intersection":
		l1, err := getLine("line1")
		if err != nil {
			return fail(err)
		}
		l2, err := getLine("line2")
		if err != nil {
			return fail(err)
		}
		p, err := l1.IntersectionWith(l2)
		if err != nil {
			return fail(err)
		}
		return respondPoint(p)

	case "find_line":
		var params []LineParam
		if has("points") {
			pts, err := getPoints("points")
			if err != nil {
				return fail(err)
			}
			params = append(params, Through(pts...))
		}
		if has("slope") {
			s, err := getValue("slope")
			if err != nil {
				return fail(err)
			}
			params = append(params, WithSlope(s))
		}
		if has("intercept") {
			q, err := getValue("intercept")
			if err != nil {
				return fail(err)
			}
			params = append(params, WithIntercept(q))
		}
		if v, ok := req.Params["vertical"].(bool); ok && v {
			params = append(params, Vertical())
		}
		l, err := FindLine(params...)
		if err != nil {
			return fail(err)
		}
		return respondLine(l)

	case "find_point":
		l, err := getLine("line")
		if err != nil {
			return fail(err)
		}
		p, err := getPoint("point")
		if err != nil {
			return fail(err)
		}
		d, err := getValue("distance")
		if err != nil {
			return fail(err)
		}
		pts, err := FindPoint(l, p, d)
		if err != nil {
			return fail(err)
		}
		return labelled("point", pts, pointJSON, Point.LaTeX)

	case "segment":
		p1, err := getPoint("p1")
		if err != nil {
			return fail(err)
		}
		p2, err := getPoint("p2")
		if err != nil {
			return fail(err)
		}
		s, err := NewSegment(p1, p2)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{
			Result: map[string]interface{}{
				"length": algebra.JSONValue(s.length),
				"middle": pointJSON(s.middle),
				"line":   lineJSON(s.line),
				"axis":   lineJSON(s.axis),
			},
			String: s.String(),
		}

	case "parallel", "perpendicular":
		l, err := getLine("line")
		if err != nil {
			return fail(err)
		}
		p, err := getPoint("point")
		if err != nil {
			return fail(err)
		}
		if req.Tool == "parallel" {
			return respondLine(l.FindParallelThrough(p))
		}
		return respondLine(l.FindPerpendicularThrough(p))

	case "bisectors":
		l1, err := getLine("line1")
		if err != nil {
			return fail(err)
		}
		l2, err := getLine("line2")
		if err != nil {
			return fail(err)
		}
		ls, err := l1.FindBisectors(l2)
		if err != nil {
			return fail(err)
		}
		return labelled("bisector", ls, lineJSON, func(l *Line) string { return l.explicit.LaTeX() })

	case "lies_on":
		p, err := getPoint("point")
		if err != nil {
			return fail(err)
		}
		var e Element
		switch {
		case has("line"):
			l, err := getLine("line")
			if err != nil {
				return fail(err)
			}
			e = l
		case has("segment"):
			ends, err := getPoints("segment")
			if err != nil {
				return fail(err)
			}
			if len(ends) != 2 {
				return fail(fmt.Errorf("param segment must hold 2 points, got %d", len(ends)))
			}
			s, err := NewSegment(ends[0], ends[1])
			if err != nil {
				return fail(err)
			}
			e = s
		case has("other"):
			q, err := getPoint("other")
			if err != nil {
				return fail(err)
			}
			e = q
		default:
			return fail(fmt.Errorf("missing param: line, segment or other"))
		}
		on := p.LiesOn(e)
		return ToolResponse{Result: on, String: strconv.FormatBool(on)}

	case "tool_spec":
		return ToolResponse{Result: ToolSpec()}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// labelled reports a sequence of results keyed "<prefix>1", "<prefix>2",
// and so on.
func labelled[T fmt.Stringer](prefix string, items []T, toJSON func(T) map[string]interface{}, latex func(T) string) ToolResponse {
	result := make(map[string]interface{}, len(items))
	strs := make([]string, 0, len(items))
	texs := make([]string, 0, len(items))
	for i, it := range xiter.Enumerate(slices.Values(items)) {
		label := prefix + strconv.Itoa(i+1)
		result[label] = toJSON(it)
		strs = append(strs, label+": "+it.String())
		texs = append(texs, latex(it))
	}
	return ToolResponse{Result: result, LaTeX: strings.Join(texs, ",\\quad "), String: strings.Join(strs, ", ")}
}

func toolValue(key string, v interface{}) (algebra.Expr, error) {
	switch x := v.(type) {
	case map[string]interface{}:
		e, err := algebra.FromJSON(x)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", key, err)
		}
		return e, nil
	case string, float64:
		e, err := reader.ParseValue(x)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", key, err)
		}
		return e, nil
	case json.Number:
		e, err := reader.ParseExpression(x.String())
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", key, err)
		}
		return e, nil
	}
	return nil, fmt.Errorf("invalid type for param %s", key)
}

func toolPoint(key string, v interface{}) (Point, error) {
	var xv, yv interface{}
	switch p := v.(type) {
	case []interface{}:
		if len(p) != 2 {
			return Point{}, fmt.Errorf("param %s must be [x, y]", key)
		}
		xv, yv = p[0], p[1]
	case map[string]interface{}:
		var okx, oky bool
		xv, okx = p["x"]
		yv, oky = p["y"]
		if !okx || !oky {
			return Point{}, fmt.Errorf("param %s must have x and y", key)
		}
	default:
		return Point{}, fmt.Errorf("param %s must be a point", key)
	}
	x, err := toolValue(key+".x", xv)
	if err != nil {
		return Point{}, err
	}
	y, err := toolValue(key+".y", yv)
	if err != nil {
		return Point{}, err
	}
	return NewPoint(x, y)
}

func pointJSON(p Point) map[string]interface{} {
	return map[string]interface{}{
		"x":        algebra.JSONValue(p.X()),
		"y":        algebra.JSONValue(p.Y()),
		"quadrant": p.Quadrant().String(),
	}
}

func lineJSON(l *Line) map[string]interface{} {
	out := map[string]interface{}{
		"equation": l.explicit.String(),
		"implicit": l.ImplicitEquation().String(),
		"vertical": l.IsVertical(),
		"a":        algebra.JSONValue(l.a),
		"b":        algebra.JSONValue(l.b),
		"c":        algebra.JSONValue(l.c),
	}
	if !l.IsVertical() {
		out["slope"] = algebra.JSONValue(l.slope)
		out["intercept"] = algebra.JSONValue(l.intercept)
	}
	return out
}

// ToolSpec returns the JSON schema of every tool HandleToolCall serves.
func ToolSpec() string {
	tools := []map[string]interface{}{
		ts("line", "Parse a line equation into explicit and implicit forms", []string{"equation"}, map[string]string{"equation": "string"}),
		ts("distance", "Exact distance from a point to another point or to a line", []string{"from"}, map[string]string{"from": "point", "to": "point", "line": "string"}),
		ts("intersection", "Unique intersection point of two lines", []string{"line1", "line2"}, map[string]string{"line1": "string", "line2": "string"}),
		ts("find_line", "Line from two points, a point and slope or intercept, or slope and intercept", []string{}, map[string]string{"points": "array", "slope": "value", "intercept": "value", "vertical": "boolean"}),
		ts("find_point", "Points on a line at a distance from a point of the line", []string{"line", "point", "distance"}, map[string]string{"line": "string", "point": "point", "distance": "value"}),
		ts("segment", "Length, midpoint, line and axis of a segment", []string{"p1", "p2"}, map[string]string{"p1": "point", "p2": "point"}),
		ts("parallel", "Line through a point parallel to a line", []string{"line", "point"}, map[string]string{"line": "string", "point": "point"}),
		ts("perpendicular", "Line through a point perpendicular to a line", []string{"line", "point"}, map[string]string{"line": "string", "point": "point"}),
		ts("bisectors", "Angle bisectors of two lines", []string{"line1", "line2"}, map[string]string{"line1": "string", "line2": "string"}),
		ts("lies_on", "Whether a point lies on a line, a segment or another point", []string{"point"}, map[string]string{"point": "point", "line": "string", "segment": "array", "other": "point"}),
		ts("tool_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
