package doctypes

// Value is a typed property value: a string, an integer, or a floating
// value carrying a unit (§6.1).
type Value struct {
	Str    string
	Int    int64
	Float  float64
	Unit   Unit
	IsStr  bool
	IsInt  bool
	IsFloat bool
}

func StrValue(s string) Value   { return Value{Str: s, IsStr: true} }
func IntValue(i int64) Value    { return Value{Int: i, IsInt: true} }
func FloatValue(f float64, u Unit) Value {
	return Value{Float: f, Unit: u, IsFloat: true}
}

// Properties is a mapping from string keys to typed Values, matching
// the ODF-schema-shaped keys the backend expects (e.g. "fo:margin-left",
// "style:column-width", "libwpd:id").
type Properties map[string]Value

// NewProperties returns an empty, ready-to-use Properties map.
func NewProperties() Properties { return make(Properties) }

func (p Properties) SetStr(key, value string) Properties {
	p[key] = StrValue(value)
	return p
}

func (p Properties) SetInt(key string, value int64) Properties {
	p[key] = IntValue(value)
	return p
}

func (p Properties) SetFloat(key string, value float64, unit Unit) Properties {
	p[key] = FloatValue(value, unit)
	return p
}
