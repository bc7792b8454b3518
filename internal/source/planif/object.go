// Package planif talks to the Planif-Neige SOAP service and turns its
// loosely typed responses into planification records.
package planif

// Object is a record decoded from the upstream service. Fields may be
// missing and their types vary from one record to the next.
type Object interface {
	Lookup(name string) (any, bool)
}

// Fields is the Object produced by the SOAP transport. Values are nil,
// strings, time.Time, nested Fields or []any for repeated elements.
type Fields map[string]any

func (f Fields) Lookup(name string) (any, bool) {
	v, ok := f[name]
	return v, ok
}

// Field returns the named value of o, or nil when o is nil or lacks it.
func Field(o Object, name string) any {
	if o == nil {
		return nil
	}
	v, ok := o.Lookup(name)
	if !ok {
		return nil
	}
	return v
}

func asObject(v any) (Object, bool) {
	switch o := v.(type) {
	case nil:
		return nil, false
	case Fields:
		return o, o != nil
	case map[string]any:
		return Fields(o), o != nil
	case Object:
		return o, true
	default:
		return nil, false
	}
}
