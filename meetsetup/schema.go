package meetsetup

import "github.com/Nydauron/moisty/parsers"

// field is one named value of a record. Aliases are older or misspelled
// names the vendor has written for the same value over the years.
type field struct {
	name    string
	aliases []string
	// repeated fields are lists written as one element per item.
	repeated bool
}

func f(name string, aliases ...string) field {
	return field{name: name, aliases: aliases}
}

func many(name string) field {
	return field{name: name, repeated: true}
}

// schema lists every field a record knows. Strict schemas reject fields they
// do not list.
type schema struct {
	record string
	fields []field
	strict   bool
	byName   map[string]string
	repeated map[string]bool
}

func newSchema(record string, strict bool, fields ...field) *schema {
	s := &schema{record: record, fields: fields, strict: strict, byName: map[string]string{}, repeated: map[string]bool{}}
	for _, fd := range fields {
		s.byName[fd.name] = fd.name
		s.repeated[fd.name] = fd.repeated
		for _, alias := range fd.aliases {
			s.byName[alias] = fd.name
		}
	}
	return s
}

func (s *schema) canonical(name string) (string, bool) {
	canonical, ok := s.byName[name]
	return canonical, ok
}

// recordDecoder reads the fields of one element against a schema. The first
// failure sticks: every later read is a no-op and err reports the failure.
// A field written twice, under its name or an alias, is a failure unless the
// schema marks it repeated.
type recordDecoder struct {
	schema   *schema
	values   map[string]string
	children map[string]*parsers.Element
	err      error
}

func newRecordDecoder(s *schema, el *parsers.Element) *recordDecoder {
	d := &recordDecoder{
		schema:   s,
		values:   map[string]string{},
		children: map[string]*parsers.Element{},
	}
	for _, fd := range el.Fields() {
		name, ok := s.canonical(fd.Name)
		if !ok {
			if s.strict && d.err == nil {
				d.err = &DecodeError{Record: s.record, Field: fd.Name, Input: fd.Value, Err: ErrUnknownField}
			}
			continue
		}
		if _, seen := d.values[name]; seen {
			if !s.repeated[name] && d.err == nil {
				d.err = &DecodeError{Record: s.record, Field: fd.Name, Input: fd.Value, Err: ErrDuplicateField}
			}
			continue
		}
		d.values[name] = fd.Value
		if fd.IsElement {
			d.children[name] = el.Child(fd.Name)
		}
	}
	return d
}

func (d *recordDecoder) fail(name, input string, err error) {
	if d.err != nil {
		return
	}
	d.err = &DecodeError{Record: d.schema.record, Field: name, Input: input, Err: err}
}

func (d *recordDecoder) lookup(name string) (string, bool) {
	v, ok := d.values[name]
	return v, ok
}

func (d *recordDecoder) child(name string) *parsers.Element {
	return d.children[name]
}

func required[T any](d *recordDecoder, name string, parse func(string) (T, error)) T {
	var zero T
	if d.err != nil {
		return zero
	}
	raw, ok := d.lookup(name)
	if !ok {
		d.fail(name, "", ErrMissingField)
		return zero
	}
	v, err := parse(raw)
	if err != nil {
		d.fail(name, raw, err)
		return zero
	}
	return v
}

// optional returns nil for absent fields and for fields written empty.
func optional[T any](d *recordDecoder, name string, parse func(string) (T, error)) *T {
	if d.err != nil {
		return nil
	}
	raw, ok := d.lookup(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		d.fail(name, raw, err)
		return nil
	}
	return &v
}

// withDefault is optional with a fallback for absent fields.
func withDefault[T any](d *recordDecoder, name string, parse func(string) (T, error), fallback T) T {
	if v := optional(d, name, parse); v != nil {
		return *v
	}
	return fallback
}

// nested decodes a structured child element. Errors of the nested record
// are wrapped, so the message reads "Meet.Events: Event.Sex: ...".
func nested[T any](d *recordDecoder, name string, mandatory bool, decode func(*parsers.Element) (T, error)) (T, bool) {
	var zero T
	if d.err != nil {
		return zero, false
	}
	el := d.child(name)
	if el == nil {
		if mandatory {
			d.fail(name, "", ErrMissingField)
		}
		return zero, false
	}
	v, err := decode(el)
	if err != nil {
		d.fail(name, "", err)
		return zero, false
	}
	return v, true
}

func (d *recordDecoder) finish() error {
	return d.err
}
