package schema

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	ReasonUnresolved     = "unresolved type reference"
	ReasonUnknownCompare = "switch compares to unknown field"
	ReasonEmptyCountType = "missing count type"
	ReasonNilType        = "missing type"
	ReasonEmptyFieldName = "empty field name"
)

type ValidationError struct {
	Type   string
	Path   string
	Ref    string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("schema: type=%s path=%s: %s", e.Type, e.Path, e.Reason)
	}
	return fmt.Sprintf("schema: type=%s path=%s: %s %q", e.Type, e.Path, e.Reason, e.Ref)
}

// UnmodeledField locates a placeholder type inside the document.
type UnmodeledField struct {
	Type   string
	Path   string
	Source string
}

// Validate checks that every reference in d names a builtin or a document
// entry, and that switches compare against an earlier sibling field.
// Problems are returned joined, in document order.
func Validate(d *Document) error {
	log.Debug().Msgf("schema.Validate types=%d", d.Len())
	var errs []error
	for _, name := range d.names {
		w := walker{doc: d, typeName: name}
		w.visit(name, d.types[name], nil)
		errs = append(errs, w.errs...)
	}
	if len(errs) > 0 {
		log.Warn().Msgf("schema.Validate problems=%d", len(errs))
		return errors.Join(errs...)
	}
	log.Debug().Msg("schema.Validate ok")
	return nil
}

// Unresolved lists the distinct references in d that resolve to nothing.
func Unresolved(d *Document) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range d.names {
		w := walker{doc: d, typeName: name}
		w.visit(name, d.types[name], nil)
		for _, err := range w.errs {
			var ve ValidationError
			if !errors.As(err, &ve) || ve.Reason != ReasonUnresolved {
				continue
			}
			if _, ok := seen[ve.Ref]; ok {
				continue
			}
			seen[ve.Ref] = struct{}{}
			out = append(out, ve.Ref)
		}
	}
	return out
}

// UnmodeledFields lists every placeholder type in d, in document order.
func UnmodeledFields(d *Document) []UnmodeledField {
	var out []UnmodeledField
	for _, name := range d.names {
		w := walker{doc: d, typeName: name}
		w.visit(name, d.types[name], nil)
		out = append(out, w.unmodeled...)
	}
	return out
}

type walker struct {
	doc       *Document
	typeName  string
	errs      []error
	unmodeled []UnmodeledField
}

func (w *walker) fail(path, ref, reason string) {
	w.errs = append(w.errs, ValidationError{Type: w.typeName, Path: path, Ref: ref, Reason: reason})
}

func (w *walker) ref(path string, r Ref) {
	if r == "" {
		w.fail(path, "", ReasonNilType)
		return
	}
	if IsBuiltin(r) || w.doc.Has(string(r)) {
		return
	}
	w.fail(path, string(r), ReasonUnresolved)
}

func (w *walker) count(path string, r Ref) {
	if r == "" {
		w.fail(path, "", ReasonEmptyCountType)
		return
	}
	w.ref(path, r)
}

// siblings holds the names of fields decoded before the current one.
func (w *walker) visit(path string, t Type, siblings []string) {
	switch v := t.(type) {
	case nil:
		w.fail(path, "", ReasonNilType)
	case Ref:
		w.ref(path, v)
	case Unmodeled:
		w.unmodeled = append(w.unmodeled, UnmodeledField{Type: w.typeName, Path: path, Source: v.Source})
		w.ref(path, v.Fallback)
	case PString:
		w.count(path+".countType", v.CountType)
	case Buffer:
		w.count(path+".countType", v.CountType)
		if v.Type != "" {
			w.ref(path+".type", v.Type)
		}
	case Container:
		seen := make([]string, 0, len(v.Fields))
		for i, f := range v.Fields {
			fp := fmt.Sprintf("%s[%d]", path, i)
			if f.Name == "" {
				w.fail(fp, "", ReasonEmptyFieldName)
			} else {
				fp = path + "." + f.Name
			}
			w.visit(fp, f.Type, seen)
			seen = append(seen, f.Name)
		}
	case Array:
		w.count(path+".countType", v.CountType)
		w.visit(path+"[]", v.Type, nil)
	case Mapper:
		w.ref(path+".type", v.Type)
	case Switch:
		if siblings != nil && !strings.Contains(v.CompareTo, "/") && !slices.Contains(siblings, v.CompareTo) {
			w.fail(path, v.CompareTo, ReasonUnknownCompare)
		}
		for _, label := range v.Fields.Keys() {
			target, _ := v.Fields.Get(label)
			w.ref(path+"."+label, Ref(target))
		}
		if v.Default != "" {
			w.ref(path+".default", v.Default)
		}
	}
}
