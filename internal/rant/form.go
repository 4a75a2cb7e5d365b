package rant

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// PlaylistField is the form field carrying the playlist selection.
const PlaylistField = "playlist"

// Form holds the submittable fields of the rant form.
type Form struct {
	values url.Values
}

// NewForm creates a form from static fields. The playlist field is always set per click and is ignored here.
func NewForm(fields map[string]string) Form {
	values := url.Values{}
	for k, v := range fields {
		if k == PlaylistField {
			continue
		}
		values.Set(k, v)
	}
	return Form{values: values}
}

// ParseFields turns "key=value" pairs into a field map.
func ParseFields(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid field %q: expected key=value", pair)
		}
		fields[k] = v
	}
	return fields, nil
}

// WithPlaylist returns a copy of the form with the playlist field set.
func (f Form) WithPlaylist(id string) Form {
	values := url.Values{}
	for k, vs := range f.values {
		values[k] = append([]string(nil), vs...)
	}
	values.Set(PlaylistField, id)
	return Form{values: values}
}

// Playlist returns the selected playlist identifier.
func (f Form) Playlist() string {
	return f.values.Get(PlaylistField)
}

// Values returns a copy of the serialized fields.
func (f Form) Values() url.Values {
	values := url.Values{}
	for k, vs := range f.values {
		values[k] = append([]string(nil), vs...)
	}
	return values
}

// Encode serializes the form as application/x-www-form-urlencoded.
func (f Form) Encode() string {
	return f.values.Encode()
}

// Keys returns the field names in sorted order.
func (f Form) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
