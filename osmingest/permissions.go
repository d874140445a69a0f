package osmingest

import "github.com/paulmach/osm"

var defaultAllowedValues = map[string]bool{
	"yes": true, "permissive": true, "designated": true,
	"open": true, "destination": true, "delivery": true,
}

var onewayForwardValues = map[string]bool{"yes": true, "true": true, "1": true}
var onewayBackwardValues = map[string]bool{"-1": true, "reverse": true}

// hasTagOrdered checks keys in order, returning whether the first key
// present in tags has a value in values. A way with none of the keys set
// is treated as permissive (true) — matching vehicle_permissions.rs's
// has_tag_ordered, which defaults open rather than closed when a road
// simply carries no access tag at all.
func hasTagOrdered(tags osm.Tags, keys []string, values map[string]bool) bool {
	for _, key := range keys {
		if v, ok := findTag(tags, key); ok {
			return values[v]
		}
	}
	return true
}

func hasTag(tags osm.Tags, key string, values map[string]bool) bool {
	v, ok := findTag(tags, key)
	return ok && values[v]
}

func findTag(tags osm.Tags, key string) (string, bool) {
	for _, t := range tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// carAccess reports whether a car may traverse the way forward
// (increasing node-ref order) and backward, narrowly re-implementing
// vehicle_permissions.rs::is_car_allowed: motorcar/motor_vehicle/vehicle/
// access gate whether cars are allowed at all, then oneway(:vehicle|
// :motor_vehicle) restricts one direction.
func carAccess(tags osm.Tags) (forward, backward bool) {
	allowedKeys := []string{"motorcar", "motor_vehicle", "vehicle", "access"}
	if !hasTagOrdered(tags, allowedKeys, defaultAllowedValues) {
		return false, false
	}

	forward, backward = true, true
	onewayKeys := []string{"oneway", "oneway:vehicle", "oneway:motor_vehicle"}
	switch {
	case anyHasTag(tags, onewayKeys, onewayForwardValues):
		backward = false
	case anyHasTag(tags, onewayKeys, onewayBackwardValues):
		forward = false
	}
	return forward, backward
}

func anyHasTag(tags osm.Tags, keys []string, values map[string]bool) bool {
	for _, key := range keys {
		if hasTag(tags, key, values) {
			return true
		}
	}
	return false
}
