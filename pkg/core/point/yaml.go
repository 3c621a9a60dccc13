package point

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes the point as a flow sequence: [x, y]
func (p Point) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(p.X), 10)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(p.Y), 10)},
		},
	}, nil
}

// UnmarshalYAML accepts either a two element sequence ([x, y]) or a
// mapping with x and y keys ({x: 1, y: 2})
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []int32
		if err := value.Decode(&xy); err != nil {
			return fmt.Errorf("%w at line %d: %v", ErrInvalidPoint, value.Line, err)
		}
		if len(xy) != 2 {
			return fmt.Errorf("%w at line %d: expected 2 coordinates, got %d", ErrInvalidPoint, value.Line, len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		// Separate type so Decode does not recurse into this method
		var xy struct {
			X *int32 `yaml:"x"`
			Y *int32 `yaml:"y"`
		}
		if err := value.Decode(&xy); err != nil {
			return fmt.Errorf("%w at line %d: %v", ErrInvalidPoint, value.Line, err)
		}
		if xy.X == nil || xy.Y == nil {
			return fmt.Errorf("%w at line %d: both x and y are required", ErrInvalidPoint, value.Line)
		}
		p.X, p.Y = *xy.X, *xy.Y
		return nil
	default:
		return fmt.Errorf("%w at line %d: expected [x, y] or {x: .., y: ..}", ErrInvalidPoint, value.Line)
	}
}

// DecodeYAML reads a YAML sequence of points
func DecodeYAML(data []byte) ([]Point, error) {
	var points []Point
	if err := yaml.Unmarshal(data, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// EncodeYAML writes points as a YAML sequence of [x, y] pairs
func EncodeYAML(points []Point) ([]byte, error) {
	if points == nil {
		points = []Point{}
	}
	return yaml.Marshal(points)
}
